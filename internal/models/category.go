package models

import "fmt"

type Category string

const (
	CategoryLogoDesign          Category = "Logo Design"
	CategoryWebDesign           Category = "Web Design"
	CategoryIllustration        Category = "Illustration"
	CategoryBranding            Category = "Branding"
	CategoryPrintDesign         Category = "Print Design"
	CategoryUIUXDesign          Category = "UI/UX Design"
	CategorySocialMediaGraphics Category = "Social Media Graphics"
	CategoryPackagingDesign     Category = "Packaging Design"
)

var categories = []Category{
	CategoryLogoDesign,
	CategoryWebDesign,
	CategoryIllustration,
	CategoryBranding,
	CategoryPrintDesign,
	CategoryUIUXDesign,
	CategorySocialMediaGraphics,
	CategoryPackagingDesign,
}

// Categories returns the fixed category list in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}
