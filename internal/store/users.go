package store

import (
	"errors"
	"strings"
	"time"

	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/models"
)

var (
	ErrDuplicateUsername = errors.New("username already registered")
	ErrDuplicateEmail    = errors.New("email already registered")
)

type Users struct {
	*Table[models.UserID, models.User]
}

// Create stores u unless its username or email is already taken. The
// uniqueness check and the insert happen under the same lock.
func (u Users) Create(user models.User) (models.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for _, existing := range u.rows {
		if existing.Username == user.Username {
			return models.User{}, ErrDuplicateUsername
		}
		if strings.EqualFold(existing.Email, user.Email) {
			return models.User{}, ErrDuplicateEmail
		}
	}

	return u.insertLocked(func(id models.UserID, createdAt time.Time) models.User {
		user.ID = id
		user.CreatedAt = createdAt
		return user
	}), nil
}

func (u Users) ByEmail(email string) (models.User, bool) {
	return u.first(func(x models.User) bool { return strings.EqualFold(x.Email, email) })
}

func (u Users) first(pred func(models.User) bool) (models.User, bool) {
	found := u.Find(pred)
	if len(found) == 0 {
		return models.User{}, false
	}
	return found[0], true
}
