package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/models"
	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/services/marketplace"
)

type FieldErrors map[string][]string

func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Has reports whether field already failed, so parse errors do not pile on
// top of a tag failure for the same field.
func (e FieldErrors) Has(field string) bool {
	return len(e[field]) > 0
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateReq checks req's `validate` tags and returns the failures keyed by
// JSON field name. The result is never nil.
func validateReq(req any) FieldErrors {
	errs := FieldErrors{}
	err := validate.Struct(req)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs.Add("body", "Invalid request")
		return errs
	}
	for _, fe := range verrs {
		errs.Add(fe.Field(), fieldMessage(fe))
	}
	return errs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return "Must be at least " + fe.Param() + " characters"
	case "max":
		return "Must be at most " + fe.Param() + " characters"
	case "email":
		return "Invalid email address"
	case "eqfield":
		return "Does not match"
	case "http_url":
		return "Must be an http or https link"
	case "numeric":
		return "Must be a number"
	default:
		return "Invalid value"
	}
}

func validationFail(c *fiber.Ctx, errs FieldErrors) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"success": false,
		"message": "Validation error",
		"errors":  errs,
	})
}

func success(c *fiber.Ctx, status int, message string, data any) error {
	body := fiber.Map{"success": true, "data": data}
	if message != "" {
		body["message"] = message
	}
	return c.Status(status).JSON(body)
}

// fail maps a service error onto the response envelope. Anything that is not
// a *marketplace.Error is logged and reported as a server error.
func fail(c *fiber.Ctx, log *slog.Logger, err error) error {
	var me *marketplace.Error
	if !errors.As(err, &me) {
		log.Error("request failed", "path", c.Path(), "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error",
		})
	}

	status := fiber.StatusInternalServerError
	switch me.Kind {
	case marketplace.KindNotFound:
		status = fiber.StatusNotFound
	case marketplace.KindForbidden:
		status = fiber.StatusForbidden
	case marketplace.KindUnauthenticated, marketplace.KindInvalidCredentials:
		status = fiber.StatusUnauthorized
	case marketplace.KindConflict:
		status = fiber.StatusConflict
	case marketplace.KindInvalid:
		status = fiber.StatusUnprocessableEntity
	}

	body := fiber.Map{"success": false, "message": me.Message}
	if me.Code != "" {
		body["code"] = me.Code
	}
	return c.Status(status).JSON(body)
}

// actorOf reads the caller set by AttachJWTLocals; no locals means anonymous.
func actorOf(c *fiber.Ctx) marketplace.Actor {
	uid, ok := c.Locals("userId").(models.UserID)
	if !ok {
		return marketplace.Anonymous()
	}
	role, ok := c.Locals("role").(models.Role)
	if !ok {
		return marketplace.Anonymous()
	}
	return marketplace.Actor{UserID: uid, Role: role}
}

func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// optionalProjectID reads an optional positive project id; "" yields nil.
func optionalProjectID(raw string) (*models.ProjectID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, errors.New("invalid project id")
	}
	pid := models.ProjectID(id)
	return &pid, nil
}

// flexString accepts a JSON string or number, e.g. "300.50" and 300.50.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if bytes.HasPrefix(b, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}
