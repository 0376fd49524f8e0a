package marketplace

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/models"
	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/store"
	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/utils"
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     models.Role
}

// Register creates an account. Username and email must both be unused.
func (s *Service) Register(in RegisterInput) (models.User, error) {
	if !in.Role.Valid() {
		return models.User{}, invalid("role must be client or freelancer")
	}

	hash, err := s.hashPassword(in.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.users.Create(models.User{
		Username:     in.Username,
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: hash,
		Role:         in.Role,
	})
	switch {
	case errors.Is(err, store.ErrDuplicateUsername):
		return models.User{}, ErrUsernameTaken
	case errors.Is(err, store.ErrDuplicateEmail):
		return models.User{}, ErrEmailTaken
	case err != nil:
		return models.User{}, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user registered", "user_id", u.ID, "role", u.Role.String())
	return u, nil
}

// Authenticate returns the user owning email when password matches. Unknown
// emails and wrong passwords fail the same way.
func (s *Service) Authenticate(email, password string) (models.User, error) {
	u, ok := s.users.ByEmail(strings.ToLower(strings.TrimSpace(email)))
	if !ok || !utils.CheckPassword(u.PasswordHash, password) {
		return models.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// Me returns the caller's own account.
func (s *Service) Me(a Actor) (models.User, error) {
	return s.caller(a)
}

func (s *Service) User(id models.UserID) (models.User, bool) {
	return s.users.Get(id)
}
