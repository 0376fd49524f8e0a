package marketplace

import "github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/models"

// Actor is the caller of an operation. The zero value is an anonymous visitor.
type Actor struct {
	UserID models.UserID
	Role   models.Role
}

func Anonymous() Actor { return Actor{} }

func (a Actor) Authenticated() bool {
	return a.UserID != 0 && a.Role.Valid()
}

// caller resolves the actor against the user table. The stored role wins
// over whatever the session claimed.
func (s *Service) caller(a Actor) (models.User, error) {
	if !a.Authenticated() {
		return models.User{}, ErrUnauthenticated
	}
	u, ok := s.users.Get(a.UserID)
	if !ok {
		return models.User{}, ErrUnauthenticated
	}
	return u, nil
}

func (s *Service) client(a Actor) (models.User, error) {
	u, err := s.caller(a)
	if err != nil {
		return models.User{}, err
	}
	switch u.Role {
	case models.RoleClient:
		return u, nil
	case models.RoleFreelancer:
		return models.User{}, ErrForbidden
	default:
		return models.User{}, ErrForbidden
	}
}

func (s *Service) freelancer(a Actor) (models.User, error) {
	u, err := s.caller(a)
	if err != nil {
		return models.User{}, err
	}
	switch u.Role {
	case models.RoleFreelancer:
		return u, nil
	case models.RoleClient:
		return models.User{}, ErrForbidden
	default:
		return models.User{}, ErrForbidden
	}
}
