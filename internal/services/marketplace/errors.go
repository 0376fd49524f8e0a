package marketplace

// Kind groups failures by how callers should react to them.
type Kind uint8

const (
	KindNotFound Kind = iota + 1
	KindForbidden
	KindUnauthenticated
	KindConflict
	KindInvalidCredentials
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindConflict:
		return "conflict"
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Error is a user-facing failure. Code narrows Kind for conflicts that need
// their own message.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is matches on Code when target carries one, otherwise on Kind, so
// errors.Is(ErrDuplicateProposal, ErrConflict) holds.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Code != "" {
		return t.Code == e.Code
	}
	return t.Kind == e.Kind
}

var (
	// ErrNotFound also covers ownership mismatches; other users' records
	// look the same as missing ones.
	ErrNotFound           = &Error{Kind: KindNotFound, Message: "not found or access denied"}
	ErrForbidden          = &Error{Kind: KindForbidden, Message: "access denied: insufficient role"}
	ErrUnauthenticated    = &Error{Kind: KindUnauthenticated, Message: "please login to access this page"}
	ErrConflict           = &Error{Kind: KindConflict, Message: "conflict"}
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials, Message: "login failed: check your email and password"}
	ErrInvalid            = &Error{Kind: KindInvalid, Message: "invalid input"}

	ErrProjectNotOpen    = &Error{Kind: KindConflict, Code: "project_not_open", Message: "project not open"}
	ErrDuplicateProposal = &Error{Kind: KindConflict, Code: "duplicate_proposal", Message: "you have already submitted a proposal for this project"}
	ErrUsernameTaken     = &Error{Kind: KindConflict, Code: "username_taken", Message: "username already taken, please choose a different one"}
	ErrEmailTaken        = &Error{Kind: KindConflict, Code: "email_taken", Message: "email already registered, please use a different one or login"}
)

func invalid(msg string) *Error {
	return &Error{Kind: KindInvalid, Message: msg}
}
