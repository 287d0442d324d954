package window

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateIdentity is matched by every *DuplicateIdentityError
	ErrDuplicateIdentity = errors.New("identity already in use")
	// ErrNotRegistered is returned when operating on a window that is not active
	ErrNotRegistered = errors.New("window is not registered")
	// ErrEmptyIdentity is returned when an identity normalizes to nothing
	ErrEmptyIdentity = errors.New("identity is empty")
	// ErrSchemeMismatch is returned when a window's identity does not use the manager's scheme
	ErrSchemeMismatch = errors.New("identity scheme does not match manager")
	// ErrRenameUnsupported is returned when renaming in kind-keyed mode
	ErrRenameUnsupported = errors.New("rename requires name identities")
)

// DuplicateIdentityError reports a registration or rename collision.
// Existing is the value already bound to Identity.
type DuplicateIdentityError struct {
	Identity string
	Existing any
}

func (e *DuplicateIdentityError) Error() string {
	if s, ok := e.Existing.(fmt.Stringer); ok {
		return fmt.Sprintf("name %q is used by another window (%s)", e.Identity, s)
	}
	return fmt.Sprintf("name %q is used by another window", e.Identity)
}

// Is makes errors.Is(err, ErrDuplicateIdentity) work
func (e *DuplicateIdentityError) Is(target error) bool {
	return target == ErrDuplicateIdentity
}
