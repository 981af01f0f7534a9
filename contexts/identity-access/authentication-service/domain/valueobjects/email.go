package valueobjects

import (
	"regexp"
	"strings"

	domainerrors "tokentab/contexts/identity-access/authentication-service/domain/errors"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email is a validated address stored in normalized (trimmed,
// lower-cased) form. Construct through NewEmail only; the zero value is
// not a valid address.
type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if !emailPattern.MatchString(normalized) {
		return Email{}, domainerrors.ErrInvalidEmail
	}
	return Email{value: normalized}, nil
}

func (e Email) String() string { return e.value }

// Equal compares normalized forms only.
func (e Email) Equal(other Email) bool { return e.value == other.value }
