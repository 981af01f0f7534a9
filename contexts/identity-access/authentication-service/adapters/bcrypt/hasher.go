package bcryptadapter

import (
	"golang.org/x/crypto/bcrypt"

	domainerrors "tokentab/contexts/identity-access/authentication-service/domain/errors"
)

// Hasher adapts golang.org/x/crypto/bcrypt to the PasswordHasher port.
type Hasher struct {
	Cost int
}

func (h Hasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h Hasher) Verify(hash string, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return domainerrors.ErrInvalidCredentials
	}
	return nil
}
