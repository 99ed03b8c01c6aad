package portfolio

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when a username/password pair does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// MinPasswordLength applies to rotated admin passwords.
const MinPasswordLength = 8

// HashPassword hashes a plaintext password using bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a bcrypt hash with a plaintext password.
func CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Authenticate returns the admin row for username if password verifies.
func (s *Store) Authenticate(username, password string) (Admin, error) {
	admin, err := s.AdminByUsername(username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Admin{}, ErrInvalidCredentials
		}
		return Admin{}, err
	}
	if err := CheckPassword(admin.PasswordHash, password); err != nil {
		return Admin{}, err
	}
	return admin, nil
}

// ChangeAdminPassword verifies current and stores a hash of next.
func (s *Store) ChangeAdminPassword(username, current, next string) error {
	if _, err := s.Authenticate(username, current); err != nil {
		return err
	}
	return s.ResetAdminPassword(username, next)
}

// ResetAdminPassword stores a hash of next without checking the old password.
func (s *Store) ResetAdminPassword(username, next string) error {
	if len(next) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	hash, err := HashPassword(next)
	if err != nil {
		return err
	}
	return s.SetAdminPassword(username, hash)
}

// ErrPasswordTooShort is returned when a new password is under MinPasswordLength.
var ErrPasswordTooShort = errors.New("password must be at least 8 characters")
