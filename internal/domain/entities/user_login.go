package entities

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"insurance/internal/domain/validation"
)

// MinPasswordLength is the shortest password NewUserLogin accepts.
const MinPasswordLength = 5

var (
	ErrWrongPassword  = errors.New("wrong password")
	ErrPasswordReused = errors.New("new password must differ from the current one")
)

// UserLogin holds a user name and a bcrypt hash of the password. The
// plaintext is never stored, and there is no accessor for the hash.
//
// Go Learning Note — Hide State Behind Behavior:
// Callers can ask "does this password match?" through Login but can never
// read the password back. The only way to change it is ChangePassword, which
// proves knowledge of the old one first.
type UserLogin struct {
	userName string
	hash     []byte
}

func NewUserLogin(userName, password string) (*UserLogin, error) {
	userName = strings.TrimSpace(userName)
	if userName == "" {
		return nil, validation.New("user_name", "required", userName)
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	return &UserLogin{userName: userName, hash: hash}, nil
}

// hashPassword enforces the length rule and hashes. The password itself never
// appears in the returned error.
func hashPassword(password string) ([]byte, error) {
	if len(password) < MinPasswordLength {
		return nil, &validation.ValidationError{Field: "password", Rule: "min", Param: "5", Value: "[redacted]"}
	}
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

func (l *UserLogin) UserName() string { return l.userName }

// Login returns ErrWrongPassword unless input matches the stored password.
func (l *UserLogin) Login(input string) error {
	if bcrypt.CompareHashAndPassword(l.hash, []byte(input)) != nil {
		return ErrWrongPassword
	}
	return nil
}

// ChangePassword replaces the password after verifying oldPass. Reusing the
// current password is rejected.
func (l *UserLogin) ChangePassword(oldPass, newPass string) error {
	if err := l.Login(oldPass); err != nil {
		return err
	}
	if oldPass == newPass {
		return ErrPasswordReused
	}
	hash, err := hashPassword(newPass)
	if err != nil {
		return err
	}
	l.hash = hash
	return nil
}
