package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidCredentials indicates an unknown identifier or a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrRoleMismatch indicates the claimed role differs from the stored one.
	ErrRoleMismatch = errors.New("unauthorized for claimed role")
	// ErrUsernameTaken indicates the username is already bound to an account.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrEmailTaken indicates the email is already bound to an account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrProfileNotFound indicates the account has no profile row yet.
	ErrProfileNotFound = errors.New("profile not found")
)

// FieldErrors maps form field names to validation messages. It is never
// fatal: handlers surface it as a 400 with the offending fields and nothing
// is persisted.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e[k]))
	}
	return strings.Join(parts, "; ")
}
