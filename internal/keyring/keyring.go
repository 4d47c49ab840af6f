package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/hourkeep/hourkeep-cli/internal/constants"
)

var (
	// ErrNotFound is returned when no session is stored in the keyring
	ErrNotFound = errors.New("session not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetToken retrieves the auth-service token from the OS keyring.
// Returns ErrNotFound when no session is stored.
func GetToken() (string, error) {
	return get(constants.KeyringTokenUser)
}

// SetToken stores the auth-service token in the OS keyring.
func SetToken(token string) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	return set(constants.KeyringTokenUser, token)
}

// GetEmployeeID retrieves the signed-in user's employee ID.
func GetEmployeeID() (string, error) {
	return get(constants.KeyringEmployeeUser)
}

// SetEmployeeID stores the signed-in user's employee ID alongside the token
// so the timesheet flow can stamp records without a profile round-trip.
func SetEmployeeID(id string) error {
	if id == "" {
		return errors.New("employee ID cannot be empty")
	}
	return set(constants.KeyringEmployeeUser, id)
}

// Clear removes the stored session. A missing entry is not an error; the
// end state is the same.
func Clear() error {
	for _, user := range []string{constants.KeyringTokenUser, constants.KeyringEmployeeUser} {
		if err := keyring.Delete(constants.AppName, user); err != nil && err != keyring.ErrNotFound {
			return fmt.Errorf("failed to delete %s from keyring: %w", user, err)
		}
	}
	return nil
}

// IsAvailable checks if the OS keyring is usable on the current system.
// Best-effort; may not catch every failure scenario.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || err == keyring.ErrNotFound
}

func get(user string) (string, error) {
	val, err := keyring.Get(constants.AppName, user)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return val, nil
}

func set(user, val string) error {
	if err := keyring.Set(constants.AppName, user, val); err != nil {
		return fmt.Errorf("failed to store %s in keyring: %w", user, err)
	}
	return nil
}
