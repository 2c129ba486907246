package credential

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

const keychainService = "designkit"

// notFoundExitCode 是 security 找不到条目时的退出码。
const notFoundExitCode = 44

// KeychainStore implements Store using the macOS Keychain
// via the `security` CLI tool.
type KeychainStore struct {
	run func(name string, args ...string) ([]byte, error)
}

// NewKeychainStore creates a new KeychainStore.
func NewKeychainStore() *KeychainStore {
	return &KeychainStore{run: func(name string, args ...string) ([]byte, error) {
		return exec.Command(name, args...).Output()
	}}
}

// Set stores a secret in the macOS Keychain, replacing any existing value.
func (k *KeychainStore) Set(key string, value []byte) error {
	if err := k.Delete(key); err != nil {
		return err
	}
	out, err := k.run("security", "add-generic-password",
		"-a", key,
		"-s", keychainService,
		"-w", string(value),
		"-U",
	)
	if err != nil {
		return fmt.Errorf("keychain set: %s: %w", strings.TrimSpace(string(out)), err)
	}
	return nil
}

// Get retrieves a secret from the macOS Keychain.
// Returns nil and nil error if the key doesn't exist.
func (k *KeychainStore) Get(key string) ([]byte, error) {
	out, err := k.run("security", "find-generic-password",
		"-a", key,
		"-s", keychainService,
		"-w",
	)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("keychain get: %w", err)
	}
	return []byte(strings.TrimSpace(string(out))), nil
}

// Delete removes a secret from the macOS Keychain; a missing item is not an error.
func (k *KeychainStore) Delete(key string) error {
	_, err := k.run("security", "delete-generic-password",
		"-a", key,
		"-s", keychainService,
	)
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("keychain delete: %w", err)
	}
	return nil
}

func isNotFound(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr) && exitErr.ExitCode() == notFoundExitCode
}
