package credential

import "fmt"

// APIKeyName 是生成服务 API key 在存储中的名称。
const APIKeyName = "openrouter_api_key"

// Backends accepted by Open.
const (
	BackendFile     = "file"
	BackendKeychain = "keychain"
)

// Store provides a pluggable interface for persisting secrets.
type Store interface {
	// Set stores a secret value under the given key.
	Set(key string, value []byte) error

	// Get retrieves the secret value for the given key.
	// Returns nil and nil error if key does not exist.
	Get(key string) ([]byte, error)

	// Delete removes the secret for the given key.
	Delete(key string) error
}

// Open 按名称创建存储后端；path 只对 file 后端有效。
func Open(backend, path string) (Store, error) {
	switch backend {
	case "", BackendFile:
		return NewFileStore(path), nil
	case BackendKeychain:
		return NewKeychainStore(), nil
	default:
		return nil, fmt.Errorf("未知的凭据后端 %q", backend)
	}
}
