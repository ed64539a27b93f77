package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	m "diamondkit.dev/pkg/diamondkit/internal/model"
	"github.com/joho/godotenv"
)

// EnvStore persists KEY=value pairs in a dotenv file.
type EnvStore interface {
	// Upsert replaces the first KEY= line or appends one.
	Upsert(path m.Path, key, value string) error
	// Get returns the value stored for key.
	Get(path m.Path, key string) (string, bool, error)
}

// DotEnvStore is the file-backed EnvStore.
type DotEnvStore struct{}

// NewDotEnvStore constructs a DotEnvStore.
func NewDotEnvStore() *DotEnvStore {
	return &DotEnvStore{}
}

// AddressKey formats the env key for a deployed contract, e.g.
// ADMINFACET_ADDRESS_SEPOLIA.
func AddressKey(name, network string) string {
	return strings.ToUpper(name) + "_ADDRESS_" + strings.ToUpper(network)
}

// DiamondAddressKey formats the env key for the diamond proxy itself.
func DiamondAddressKey(network string) string {
	return AddressKey("DIAMOND", network)
}

// Upsert rewrites path with key set to value. Surrounding whitespace is
// trimmed and the file always ends with a single newline.
func (s *DotEnvStore) Upsert(path m.Path, key, value string) error {
	if key == "" {
		return errors.New("upsert env: empty key")
	}

	data, err := os.ReadFile(string(path))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read env file: %w", err)
	}

	env := string(data)
	line := key + "=" + value

	pattern := regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(key) + `=.*$`)
	if loc := pattern.FindStringIndex(env); loc != nil {
		env = env[:loc[0]] + line + env[loc[1]:]
	} else {
		env += "\n" + line
	}

	if err := os.WriteFile(string(path), []byte(strings.TrimSpace(env)+"\n"), 0o600); err != nil {
		return fmt.Errorf("write env file: %w", err)
	}

	return nil
}

// Get reads key from the dotenv file. A missing file is not an error.
func (s *DotEnvStore) Get(path m.Path, key string) (string, bool, error) {
	values, err := godotenv.Read(string(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}

		return "", false, fmt.Errorf("parse env file: %w", err)
	}

	value, ok := values[key]

	return value, ok, nil
}
