// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OnCallSight Authors

package credentials

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

// credentialsFileName is the file the auth commands manage inside the
// user configuration directory.
const credentialsFileName = "credentials.toml"

// storedCredentials is the on-disk layout of the credentials file.
type storedCredentials struct {
	AuthToken string `toml:"auth_token,omitempty"`
}

// FileStore is a Source backed by a TOML credentials file.
//
// The file is read lazily on first use and the value is cached for the
// rest of the process; Save and Clear keep the cache in sync. A missing
// file is the unauthenticated state, not an error.
type FileStore struct {
	path string

	mu     sync.Mutex
	loaded bool
	token  string
}

// NewFileStore returns a FileStore over the given file path. An empty path
// selects the platform default: <user config dir>/burnoutctl/credentials.toml.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve credentials path: %w", err)
		}
		path = filepath.Join(dir, "burnoutctl", credentialsFileName)
	}

	return &FileStore{path: path}, nil
}

// Token returns the stored token, or "" when the file is absent or holds
// no token.
func (f *FileStore) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.loaded {
		var creds storedCredentials
		// a missing or unreadable file means unauthenticated
		if _, err := toml.DecodeFile(f.path, &creds); err == nil {
			f.token = creds.AuthToken
		}
		f.loaded = true
	}

	return f.token
}

// Save writes the token to the credentials file, creating the parent
// directory as needed. The file is created with 0600 permissions.
func (f *FileStore) Save(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}

	file, err := os.OpenFile(f.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("open credentials file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(storedCredentials{AuthToken: token}); err != nil {
		return fmt.Errorf("write credentials file: %w", err)
	}

	f.token = token
	f.loaded = true
	return nil
}

// Clear removes the credentials file. Clearing an absent file is a no-op.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credentials file: %w", err)
	}

	f.token = ""
	f.loaded = true
	return nil
}

// Path returns the location of the credentials file.
func (f *FileStore) Path() string {
	return f.path
}
