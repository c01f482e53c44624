package gateway

import (
	"os"
	"path/filepath"
	"strings"
)

// TokenSource supplies the bearer token sent with every request.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed token.
type StaticToken string

func (t StaticToken) Token() string { return string(t) }

// FileToken keeps the token in a file, the CLI's local client-side storage.
// The file is read on every request; a missing file yields an empty token.
type FileToken struct {
	Path string
}

func (f FileToken) Token() string {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

// Save stores token, creating the parent directory when needed.
func (f FileToken) Save(token string) error {
	if dir := filepath.Dir(f.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(f.Path, []byte(token+"\n"), 0o600)
}

// Clear removes the stored token. A missing file is not an error.
func (f FileToken) Clear() error {
	if err := os.Remove(f.Path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
