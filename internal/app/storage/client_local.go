package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// localClient implements StorageService against a directory on the local
// filesystem, the same directory the HTTP layer serves under /img.
type localClient struct {
	dir string
}

func newLocalClient(cfg ServiceConfig) (*localClient, error) {
	if cfg.LocalDir == "" {
		return nil, errors.New("local storage requires a directory")
	}

	if err := os.MkdirAll(cfg.LocalDir, 0o755); err != nil {
		return nil, fmt.Errorf("create image directory %q: %w", cfg.LocalDir, err)
	}

	return &localClient{dir: cfg.LocalDir}, nil
}

// SaveObject writes the object as a file inside the image directory.
// Keys must be plain file names; anything resembling a path is rejected.
func (c *localClient) SaveObject(ctx context.Context, key string, data []byte, contentType string) error {
	if key == "" || filepath.Base(key) != key {
		return fmt.Errorf("invalid object key %q", key)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(c.dir, key)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write object %q: %w", key, err)
	}

	return nil
}
