/*
Package storage provides the object storage service backing the attachment store.

Two backends are supported: a local public directory (served statically by the
HTTP layer) and S3-compatible object storage for deployments where the images
are hosted elsewhere.
*/
package storage

import (
	"context"
	"fmt"
)

// Backend identifiers accepted by NewStorageService.
const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

// ServiceConfig holds the configuration required to connect to the storage service.
type ServiceConfig struct {
	Backend  string
	LocalDir string

	S3BucketName      string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
}

// StorageService defines the public interface for writing attachment objects.
// There is no delete: attachments are never removed once written.
type StorageService interface {
	// SaveObject writes the object under the given key. Writing the same key
	// twice overwrites, but keys are collision-resistant by construction.
	SaveObject(ctx context.Context, key string, data []byte, contentType string) error
}

// NewStorageService is the factory function for StorageService.
// It initializes and returns a concrete implementation based on the provided configuration.
func NewStorageService(cfg ServiceConfig) (StorageService, error) {
	switch cfg.Backend {
	case "", BackendLocal:
		return newLocalClient(cfg)
	case BackendS3:
		return newS3Client(cfg)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
