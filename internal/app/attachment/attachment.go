/*
Package attachment implements the attachment store: base64 image payloads are
decoded and written to object storage under collision-resistant names, and a
stable reference path is returned for later retrieval via static hosting.
*/
package attachment

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"dmchat/internal/app/storage"
	"dmchat/internal/pkg/randx"
)

// RefPrefix is the public path prefix under which attachment references resolve.
const RefPrefix = "img"

// Images always arrive as JPEG payloads from the clients of this API.
const imageContentType = "image/jpeg"

// ErrDecode indicates that the payload was not valid base64 data.
var ErrDecode = errors.New("invalid base64 image payload")

// Store persists base64-delivered images. It enforces no size cap of its own;
// the request body limit upstream bounds payloads before they reach this layer.
// There is no deduplication and no deletion.
type Store struct {
	objects storage.StorageService
}

// NewStore returns a Store writing through the given object storage service.
func NewStore(objects storage.StorageService) *Store {
	return &Store{objects: objects}
}

// Save decodes the base64 payload and writes it under a random object name.
// It returns the stable reference path, e.g. "img/<uuid>.jpg".
func (s *Store) Save(ctx context.Context, base64Payload string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(base64Payload)
	if err != nil {
		return "", ErrDecode
	}

	name := randx.AttachmentName() + ".jpg"

	if err := s.objects.SaveObject(ctx, name, data, imageContentType); err != nil {
		return "", fmt.Errorf("save attachment: %w", err)
	}

	return RefPrefix + "/" + name, nil
}
