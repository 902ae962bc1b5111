package attachment

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"dmchat/internal/app/storage"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	dir := t.TempDir()
	objects, err := storage.NewStorageService(storage.ServiceConfig{
		Backend:  storage.BackendLocal,
		LocalDir: dir,
	})
	require.NoError(t, err)

	return NewStore(objects), dir
}

func TestSave_StoresDecodedPayload(t *testing.T) {
	store, dir := newTestStore(t)

	raw := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10}
	payload := base64.StdEncoding.EncodeToString(raw)

	ref, err := store.Save(context.Background(), payload)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(ref, RefPrefix+"/"), "ref %q must start with %q", ref, RefPrefix+"/")
	require.True(t, strings.HasSuffix(ref, ".jpg"), "ref %q must end with .jpg", ref)

	stored, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(ref, RefPrefix+"/")))
	require.NoError(t, err)
	require.Equal(t, raw, stored)
}

func TestSave_InvalidBase64(t *testing.T) {
	store, dir := newTestStore(t)

	_, err := store.Save(context.Background(), "not-base64!!!")
	require.ErrorIs(t, err, ErrDecode)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries, "failed decode must not leave files behind")
}

func TestSave_DistinctRefsForSamePayload(t *testing.T) {
	store, _ := newTestStore(t)

	payload := base64.StdEncoding.EncodeToString([]byte("same bytes"))

	ref1, err := store.Save(context.Background(), payload)
	require.NoError(t, err)
	ref2, err := store.Save(context.Background(), payload)
	require.NoError(t, err)

	require.NotEqual(t, ref1, ref2, "names are random, not content-derived")
}
