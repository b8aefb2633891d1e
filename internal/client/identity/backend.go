// Package identity establishes the stable per-install device identifier.
// Storage is an explicit ordered chain of backends: the first is preferred,
// later ones are fallbacks for platforms or states where the preferred one
// is unavailable.
package identity

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/agoramujeres/agora-client/internal/client/repositories/metadata"
	"github.com/agoramujeres/agora-client/internal/common"
)

// Backend is one tier of the identity storage chain. TryRead returns ""
// (not an error) when no identifier has been stored yet.
type Backend interface {
	Name() string
	TryRead(ctx context.Context) (string, error)
	TryWrite(ctx context.Context, id string) error
}

// FileBackend keeps the identifier in a mode-0600 file inside the client's
// data directory. It is the preferred tier: the file survives database
// resets and is readable without opening sqlite.
type FileBackend struct {
	path string
}

func NewFileBackend(dataDir string) *FileBackend {
	return &FileBackend{path: filepath.Join(dataDir, "device_id")}
}

func (b *FileBackend) Name() string { return "file" }

func (b *FileBackend) TryRead(ctx context.Context) (string, error) {
	data, err := os.ReadFile(b.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (b *FileBackend) TryWrite(ctx context.Context, id string) error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(b.path, []byte(id+"\n"), 0o600)
}

// MetadataBackend stores the identifier in the local sqlite metadata table
// under the shared device-id key. Fallback tier.
type MetadataBackend struct {
	repo metadata.Repository
}

func NewMetadataBackend(repo metadata.Repository) *MetadataBackend {
	return &MetadataBackend{repo: repo}
}

func (b *MetadataBackend) Name() string { return "metadata" }

func (b *MetadataBackend) TryRead(ctx context.Context) (string, error) {
	v, err := b.repo.Get(ctx, common.DeviceIDKey)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(v)), nil
}

func (b *MetadataBackend) TryWrite(ctx context.Context, id string) error {
	return b.repo.Set(ctx, common.DeviceIDKey, []byte(id))
}
