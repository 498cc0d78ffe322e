// Package storage is a bucket-style blob store backed by the local
// filesystem. Files land under <dir>/<bucket>/ with generated keys and are
// served statically under the configured public base URL.
package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	BucketWasteImages  = "waste-images"
	BucketRewardImages = "reward-images"
	BucketAvatars      = "avatars"
)

type Store struct {
	dir     string
	baseURL string
}

func New(dir, baseURL string) (*Store, error) {
	for _, bucket := range []string{BucketWasteImages, BucketRewardImages, BucketAvatars} {
		if err := os.MkdirAll(filepath.Join(dir, bucket), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
	}
	return &Store{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save writes the blob under a generated key and returns its public URL.
// The key keeps the original file extension: <prefix>_<uuid>.<ext>.
func (s *Store) Save(bucket, prefix, originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	key := fmt.Sprintf("%s_%s%s", prefix, uuid.New().String(), ext)

	f, err := os.Create(filepath.Join(s.dir, bucket, key))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.baseURL + "/" + path.Join(bucket, key), nil
}

// Dir returns the root directory, used to mount the static file route.
func (s *Store) Dir() string {
	return s.dir
}
