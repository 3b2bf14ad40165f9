package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	domainerrors "github.com/clipworks/clipserve/contexts/media-pipeline/clip-service/domain/errors"
	"github.com/clipworks/clipserve/contexts/media-pipeline/clip-service/ports"
)

const (
	fileNamePrefix = "clip-"
	fileExtension  = ".mp4"
)

// Store keeps produced clips in a single flat directory. Artifact identity
// is the file name; there are no subdirectories and no metadata sidecars.
type Store struct {
	root   string
	logger *slog.Logger
}

// NewStore creates the storage root if absent. An unusable root is a fatal
// startup condition; callers should abort bootstrap on error.
func NewStore(root string, logger *slog.Logger) (*Store, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, errors.New("storage root is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root %s: %w", root, err)
	}
	return &Store{root: root, logger: logger}, nil
}

func (s *Store) Root() string { return s.root }

func (s *Store) FileNameFor(id string) string {
	return fileNamePrefix + id + fileExtension
}

// PathFor joins the storage root with a validated bare file name. Names
// carrying separators, parent segments, or absolute paths never resolve
// outside the root; they are rejected before any filesystem access.
func (s *Store) PathFor(fileName string) (string, error) {
	if err := validateFileName(fileName); err != nil {
		return "", err
	}
	return filepath.Join(s.root, fileName), nil
}

func (s *Store) Exists(fileName string) (bool, error) {
	path, err := s.PathFor(fileName)
	if err != nil {
		return false, err
	}
	info, err := os.Stat(path)
	switch {
	case err == nil:
		return !info.IsDir(), nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("stat %s: %w", fileName, err)
	}
}

func (s *Store) Open(fileName string) (io.ReadCloser, ports.ArtifactInfo, error) {
	path, err := s.PathFor(fileName)
	if err != nil {
		return nil, ports.ArtifactInfo{}, err
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ports.ArtifactInfo{}, fmt.Errorf("%s: %w", fileName, domainerrors.ErrNotFound)
	}
	if err != nil {
		return nil, ports.ArtifactInfo{}, fmt.Errorf("open %s: %w", fileName, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, ports.ArtifactInfo{}, fmt.Errorf("stat %s: %w", fileName, err)
	}
	return f, ports.ArtifactInfo{
		FileName: fileName,
		Size:     info.Size(),
		ModTime:  info.ModTime(),
	}, nil
}

func (s *Store) Remove(fileName string) error {
	path, err := s.PathFor(fileName)
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", fileName, domainerrors.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("remove %s: %w", fileName, err)
	}
	return nil
}

// SweepOlderThan removes clip files whose modification time is before
// cutoff. Files that do not carry the clip naming scheme are left alone.
func (s *Store) SweepOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return 0, fmt.Errorf("read storage root: %w", err)
	}

	removed := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, fileNamePrefix) || !strings.HasSuffix(name, fileExtension) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.root, name)); err != nil {
			if s.logger != nil {
				s.logger.Warn("sweep could not remove expired clip",
					"event", "clip_sweep_remove_failed",
					"module", "media-pipeline/clip-service",
					"layer", "adapter",
					"file_name", name,
					"error", err.Error(),
				)
			}
			continue
		}
		removed++
	}
	return removed, nil
}

func validateFileName(fileName string) error {
	if strings.TrimSpace(fileName) == "" {
		return fmt.Errorf("file name is required: %w", domainerrors.ErrInvalidFilename)
	}
	if strings.ContainsAny(fileName, `/\`) || strings.Contains(fileName, "..") {
		return fmt.Errorf("%s: %w", fileName, domainerrors.ErrInvalidFilename)
	}
	if filepath.Base(fileName) != fileName || filepath.IsAbs(fileName) {
		return fmt.Errorf("%s: %w", fileName, domainerrors.ErrInvalidFilename)
	}
	return nil
}
