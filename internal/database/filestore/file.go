// Package filestore keeps each encoded price list in its own file under a directory.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/osse101/BuyerMerchant_Go/internal/domain"
	"github.com/osse101/BuyerMerchant_Go/internal/repository"
)

var validAgentID = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// PriceListStore implements repository.PriceListStore on the local filesystem.
type PriceListStore struct {
	dir string
}

var _ repository.PriceListStore = (*PriceListStore)(nil)

// New creates the directory if needed and returns a store rooted there.
func New(dir string) (*PriceListStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create price list directory: %w", err)
	}
	return &PriceListStore{dir: dir}, nil
}

func (s *PriceListStore) path(agentID string) (string, error) {
	if !validAgentID.MatchString(agentID) {
		return "", fmt.Errorf("%w: agent id %q", domain.ErrInvalidInput, agentID)
	}
	return filepath.Join(s.dir, agentID+".json"), nil
}

// SavePriceList writes to a temporary file and renames it over the old one,
// so readers see either the previous or the new list.
func (s *PriceListStore) SavePriceList(ctx context.Context, agentID string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.path(agentID)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, agentID+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to save price list for %s: %w", agentID, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to save price list for %s: %w", agentID, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to save price list for %s: %w", agentID, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to save price list for %s: %w", agentID, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to save price list for %s: %w", agentID, err)
	}
	return nil
}

// LoadPriceList returns the stored list or domain.ErrNoPriceListOnBuyer
func (s *PriceListStore) LoadPriceList(ctx context.Context, agentID string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.path(agentID)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNoPriceListOnBuyer, agentID)
		}
		return nil, fmt.Errorf("failed to load price list for %s: %w", agentID, err)
	}
	return data, nil
}

// DeletePriceList removes the file; deleting a missing list is not an error
func (s *PriceListStore) DeletePriceList(ctx context.Context, agentID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.path(agentID)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete price list for %s: %w", agentID, err)
	}
	return nil
}

// Ping checks that the directory is still there.
func (s *PriceListStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("failed to stat price list directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("price list path %s is not a directory", s.dir)
	}
	return nil
}
