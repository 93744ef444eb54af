package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/BuyerMerchant_Go/internal/domain"
	"github.com/osse101/BuyerMerchant_Go/internal/logger"
	"github.com/osse101/BuyerMerchant_Go/internal/repository"
)

// ErrInvalidConfig is returned when the catalog file fails validation
var ErrInvalidConfig = errors.New("invalid catalog configuration")

// Config represents the JSON catalog file
type Config struct {
	Version     string                `json:"version"`
	Description string                `json:"description"`
	Items       []domain.ItemTemplate `json:"items"`
	Materials   []domain.Material     `json:"materials"`
}

var validate = validator.New()

// LoadFile reads, parses and validates a catalog file
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every template and rejects duplicate ids
func Validate(cfg *Config) error {
	if cfg == nil || len(cfg.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	seen := make(map[int32]bool, len(cfg.Items))
	for i, t := range cfg.Items {
		if err := validate.Struct(t); err != nil {
			return fmt.Errorf("%w: "+ErrMsgInvalidTemplateFmt, ErrInvalidConfig, i, err)
		}
		if seen[t.ID] {
			return fmt.Errorf("%w: "+ErrMsgDuplicateTemplateFmt, ErrInvalidConfig, t.ID)
		}
		seen[t.ID] = true
	}

	mats := make(map[uint8]bool, len(cfg.Materials))
	for _, m := range cfg.Materials {
		if mats[m.ID] {
			return fmt.Errorf("%w: "+ErrMsgDuplicateMaterialFmt, ErrInvalidConfig, m.ID)
		}
		mats[m.ID] = true
	}
	return nil
}

// NewStaticFromFile loads path and builds a Static catalog from it
func NewStaticFromFile(ctx context.Context, path string) (*Static, *Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	logger.FromContext(ctx).Info(LogMsgCatalogLoaded, "path", path, "templates", len(cfg.Items), "materials", len(cfg.Materials))
	return NewStatic(cfg.Items, cfg.Materials), cfg, nil
}

// SyncToDatabase upserts every template in cfg into repo
func SyncToDatabase(ctx context.Context, cfg *Config, repo repository.Template) (int, error) {
	n, err := repo.UpsertTemplates(ctx, cfg.Items)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgSyncFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgCatalogSynced, "templates", n)
	return n, nil
}
