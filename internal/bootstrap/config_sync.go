package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/BuyerMerchant_Go/internal/catalog"
	"github.com/osse101/BuyerMerchant_Go/internal/repository"
)

// SyncCatalog loads and validates the item catalog at path and upserts every
// template into repo. The materials listed in the file are returned so the
// catalog can name them; an empty list means the defaults apply.
func SyncCatalog(ctx context.Context, path string, repo repository.Template) (*catalog.Config, error) {
	slog.Info(LogMsgSyncingCatalog, "path", path)

	cfg, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadItems, err)
	}

	n, err := catalog.SyncToDatabase(ctx, cfg, repo)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSyncItems, err)
	}

	slog.Info(LogMsgCatalogSynced, "templates", n, "materials", len(cfg.Materials))
	return cfg, nil
}
