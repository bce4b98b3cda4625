//go:build !(js && wasm)

package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/skillverse/internal/config"
	"github.com/dmitrijs2005/skillverse/internal/kv"
	"github.com/dmitrijs2005/skillverse/internal/kv/sqlkv"
)

func openPlatformStore(ctx context.Context, cfg *config.Config) (kv.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		return sqlkv.Open(ctx, sqlkv.DriverSQLite, cfg.StoreDSN)
	case config.DriverPostgres:
		return sqlkv.Open(ctx, sqlkv.DriverPostgres, cfg.StoreDSN)
	case config.DriverBrowser:
		return nil, fmt.Errorf("store driver %q requires a js/wasm build", cfg.StoreDriver)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
