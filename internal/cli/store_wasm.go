//go:build js && wasm

package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/skillverse/internal/config"
	"github.com/dmitrijs2005/skillverse/internal/kv"
	"github.com/dmitrijs2005/skillverse/internal/kv/browser"
)

func openPlatformStore(ctx context.Context, cfg *config.Config) (kv.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverBrowser:
		s, err := browser.Open()
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverSQLite, config.DriverPostgres:
		return nil, fmt.Errorf("store driver %q is not available in js/wasm builds", cfg.StoreDriver)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
