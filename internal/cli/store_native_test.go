//go:build !(js && wasm)

package cli

import (
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/skillverse/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStore_Drivers(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		dsn     string
		wantErr string
	}{
		{name: "memory", driver: config.DriverMemory},
		{name: "sqlite", driver: config.DriverSQLite, dsn: filepath.Join(t.TempDir(), "sv.db")},
		{name: "browser needs wasm", driver: config.DriverBrowser, wantErr: "requires a js/wasm build"},
		{name: "unknown", driver: "mongo", wantErr: `unknown store driver "mongo"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.StoreDriver = tt.driver
			cfg.StoreDSN = tt.dsn

			s, err := openStore(ctx(), cfg)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })

			require.NoError(t, s.Set(ctx(), "k", []byte(`"v"`)))
			v, err := s.Get(ctx(), "k")
			require.NoError(t, err)
			assert.Equal(t, `"v"`, string(v))
		})
	}
}
