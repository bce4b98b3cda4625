package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/skillverse/internal/catalog"
	"github.com/dmitrijs2005/skillverse/internal/cryptox"
	"github.com/dmitrijs2005/skillverse/internal/kv"
	"github.com/dmitrijs2005/skillverse/internal/logging"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

type env struct {
	store    kv.Store
	auth     *AuthService
	progress *ProgressService
	career   *CareerService
	device   *DeviceService
}

func newEnvWith(t *testing.T, store kv.Store, scheme cryptox.Scheme) *env {
	t.Helper()

	d, err := cryptox.NewDigester(string(scheme))
	require.NoError(t, err)
	cat, err := catalog.Default()
	require.NoError(t, err)

	log := logging.Nop()
	e := &env{
		store:    store,
		auth:     NewAuthService(store, d, log),
		progress: NewProgressService(store, cat, log),
		career:   NewCareerService(store, cat, log),
		device:   NewDeviceService(store, log),
	}
	e.auth.now = func() time.Time { return fixedNow }
	e.progress.now = func() time.Time { return fixedNow }
	e.career.now = func() time.Time { return fixedNow }
	return e
}

// newEnv uses the legacy scheme to keep tests fast.
func newEnv(t *testing.T) *env {
	return newEnvWith(t, kv.NewMemory(), cryptox.SchemeLegacy)
}

func ctx() context.Context { return context.Background() }
