package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/skillverse/internal/cryptox"
	"github.com/dmitrijs2005/skillverse/internal/kv"
	"github.com/dmitrijs2005/skillverse/internal/kv/sqlkv"
	"github.com/dmitrijs2005/skillverse/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T) kv.Store {
	t.Helper()
	s, err := sqlkv.Open(context.Background(), sqlkv.DriverSQLite, "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// Progress is device scoped, so it survives a logout/login cycle.
func TestScenario_ProgressSurvivesSession(t *testing.T) {
	backends := map[string]func(t *testing.T) kv.Store{
		"memory": func(*testing.T) kv.Store { return kv.NewMemory() },
		"sqlite": openSQLite,
	}
	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			e := newEnvWith(t, open(t), cryptox.SchemeArgon2id)

			u, err := e.auth.Register(ctx(), "ana", "ana@x.com", "pass1234")
			require.NoError(t, err)
			require.Equal(t, "ana", u.Username)

			cur, ok, err := e.auth.CurrentUser(ctx())
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, "ana@x.com", cur.Email)

			require.NoError(t, e.progress.SaveProgress(ctx(), models.CourseProgress{CourseID: "python", Score: 85, Passed: true}))
			require.NoError(t, e.auth.Logout(ctx()))

			_, err = e.auth.Login(ctx(), "ana@x.com", "pass1234")
			require.NoError(t, err)

			p, ok, err := e.progress.Progress(ctx(), "python")
			require.NoError(t, err)
			require.True(t, ok)
			require.True(t, p.Passed)
		})
	}
}
