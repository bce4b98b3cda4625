package users

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/skillverse/internal/common"
	"github.com/dmitrijs2005/skillverse/internal/kv"
	"github.com/dmitrijs2005/skillverse/internal/models"
	"github.com/stretchr/testify/require"
)

func rec(email, name string) models.UserRecord {
	return models.UserRecord{
		User:     models.User{Username: name, Email: email, Settings: models.DefaultSettings(name)},
		Password: "digest-" + name,
	}
}

func TestAll_EmptyWhenAbsent(t *testing.T) {
	r := New(kv.NewMemory())
	db, err := r.All(context.Background())
	require.NoError(t, err)
	require.NotNil(t, db)
	require.Empty(t, db)
}

func TestPutGet(t *testing.T) {
	r := New(kv.NewMemory())
	ctx := context.Background()

	require.NoError(t, r.Put(ctx, rec("ana@x.com", "ana")))
	require.NoError(t, r.Put(ctx, rec("bob@x.com", "bob")))

	got, ok, err := r.Get(ctx, "ana@x.com")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "ana", got.Username)
	require.Equal(t, "digest-ana", got.Password)

	_, ok, err = r.Get(ctx, "nobody@x.com")
	require.NoError(t, err)
	require.False(t, ok)

	db, err := r.All(ctx)
	require.NoError(t, err)
	require.Len(t, db, 2)
}

func TestPut_ReplacesSameEmail(t *testing.T) {
	r := New(kv.NewMemory())
	ctx := context.Background()

	require.NoError(t, r.Put(ctx, rec("ana@x.com", "ana")))
	require.NoError(t, r.Put(ctx, rec("ana@x.com", "ana2")))

	db, err := r.All(ctx)
	require.NoError(t, err)
	require.Len(t, db, 1)
	require.Equal(t, "ana2", db["ana@x.com"].Username)
}

func TestAll_CorruptRecord(t *testing.T) {
	store := kv.NewMemory()
	require.NoError(t, store.Set(context.Background(), Key, []byte("[1,2")))

	_, err := New(store).All(context.Background())
	require.ErrorIs(t, err, common.ErrCorruptRecord)
}
