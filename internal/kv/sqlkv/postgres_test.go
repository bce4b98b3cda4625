package sqlkv

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/skillverse/internal/dbx"
	"github.com/dmitrijs2005/skillverse/internal/kv"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(db, dbx.DialectPostgres), mock
}

func TestPostgres_GetUsesDollarPlaceholders(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT value FROM kv WHERE key = \$1`).
		WithArgs("skillverse_users_db").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{}`)))

	v, err := s.Get(context.Background(), "skillverse_users_db")
	require.NoError(t, err)
	require.Equal(t, []byte(`{}`), v)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_GetNoRows(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT value FROM kv WHERE key = \$1`).
		WithArgs("absent").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	v, err := s.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_SetUpserts(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(`INSERT INTO kv \(key, value\) VALUES \(\$1, \$2\) ON CONFLICT\(key\) DO UPDATE`).
		WithArgs("k", []byte("v")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Set(context.Background(), "k", []byte("v")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_AtomicCommitAndRollback(t *testing.T) {
	s, mock := newMockStore(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM kv WHERE key = \$1`).WithArgs("a").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.Atomic(ctx, func(ctx context.Context, r kv.Repository) error {
		return r.Delete(ctx, "a")
	}))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM kv`).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := s.Atomic(ctx, func(ctx context.Context, r kv.Repository) error {
		if err := r.Clear(ctx); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_ListScansRows(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT key, value FROM kv`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).
			AddRow("a", []byte("1")).
			AddRow("b", []byte("2")))

	m, err := s.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, map[string][]byte{"a": []byte("1"), "b": []byte("2")}, m)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_ExecErrorWrapped(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(`DELETE FROM kv WHERE key = \$1`).WithArgs("k").WillReturnError(errors.New("conn reset"))

	err := s.Delete(context.Background(), "k")
	require.ErrorContains(t, err, "failed to delete kv[k]")
	require.ErrorContains(t, err, "conn reset")
}
