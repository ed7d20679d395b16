package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithinTx_CommitsOnSuccess(t *testing.T) {
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	uow := NewSQLiteUnitOfWork(conn)
	err = uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO fronts (id, name, created_at, updated_at) VALUES ('f1', 'F', '', '')`)
		return err
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM fronts`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	boom := errors.New("boom")
	uow := NewSQLiteUnitOfWork(conn)
	err = uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO fronts (id, name, created_at, updated_at) VALUES ('f1', 'F', '', '')`); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM fronts`).Scan(&count))
	assert.Equal(t, 0, count)
}
