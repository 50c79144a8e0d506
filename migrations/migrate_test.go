package migrations_test

import (
	"context"
	"testing"

	"event-partners-api/internal/testutil"
	"event-partners-api/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	names, err := migrations.Names()

	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "0001_init.sql", names[0])
	assert.IsNonDecreasing(t, names)
}

func TestApply_Idempotent(t *testing.T) {
	pool := testutil.NewTestPool(t)

	// NewTestPool 已套用過一次，再跑一次不應出錯
	require.NoError(t, migrations.Apply(context.Background(), pool))

	var count int
	require.NoError(t, pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM schema_migrations WHERE name = '0001_init.sql'`).Scan(&count))
	assert.Equal(t, 1, count)
}
