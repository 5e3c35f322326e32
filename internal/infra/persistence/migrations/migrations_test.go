package migrations

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_ExposesInitialSchema(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	up, identifier, err := src.ReadUp(first)
	require.NoError(t, err)
	defer up.Close()
	assert.Equal(t, "init_schema", identifier)

	body, err := io.ReadAll(up)
	require.NoError(t, err)
	assert.Contains(t, string(body), "CHECK (stock_quantity >= 0)")
	assert.Contains(t, string(body), "CHECK (stock_quantity > 0 OR NOT is_available)")
	assert.Contains(t, string(body), "PRIMARY KEY (group_id, user_id)")
	assert.Contains(t, string(body), "(receiver_id IS NULL) <> (group_id IS NULL)")

	down, _, err := src.ReadDown(first)
	require.NoError(t, err)
	defer down.Close()
}
