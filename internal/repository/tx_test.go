package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingTx captures the SQL and arguments handed to the underlying
// transaction so statement shapes can be asserted without a database.
// The embedded interface panics on anything not overridden.
type recordingTx struct {
	pgx.Tx
	sql  []string
	args [][]any
	row  pgx.Row
}

func (r *recordingTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	r.sql = append(r.sql, sql)
	r.args = append(r.args, arguments)
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func (r *recordingTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	r.sql = append(r.sql, sql)
	r.args = append(r.args, args)
	return r.row
}

type boolRow struct {
	value bool
}

func (b boolRow) Scan(dest ...any) error {
	if p, ok := dest[0].(*bool); ok {
		*p = b.value
	}
	return nil
}

func TestMarkIncidentResponded_KeepsIncidentProcessing(t *testing.T) {
	rec := &recordingTx{}
	tx := &dispatchTx{q: rec}
	responder := int64(9)

	err := tx.MarkIncidentResponded(context.Background(), 7, &responder)
	require.NoError(t, err)
	require.Len(t, rec.sql, 1)

	// Responding must not bump the incident past the live dispatch:
	// dispatch_status stays processing until the dispatch closes out.
	assert.Contains(t, rec.sql[0], "dispatch_status = 'processing'")
	assert.NotContains(t, rec.sql[0], "dispatch_status = 'responded'")
	assert.Equal(t, []any{&responder, int64(7)}, rec.args[0])
}

func TestIncidentHasActiveDispatch_CoversAllLiveStatuses(t *testing.T) {
	rec := &recordingTx{row: boolRow{value: true}}
	tx := &dispatchTx{q: rec}

	exists, err := tx.IncidentHasActiveDispatch(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, exists)
	require.Len(t, rec.sql, 1)

	// An arrived dispatch is still live and must block a second one.
	assert.Contains(t, rec.sql[0], "'dispatched'")
	assert.Contains(t, rec.sql[0], "'en_route'")
	assert.Contains(t, rec.sql[0], "'arrived'")
}

func TestCloseIncident_ClosesBothStatusColumns(t *testing.T) {
	rec := &recordingTx{}
	tx := &dispatchTx{q: rec}

	err := tx.CloseIncident(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, rec.sql, 1)
	assert.Contains(t, rec.sql[0], "dispatch_status = 'closed'")
	assert.Contains(t, rec.sql[0], "status = 'closed'")
}
