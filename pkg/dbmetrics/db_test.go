package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvz16/SalonBookingService/pkg/metrics"
)

// Один экземпляр на тестовый бинарник: повторная регистрация коллекторов
// в prometheus вызывает панику
var testMetrics = metrics.New("dbmetrics-test")

func TestWrappedDBPassesQueriesThrough(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	stopCh := make(chan struct{})
	defer close(stopCh)

	wrapped := WrapWithDefault(db, testMetrics, stopCh)

	mock.ExpectQuery("SELECT id FROM services").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectExec("DELETE FROM appointments").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := wrapped.QueryContext(context.Background(), "SELECT id FROM services")
	require.NoError(t, err)
	rows.Close()

	_, err = wrapped.ExecContext(context.Background(), "DELETE FROM appointments WHERE id = 1")
	require.NoError(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWrappedTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	wrapped := Wrap(db, testMetrics)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO appointments").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectCommit()

	tx, err := wrapped.BeginTx(context.Background(), &sql.TxOptions{Isolation: sql.LevelSerializable})
	require.NoError(t, err)

	_, err = tx.ExecContext(context.Background(), "INSERT INTO appointments (id) VALUES (1)")
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetExecutor(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	wrapped := Wrap(db, testMetrics)

	ctx := context.Background()
	assert.False(t, IsInTransaction(ctx))
	assert.Equal(t, DBExecutor(wrapped), GetExecutor(ctx, wrapped))

	tx := &Tx{metrics: testMetrics}
	txCtx := WithExecutor(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, DBExecutor(tx), GetExecutor(txCtx, wrapped))
}

func TestQueryOperation(t *testing.T) {
	assert.Equal(t, "select", queryOperation("SELECT 1"))
	assert.Equal(t, "insert", queryOperation("INSERT INTO t VALUES (1)"))
	assert.Equal(t, "unknown", queryOperation("   "))
}
