package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
)

// fakeTx транзакция-заглушка: запросы внутри fn в тестах не выполняются
type fakeTx struct {
	commitErr error

	commits   int
	rollbacks int
}

func (t *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row { return nil }
func (t *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}
func (t *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) Commit() error {
	t.commits++
	return t.commitErr
}

func (t *fakeTx) Rollback() error {
	t.rollbacks++
	return nil
}

type fakeBeginner struct {
	tx *fakeTx

	begins int
}

func (b *fakeBeginner) BeginTx(context.Context, *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.begins++
	return b.tx, nil
}

func serializationError() error {
	return &pq.Error{Code: "40001", Message: "could not serialize access due to concurrent update"}
}

// wrapRepoStyle оборачивает ошибку так, как это делают репозиторий и usecase:
// цепочка %w должна доносить *pq.Error до менеджера транзакций
func wrapRepoStyle(err error) error {
	repoErr := fmt.Errorf("appointment.repository: failed to execute query: GetByID - execute query: %w", err)
	return fmt.Errorf("internal error: failed to load appointment: %w", repoErr)
}

func TestDoSerializable_RetriesStatementLevelSerializationFailure(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(beginner)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return wrapRepoStyle(serializationError())
	})

	require.Error(t, err)
	assert.True(t, isSerializationFailure(err))
	assert.Equal(t, 3, attempts)
	assert.Equal(t, 3, beginner.begins)
	assert.Equal(t, 3, beginner.tx.rollbacks)
}

func TestDoSerializable_SucceedsAfterRetry(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(beginner)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts == 1 {
			return wrapRepoStyle(serializationError())
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, 1, beginner.tx.commits)
}

func TestDoSerializable_RetriesCommitTimeSerializationFailure(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{commitErr: serializationError()}}
	m := NewTransactionManager(beginner)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.Error(t, err)
	assert.True(t, isSerializationFailure(err))
	assert.Equal(t, 3, beginner.begins)
}

func TestDoSerializable_NoRetryOnOtherErrors(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(beginner)

	boom := errors.New("constraint violated")
	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 1, beginner.tx.rollbacks)
}

func TestDo_PassesErrorThroughAndRollsBack(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(beginner)

	boom := errors.New("insert failed")
	err := m.Do(context.Background(), func(ctx context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, beginner.tx.rollbacks)
	assert.Equal(t, 0, beginner.tx.commits)
}

func TestDo_CommitsOnSuccess(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(beginner)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, beginner.tx.commits)
	assert.Equal(t, 0, beginner.tx.rollbacks)
}
