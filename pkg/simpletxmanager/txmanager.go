package simpletxmanager

import (
	"context"
	"database/sql"

	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/txmanager"
)

// sqlBeginner адаптер *sql.DB к интерфейсу txmanager.TxBeginner
type sqlBeginner struct {
	db *sql.DB
}

func (b *sqlBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	return b.db.BeginTx(ctx, opts)
}

// NewTransactionManager создает transaction manager поверх *sql.DB без метрик
func NewTransactionManager(db *sql.DB) *txmanager.TransactionManager {
	return txmanager.NewTransactionManager(&sqlBeginner{db: db})
}
