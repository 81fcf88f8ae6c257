package booking

import (
	"context"
	"database/sql"

	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interfaces so the repository works both
// with the instrumented wrapper and a plain *sql.DB.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions. Satisfied by *sql.DB and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
