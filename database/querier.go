// Package database — repository'lerin kullandığı sorgu arayüzü.
package database

import (
	"context"
	"database/sql"
)

// TxQuerier, hem *sql.DB hem *sql.Tx tarafından karşılanan interface.
//
// Repository'ler bu interface'i dependency olarak alır —
// normal operasyonlarda *sql.DB, transaction içinde *sql.Tx geçilebilir.
// database/sql paketinde bu interface tanımlı değildir, kendimiz tanımlarız
// (Go duck typing sayesinde hem DB hem Tx karşılar).
type TxQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
