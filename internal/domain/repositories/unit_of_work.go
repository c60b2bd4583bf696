package repositories

import "context"

// TxFunc is the body of a unit of work. Repository calls made with the ctx it
// receives take part in the same transaction.
type TxFunc func(ctx context.Context) error

// UnitOfWork runs a TxFunc atomically. A nested Do joins the transaction
// already carried by ctx and only the outermost call commits.
type UnitOfWork interface {
	Do(ctx context.Context, fn TxFunc) error
}
