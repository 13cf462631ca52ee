package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	appinventory "github.com/jhoicas/retail-inventory/internal/application/inventory"
	"github.com/jhoicas/retail-inventory/internal/domain"
	"github.com/jhoicas/retail-inventory/internal/domain/repository"
)

var _ appinventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. La espera por filas bloqueadas está acotada por
// lock_timeout; un conflicto de bloqueo, deadlock o serialización se
// devuelve como domain.ErrContention. Si ctx se cancela antes del Commit,
// la transacción se revierte: nunca se confirma tras el abandono del caller.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	invRepo repository.InventoryRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "SET LOCAL lock_timeout = '3s'"); err != nil {
		return fmt.Errorf("set lock_timeout: %w", err)
	}

	if err := fn(NewMovementRepository(tx), NewInventoryRepository(tx), NewProductRepository(tx)); err != nil {
		if isContention(err) {
			return domain.ErrContention
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		if isContention(err) {
			return domain.ErrContention
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
