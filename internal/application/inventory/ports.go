package inventory

import (
	"context"

	"github.com/jhoicas/retail-inventory/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad: o se aplican todos
// los pasos del callback o ninguno. Las esperas de bloqueo son acotadas;
// un conflicto de bloqueo o serialización se devuelve como domain.ErrContention.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		invRepo repository.InventoryRepository,
		productRepo repository.ProductRepository,
	) error) error
}
