package memory

import (
	"context"

	"github.com/jhoicas/logistics-api/internal/application/inventory"
	"github.com/jhoicas/logistics-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta fn sobre una copia del store con el lock de escritura tomado.
// Si fn devuelve error la copia se descarta (rollback); si no, reemplaza al estado actual.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run serializa las transacciones entre sí y con las escrituras fuera de tx.
func (r *TxRunner) Run(ctx context.Context, fn func(
	units repository.UnitRepository,
	products repository.ProductRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	work := r.s.data.clone()
	if err := fn(&UnitRepo{s: r.s, tx: work}, &ProductRepo{s: r.s, tx: work}); err != nil {
		return err
	}
	r.s.data = work
	return nil
}
