package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo generador de consecutivos por prefijo sobre la tabla
// number_sequences. El upsert bloquea la fila del prefijo hasta el commit de la
// transacción en curso, por lo que el consecutivo queda libre de huecos por
// carrera (aunque un rollback sí puede dejar hueco).
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el generador. Pasar pool o tx (Querier).
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next incrementa y devuelve el siguiente valor del prefijo de forma atómica.
func (r *SequenceRepo) Next(ctx context.Context, prefix string) (int64, error) {
	var next int64
	err := r.q.QueryRow(ctx, `
		INSERT INTO number_sequences (prefix, last_value)
		VALUES ($1, 1)
		ON CONFLICT (prefix)
		DO UPDATE SET last_value = number_sequences.last_value + 1
		RETURNING last_value`,
		prefix,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next sequence %q: %w", prefix, err)
	}
	return next, nil
}
