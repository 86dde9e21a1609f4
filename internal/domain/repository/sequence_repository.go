package repository

import "context"

// SequenceRepository generador de consecutivos por prefijo (lotes, pedidos, OC).
// Next incrementa y devuelve el siguiente valor del prefijo de forma atómica
// (fila bloqueada dentro de la transacción en curso). El número formateado es
// opaco para el dominio una vez asignado.
type SequenceRepository interface {
	Next(ctx context.Context, prefix string) (int64, error)
}
