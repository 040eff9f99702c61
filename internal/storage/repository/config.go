package repository

import (
	"context"
	"fmt"
)

// GetPlacementPrice возвращает текущую цену размещения.
// Строка с ценой создаётся сид-миграцией, поэтому всегда существует.
func (s *Storage) GetPlacementPrice(ctx context.Context) (float64, error) {
	const op = "storage.GetPlacementPrice"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT placement_price FROM app_config WHERE id = 1`
	var price float64
	if err := s.DB.QueryRowContext(ctx, query).Scan(&price); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return price, nil
}

// SetPlacementPrice перезаписывает цену размещения.
func (s *Storage) SetPlacementPrice(ctx context.Context, price float64) error {
	const op = "storage.SetPlacementPrice"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE app_config SET placement_price = $1 WHERE id = 1`
	if _, err := s.DB.ExecContext(ctx, query, price); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
