package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type counterRepository struct {
	db *gorm.DB
}

func NewCounterRepository(db *gorm.DB) *counterRepository {
	return &counterRepository{db: db}
}

func (r *counterRepository) Next(ctx context.Context, name string) (int64, error) {
	return r.Reserve(ctx, name, 1)
}

func (r *counterRepository) Reserve(ctx context.Context, name string, n int) (int64, error) {
	if n < 1 {
		return 0, fmt.Errorf("reserve %d ids from %s: count must be positive", n, name)
	}

	var last int64
	err := r.db.WithContext(ctx).Raw(
		`INSERT INTO counters (name, value) VALUES (?, ?)
		 ON CONFLICT (name) DO UPDATE SET value = counters.value + EXCLUDED.value
		 RETURNING value`,
		name, n,
	).Scan(&last).Error
	if err != nil {
		return 0, fmt.Errorf("advance counter %s: %w", name, err)
	}

	return last - int64(n) + 1, nil
}
