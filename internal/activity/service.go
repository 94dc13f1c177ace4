package activity

import (
	"context"
	"fmt"

	"github.com/misterclayt0n/cadence/internal/models"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=activity_test

type dayStore interface {
	FlatActivityRowsForDay(ctx context.Context, day models.Day) ([]models.ActivityRow, error)
	AllMagnitudes(ctx context.Context) ([]models.Magnitude, error)
	AllResistances(ctx context.Context) ([]models.Resistance, error)
}

type Service struct {
	store dayStore
}

func NewService(store dayStore) *Service {
	return &Service{
		store: store,
	}
}

// Day returns the grouped activity logged on day.
func (s *Service) Day(ctx context.Context, day models.Day) ([]Group, error) {
	rows, err := s.store.FlatActivityRowsForDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("rows for day %s: %w", day, err)
	}

	magnitudes, err := s.store.AllMagnitudes(ctx)
	if err != nil {
		return nil, fmt.Errorf("magnitudes: %w", err)
	}

	resistances, err := s.store.AllResistances(ctx)
	if err != nil {
		return nil, fmt.Errorf("resistances: %w", err)
	}

	return GroupRows(rows, magnitudes, resistances), nil
}
