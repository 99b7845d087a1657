package service

import (
	"context"
	"fmt"
	"math"

	"github.com/alexanderramin/gradecast/internal/domain"
	"github.com/alexanderramin/gradecast/internal/engine"
	"github.com/alexanderramin/gradecast/internal/repository"
)

type preferencesService struct {
	prefs repository.PreferencesRepo
}

func NewPreferencesService(prefs repository.PreferencesRepo) PreferencesService {
	return &preferencesService{prefs: prefs}
}

func (s *preferencesService) Get(ctx context.Context) (*domain.Preferences, error) {
	return s.prefs.Get(ctx)
}

func (s *preferencesService) SetProgram(ctx context.Context, p domain.Program) error {
	if err := validateProgram(p); err != nil {
		return err
	}
	return s.update(ctx, func(prefs *domain.Preferences) { prefs.Program = p })
}

func (s *preferencesService) SetLevel(ctx context.Context, l domain.Level) error {
	if l.Ordinal() == 0 {
		return fmt.Errorf("%w: %q", ErrInvalidLevel, l)
	}
	return s.update(ctx, func(prefs *domain.Preferences) { prefs.Level = l })
}

func (s *preferencesService) SetBias(ctx context.Context, bias float64) error {
	if err := checkBias(bias); err != nil {
		return err
	}
	return s.update(ctx, func(prefs *domain.Preferences) { prefs.Bias = bias })
}

func (s *preferencesService) update(ctx context.Context, apply func(*domain.Preferences)) error {
	prefs, err := s.prefs.Get(ctx)
	if err != nil {
		return fmt.Errorf("loading preferences: %w", err)
	}
	apply(prefs)
	return s.prefs.Upsert(ctx, prefs)
}

func checkBias(bias float64) error {
	if math.IsNaN(bias) || bias < engine.MinBias || bias > engine.MaxBias {
		return fmt.Errorf("%w: must be between %.1f and %.1f, got %v", ErrInvalidBias, engine.MinBias, engine.MaxBias, bias)
	}
	return nil
}
