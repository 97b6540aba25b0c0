package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/candrasdkd/easywork/internal/model"
	"github.com/candrasdkd/easywork/internal/platform/logger"
)

type OptionRepository interface {
	List(ctx context.Context, kind model.OptionKind) ([]model.Option, error)
	Append(ctx context.Context, kind model.OptionKind, name string) (model.Option, error)
}

type service struct {
	repo           OptionRepository
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewOptionService(
	repo OptionRepository,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

// List returns the autocomplete options of one kind, ordered by name.
func (s *service) List(ctx context.Context, kind model.OptionKind) ([]model.Option, error) {
	const op = "option.service.List"
	log := logger.With(logger.String("kind", string(kind)))

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	out, err := s.repo.List(ctx, kind)
	if err != nil {
		log.Error(ctx, "repository list options", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// Append adds a new option value entered through a dialog.
func (s *service) Append(ctx context.Context, kind model.OptionKind, name string) (model.Option, error) {
	const op = "option.service.Append"
	log := logger.With(
		logger.String("kind", string(kind)),
		logger.String("name", name),
	)

	if strings.TrimSpace(name) == "" {
		return model.Option{}, fmt.Errorf("option name must be non-empty: %w", model.ErrInvalidArgument)
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	out, err := s.repo.Append(ctx, kind, name)
	if err != nil {
		log.Error(ctx, "repository append option", logger.ErrorF(err))
		return model.Option{}, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
