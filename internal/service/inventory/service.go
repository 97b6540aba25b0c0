package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/candrasdkd/easywork/internal/form"
	"github.com/candrasdkd/easywork/internal/model"
	"github.com/candrasdkd/easywork/internal/platform/logger"
)

type InventoryRepository interface {
	ListMonth(ctx context.Context, q model.MonthQuery) ([]model.InventoryRecord, error)
	ByID(ctx context.Context, id string) (*model.InventoryRecord, error)
	Create(ctx context.Context, rec model.InventoryRecord) (model.InventoryRecord, error)
	Replace(ctx context.Context, rec model.InventoryRecord) error
	Delete(ctx context.Context, id string) error
}

type ProfileReader interface {
	ByUID(ctx context.Context, uid string) (*model.UserProfile, error)
}

type service struct {
	repo           InventoryRepository
	profiles       ProfileReader
	variant        form.Variant[model.InventoryRecord]
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewInventoryService(
	repo InventoryRepository,
	profiles ProfileReader,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		profiles:       profiles,
		variant:        form.InventoryVariant(),
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (s *service) ListMonth(ctx context.Context, who model.Identity, month model.Month, order model.SortOrder) ([]model.InventoryRecord, error) {
	const op = "inventory.service.ListMonth"
	log := logger.With(
		logger.String("month", month.String()),
		logger.String("uid", who.UID),
	)

	q := model.MonthQuery{
		Month:    month,
		UserID:   who.UID,
		AllUsers: who.Admin,
		Order:    order,
	}
	if err := q.Validate(); err != nil {
		log.Error(ctx, "validation: month query", logger.ErrorF(err))
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	out, err := s.repo.ListMonth(ctx, q)
	if err != nil {
		log.Error(ctx, "repository list month", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (s *service) Create(ctx context.Context, who model.Identity, rec model.InventoryRecord) (model.InventoryRecord, error) {
	const op = "inventory.service.Create"
	log := logger.With(logger.String("uid", who.UID))

	if missing := s.variant.Missing(rec); len(missing) > 0 {
		return model.InventoryRecord{}, &form.ValidationError{Missing: missing}
	}

	profile, err := s.profile(ctx, who)
	if err != nil {
		log.Error(ctx, "load acting profile", logger.ErrorF(err))
		return model.InventoryRecord{}, fmt.Errorf("%s: %w", op, err)
	}

	rec = rec.Normalized(who.UID, profile.PICName)

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	stored, err := s.repo.Create(ctx, rec)
	if err != nil {
		log.Error(ctx, "repository create", logger.ErrorF(err))
		return model.InventoryRecord{}, fmt.Errorf("%s: %w", op, err)
	}

	return stored, nil
}

func (s *service) Replace(ctx context.Context, who model.Identity, rec model.InventoryRecord) error {
	const op = "inventory.service.Replace"
	log := logger.With(
		logger.String("uid", who.UID),
		logger.String("record_id", rec.ID),
	)

	if strings.TrimSpace(rec.ID) == "" {
		return errors.Join(model.ErrInvalidArgument, errors.New("record id must be non-empty"))
	}
	if missing := s.variant.Missing(rec); len(missing) > 0 {
		return &form.ValidationError{Missing: missing}
	}

	existing, err := s.ownedRecord(ctx, who, rec.ID)
	if err != nil {
		log.Error(ctx, "load existing record", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	profile, err := s.profile(ctx, who)
	if err != nil {
		log.Error(ctx, "load acting profile", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	rec = rec.Normalized(existing.UserID, profile.PICName)

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if err := s.repo.Replace(ctx, rec); err != nil {
		log.Error(ctx, "repository replace", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *service) Delete(ctx context.Context, who model.Identity, id string) error {
	const op = "inventory.service.Delete"
	log := logger.With(
		logger.String("uid", who.UID),
		logger.String("record_id", id),
	)

	if strings.TrimSpace(id) == "" {
		return errors.Join(model.ErrInvalidArgument, errors.New("record id must be non-empty"))
	}

	if _, err := s.ownedRecord(ctx, who, id); err != nil {
		log.Error(ctx, "load existing record", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error(ctx, "repository delete", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *service) ownedRecord(ctx context.Context, who model.Identity, id string) (*model.InventoryRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	existing, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !who.Admin && existing.UserID != who.UID {
		return nil, model.ErrUnauthorized
	}
	return existing, nil
}

func (s *service) profile(ctx context.Context, who model.Identity) (*model.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	return s.profiles.ByUID(ctx, who.UID)
}
