package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/candrasdkd/easywork/internal/model"
	"github.com/candrasdkd/easywork/internal/platform/logger"
)

type UserRepository interface {
	ByUID(ctx context.Context, uid string) (*model.UserProfile, error)
	UpdateNames(ctx context.Context, uid, displayName, picName string) error
}

type service struct {
	repo           UserRepository
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewUserService(
	repo UserRepository,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (s *service) Profile(ctx context.Context, who model.Identity) (*model.UserProfile, error) {
	const op = "user.service.Profile"
	log := logger.With(logger.String("uid", who.UID))

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	profile, err := s.repo.ByUID(ctx, who.UID)
	if err != nil {
		log.Error(ctx, "repository profile by uid", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return profile, nil
}

// UpdateNames changes the display name and the person-responsible name shown
// on future records. Past records keep the name they were saved with.
func (s *service) UpdateNames(ctx context.Context, who model.Identity, displayName, picName string) (*model.UserProfile, error) {
	const op = "user.service.UpdateNames"
	log := logger.With(logger.String("uid", who.UID))

	displayName = strings.TrimSpace(displayName)
	picName = strings.TrimSpace(picName)
	if displayName == "" && picName == "" {
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("nothing to update"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if err := s.repo.UpdateNames(ctx, who.UID, displayName, picName); err != nil {
		log.Error(ctx, "repository update names", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	profile, err := s.repo.ByUID(ctx, who.UID)
	if err != nil {
		log.Error(ctx, "repository profile by uid", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return profile, nil
}
