// Package service establishes sessions: Google sign-in, email registration
// and login, and session token parsing.
package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/crypto/bcrypt"

	"github.com/candrasdkd/easywork/internal/model"
	"github.com/candrasdkd/easywork/internal/platform/logger"
)

const minPasswordLen = 8

type UserRepository interface {
	ByUID(ctx context.Context, uid string) (*model.UserProfile, error)
	ByEmail(ctx context.Context, email string) (*model.UserProfile, string, error)
	Upsert(ctx context.Context, profile model.UserProfile) error
	CreateEmailAccount(ctx context.Context, profile model.UserProfile, passwordHash string) error
}

type GoogleTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*model.GoogleIdentity, error)
}

// Session is an established session: the signed token and the profile it
// belongs to.
type Session struct {
	Token   string
	Profile model.UserProfile
}

type service struct {
	users    UserRepository
	verifier GoogleTokenVerifier

	jwtSecret   []byte
	jwtTTL      time.Duration
	adminEmails []string

	writeDBTimeout time.Duration
}

func NewAuthService(
	users UserRepository,
	verifier GoogleTokenVerifier,
	jwtSecret []byte,
	jwtTTL time.Duration,
	adminEmails []string,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		users:          users,
		verifier:       verifier,
		jwtSecret:      jwtSecret,
		jwtTTL:         jwtTTL,
		adminEmails:    normalizeEmails(adminEmails),
		writeDBTimeout: writeDBTimeout,
	}
}

// GoogleSignIn verifies the ID token, merges the Google profile into the
// users collection and issues a session token.
func (s *service) GoogleSignIn(ctx context.Context, idToken string) (*Session, error) {
	const op = "auth.service.GoogleSignIn"

	ident, err := s.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		logger.Error(ctx, "google id token rejected", logger.ErrorF(err))
		return nil, errors.Join(model.ErrUnauthorized, err)
	}

	profile := model.UserProfile{
		UID:           ident.Sub,
		Email:         strings.ToLower(ident.Email),
		DisplayName:   ident.Name,
		PhotoURL:      ident.Picture,
		EmailVerified: ident.EmailVerified,
	}

	wctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if err := s.users.Upsert(wctx, profile); err != nil {
		logger.Error(ctx, "upsert profile", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stored, err := s.users.ByUID(wctx, profile.UID)
	if err != nil {
		logger.Error(ctx, "load profile", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.establish(*stored)
}

// Register creates an email/password account and signs the user in.
func (s *service) Register(ctx context.Context, email, password, displayName string) (*Session, error) {
	const op = "auth.service.Register"

	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("invalid email address"))
	}
	if len(password) < minPasswordLen {
		return nil, errors.Join(model.ErrInvalidArgument,
			fmt.Errorf("password must be at least %d characters", minPasswordLen))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	profile := model.UserProfile{
		UID:         uuid.NewString(),
		Email:       email,
		DisplayName: strings.TrimSpace(displayName),
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if err := s.users.CreateEmailAccount(ctx, profile, string(hash)); err != nil {
		if !errors.Is(err, model.ErrEmailTaken) {
			logger.Error(ctx, "create email account", logger.ErrorF(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.establish(profile)
}

// Login checks the password against the stored hash and issues a session
// token. Lookup and comparison failures are indistinguishable to the caller.
func (s *service) Login(ctx context.Context, email, password string) (*Session, error) {
	const op = "auth.service.Login"

	email = strings.ToLower(strings.TrimSpace(email))

	profile, hash, err := s.users.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			return nil, model.ErrUnauthorized
		}
		logger.Error(ctx, "load profile by email", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if hash == "" {
		// Google-only account; there is no password to check.
		return nil, model.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, model.ErrUnauthorized
	}

	wctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if err := s.users.Upsert(wctx, *profile); err != nil {
		logger.Warn(ctx, "refresh last login", logger.ErrorF(err))
	}

	return s.establish(*profile)
}

// ParseToken resolves the acting identity from a session token.
func (s *service) ParseToken(tokenString string) (model.Identity, error) {
	return parseSessionToken(s.jwtSecret, tokenString)
}

func (s *service) establish(profile model.UserProfile) (*Session, error) {
	who := model.Identity{
		UID:         profile.UID,
		Email:       profile.Email,
		DisplayName: profile.DisplayName,
		Admin:       s.isAdmin(profile.Email),
	}

	token, err := issueSessionToken(s.jwtSecret, s.jwtTTL, who)
	if err != nil {
		return nil, err
	}

	return &Session{Token: token, Profile: profile}, nil
}

func (s *service) isAdmin(email string) bool {
	return lo.Contains(s.adminEmails, strings.ToLower(email))
}

func normalizeEmails(emails []string) []string {
	return lo.FilterMap(emails, func(e string, _ int) (string, bool) {
		e = strings.ToLower(strings.TrimSpace(e))
		return e, e != ""
	})
}
