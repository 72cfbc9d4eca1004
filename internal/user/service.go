package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"fitcircle/internal/apperror"
	"fitcircle/internal/auth"
	"fitcircle/internal/logger"
	"fitcircle/internal/metrics"
	"fitcircle/internal/notification"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrTooManyAttempts     = errors.New("too many login attempts, try again later")
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*Session, error)
	Login(ctx context.Context, req LoginRequest, clientIP string) (*Session, error)
	Refresh(ctx context.Context, refreshToken string) (*Session, error)
	Me(ctx context.Context, id uuid.UUID) (*User, error)
	Recipient(ctx context.Context, id uuid.UUID) (notification.Recipient, error)
}

// Limiter throttles login attempts per client and email.
type Limiter interface {
	Allow(ctx context.Context, ip, email string) (bool, int64, error)
	Reset(ctx context.Context, ip, email string) error
}

type Welcomer interface {
	Welcome(ctx context.Context, email, name string)
}

type service struct {
	repo      Repository
	limiter   Limiter
	welcomer  Welcomer
	jwtSecret string
}

// NewService builds the account service. limiter and welcomer may be nil.
func NewService(repo Repository, limiter Limiter, welcomer Welcomer, jwtSecret string) Service {
	return &service{
		repo:      repo,
		limiter:   limiter,
		welcomer:  welcomer,
		jwtSecret: jwtSecret,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	const op = "user.register"

	email := normalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.ValidationField(op, "name", "name is required")
	}

	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict(op, "email already registered")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	ts := time.Now().UTC()
	u := &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         auth.RoleMember,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	session, err := s.issue(u)
	if err != nil {
		return nil, err
	}

	if s.welcomer != nil {
		s.welcomer.Welcome(ctx, u.Email, u.Name)
	}
	logger.Info("user registered", "user_id", u.ID)
	return session, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest, clientIP string) (*Session, error) {
	email := normalizeEmail(req.Email)

	if s.limiter != nil {
		allowed, _, err := s.limiter.Allow(ctx, clientIP, email)
		switch {
		case err != nil:
			logger.Warn("login limiter unavailable", "ip", clientIP, "error", err)
		case !allowed:
			metrics.RecordLogin("rate_limited")
			logger.Warn("login rate limited", "ip", clientIP, "email", email)
			return nil, ErrTooManyAttempts
		}
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			metrics.RecordLogin("failure")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		metrics.RecordLogin("failure")
		return nil, ErrInvalidCredentials
	}

	session, err := s.issue(u)
	if err != nil {
		return nil, err
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, clientIP, email); err != nil {
			logger.Warn("failed to reset login attempts", "user_id", u.ID, "error", err)
		}
	}
	metrics.RecordLogin("success")
	return session, nil
}

// Refresh issues a new access token. The user is reloaded so a changed role
// takes effect without waiting for the refresh token to expire.
func (s *service) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	_, claims, err := auth.RefreshAccessToken(refreshToken, s.jwtSecret)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	u, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	access, err := auth.GenerateAccessToken(u.ID, u.Email, u.Role, s.jwtSecret)
	if err != nil {
		return nil, err
	}
	return &Session{AccessToken: access, User: u}, nil
}

func (s *service) Me(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Recipient(ctx context.Context, id uuid.UUID) (notification.Recipient, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return notification.Recipient{}, err
	}
	return notification.Recipient{Email: u.Email, Name: u.Name}, nil
}

func (s *service) issue(u *User) (*Session, error) {
	access, refresh, err := auth.GenerateTokens(u.ID, u.Email, u.Role, s.jwtSecret)
	if err != nil {
		return nil, err
	}
	return &Session{AccessToken: access, RefreshToken: refresh, User: u}, nil
}
