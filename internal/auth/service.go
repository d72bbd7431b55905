package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/project_ingest/internal/domain"
	"github.com/robfig/cron/v3"
	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 8
	tokenPrefix       = "pa_"
)

type Service struct {
	log      *slog.Logger
	users    UserStore
	tokens   TokenStore
	tx       TxManager
	tokenTTL time.Duration
	hashCost int
	now      func() time.Time
}

type Option func(s *Service)

func WithHashCost(cost int) Option {
	return func(s *Service) {
		s.hashCost = cost
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(
	log *slog.Logger,
	users UserStore,
	tokens TokenStore,
	tx TxManager,
	tokenTTL time.Duration,
	opts ...Option,
) *Service {
	s := &Service{
		log:      log,
		users:    users,
		tokens:   tokens,
		tx:       tx,
		tokenTTL: tokenTTL,
		hashCost: bcrypt.DefaultCost,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Register creates a user with the default role and issues its first token.
// Both are written in one transaction.
func (s *Service) Register(ctx context.Context, email, password string) (*domain.User, *domain.Token, error) {
	email = normalizeEmail(email)

	if err := validateCredentials(email, password); err != nil {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, nil, &domain.ValidationError{Field: "password", Reason: "must be at most 72 bytes"}
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}

	var token *domain.Token
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.users.CreateUser(ctx, user); err != nil {
			return err
		}

		var issueErr error
		token, issueErr = s.issueToken(ctx, user.ID)
		return issueErr
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.Int64("user_id", user.ID))

	return user, token, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*domain.Token, error) {
	user, err := s.users.UserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "user logged in", slog.Int64("user_id", user.ID))

	return token, nil
}

// Authenticate returns the owner of an unexpired token.
func (s *Service) Authenticate(ctx context.Context, value string) (*domain.User, error) {
	if !strings.HasPrefix(value, tokenPrefix) {
		return nil, domain.ErrInvalidToken
	}

	token, err := s.tokens.Token(ctx, value)
	if err != nil {
		return nil, err
	}

	if token.Expired(s.now()) {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.users.UserByID(ctx, token.UserID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrInvalidToken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// RunTokenPurge deletes expired tokens on schedule until ctx is done.
func (s *Service) RunTokenPurge(ctx context.Context, schedule string) error {
	if schedule == "" {
		<-ctx.Done()
		return ctx.Err()
	}

	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		n, err := s.tokens.DeleteExpiredTokens(ctx, s.now())
		if err != nil {
			s.log.ErrorContext(ctx, "failed to purge expired tokens", slog.String("err", err.Error()))
			return
		}

		s.log.DebugContext(ctx, "expired tokens purged", slog.Int64("removed", n))
	})
	if err != nil {
		return fmt.Errorf("failed to schedule token purge %q: %w", schedule, err)
	}

	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()

	return ctx.Err()
}

func (s *Service) issueToken(ctx context.Context, userID int64) (*domain.Token, error) {
	now := s.now()

	token := &domain.Token{
		Value:     tokenPrefix + uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.tokenTTL),
	}

	if err := s.tokens.CreateToken(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateCredentials(email, password string) error {
	if email == "" {
		return &domain.ValidationError{Field: "email", Reason: "is required"}
	}

	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return &domain.ValidationError{Field: "email", Reason: "is not a valid address"}
	}

	if len(password) < MinPasswordLength {
		return &domain.ValidationError{Field: "password", Reason: fmt.Sprintf("must be at least %d characters", MinPasswordLength)}
	}

	return nil
}
