package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"bizportal/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrSessionNotFound    = errors.New("no active session")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

const (
	demoUserName       = "Admin User"
	demoUserEmail      = "admin@company.com"
	demoCompanyName    = "Phoenix Enterprises"
	newBusinessCompany = "New Business User"
)

type LoginCommand struct {
	Email    string
	Password string
}

type RegisterCommand struct {
	Email           string
	Password        string
	ConfirmPassword string
	CompanyName     string
	Phone           string
}

type ISessionUseCase interface {
	Login(ctx context.Context, cmd LoginCommand) (entities.Session, error)
	Register(ctx context.Context, cmd RegisterCommand) (entities.Session, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (entities.Session, error)
}

// SessionUseCase is the mock single-user sign in. Opening a session starts
// the lifecycle tick and closing it stops the tick together with any pending
// admin responses. Collections survive across sessions.
type SessionUseCase struct {
	mu      sync.Mutex
	runner  ILifecycleRunner
	now     func() time.Time
	current *entities.Session
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(runner ILifecycleRunner, now func() time.Time) *SessionUseCase {
	if now == nil {
		now = time.Now
	}
	return &SessionUseCase{runner: runner, now: now}
}

func (u *SessionUseCase) Login(ctx context.Context, cmd LoginCommand) (entities.Session, error) {
	if strings.TrimSpace(cmd.Email) == "" || cmd.Password == "" {
		return entities.Session{}, ErrMissingCredentials
	}
	return u.open(ctx, demoCompanyName)
}

func (u *SessionUseCase) Register(ctx context.Context, cmd RegisterCommand) (entities.Session, error) {
	if strings.TrimSpace(cmd.Email) == "" || cmd.Password == "" {
		return entities.Session{}, ErrMissingCredentials
	}
	if cmd.Password != cmd.ConfirmPassword {
		return entities.Session{}, ErrPasswordMismatch
	}
	company := strings.TrimSpace(cmd.CompanyName)
	if company == "" {
		company = newBusinessCompany
	}
	return u.open(ctx, company)
}

func (u *SessionUseCase) open(ctx context.Context, company string) (entities.Session, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.runner.Start(ctx); err != nil {
		return entities.Session{}, err
	}

	s := entities.Session{
		ID:          uuid.NewString(),
		UserName:    demoUserName,
		CompanyName: company,
		Email:       demoUserEmail,
		StartedAt:   u.now().UTC(),
	}
	if u.current != nil {
		log.Info().Str("session_id", u.current.ID).Msg("session: replaced by new sign in")
	}
	u.current = &s
	log.Info().Str("session_id", s.ID).Str("company", s.CompanyName).Msg("session: opened")
	return s, nil
}

func (u *SessionUseCase) Logout(_ context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.current == nil {
		return ErrSessionNotFound
	}
	u.runner.Stop()
	log.Info().Str("session_id", u.current.ID).Msg("session: closed")
	u.current = nil
	return nil
}

func (u *SessionUseCase) Current(_ context.Context) (entities.Session, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.current == nil {
		return entities.Session{}, ErrSessionNotFound
	}
	return *u.current, nil
}
