package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/skycircle/internal/domain"
	"github.com/bnema/skycircle/internal/ports"
)

// AuthService manages the persisted session.
type AuthService struct {
	creator  ports.SessionCreator
	sessions ports.SessionStore
}

func NewAuthService(creator ports.SessionCreator, sessions ports.SessionStore) *AuthService {
	return &AuthService{creator: creator, sessions: sessions}
}

func (s *AuthService) Login(ctx context.Context, cmd LoginCommand) (domain.Session, error) {
	identifier := strings.TrimPrefix(strings.TrimSpace(cmd.Identifier), "@")
	if identifier == "" {
		return domain.Session{}, errors.New("identifier is required")
	}
	if cmd.Password == "" {
		return domain.Session{}, errors.New("app password is required")
	}

	session, err := s.creator.CreateSession(ctx, identifier, cmd.Password)
	if err != nil {
		return domain.Session{}, fmt.Errorf("create session: %w", err)
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("save session: %w", err)
	}

	return session, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Current returns the stored session, or domain.ErrNotLoggedIn.
func (s *AuthService) Current(ctx context.Context) (domain.Session, error) {
	session, err := s.sessions.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return domain.Session{}, domain.ErrNotLoggedIn
		}
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}
	if !session.Valid() {
		return domain.Session{}, domain.ErrNotLoggedIn
	}
	return session, nil
}

// Remember persists a renewed session. It is the AuthenticatedClient's
// session-update callback.
func (s *AuthService) Remember(ctx context.Context, session domain.Session) error {
	if err := s.sessions.Save(ctx, session); err != nil {
		return fmt.Errorf("save renewed session: %w", err)
	}
	return nil
}
