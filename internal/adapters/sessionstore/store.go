package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bnema/skycircle/internal/domain"
	"github.com/bnema/skycircle/internal/logging"
	"github.com/bnema/skycircle/internal/ports"
)

// SessionKey is the secret-store key holding the serialized session.
const SessionKey = "skycircle/session"

// SecretStore persists the session as JSON in a ports.SecretStore.
type SecretStore struct {
	secrets ports.SecretStore
	key     string
}

var _ ports.SessionStore = (*SecretStore)(nil)

func NewSecretStore(secrets ports.SecretStore) *SecretStore {
	return &SecretStore{secrets: secrets, key: SessionKey}
}

func (s *SecretStore) Save(ctx context.Context, session domain.Session) error {
	if !session.Valid() {
		return errors.New("refusing to store incomplete session")
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.secrets.Put(ctx, s.key, string(payload)); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (s *SecretStore) Load(ctx context.Context) (domain.Session, error) {
	raw, err := s.secrets.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return domain.Session{}, domain.ErrSessionNotFound
		}
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return domain.Session{}, fmt.Errorf("decode session: %w", err)
	}
	if !session.Valid() {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	return session, nil
}

func (s *SecretStore) Clear(ctx context.Context) error {
	if err := s.secrets.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Fallback wraps a persistent store with an in-memory copy. Primary failures
// are logged and the in-memory copy keeps the process working.
type Fallback struct {
	primary ports.SessionStore
	logger  *slog.Logger

	mu     sync.Mutex
	memory *domain.Session
}

var _ ports.SessionStore = (*Fallback)(nil)

func NewFallback(primary ports.SessionStore, logger *slog.Logger) *Fallback {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Fallback{primary: primary, logger: logger}
}

func (f *Fallback) Save(ctx context.Context, session domain.Session) error {
	if !session.Valid() {
		return errors.New("refusing to store incomplete session")
	}

	f.mu.Lock()
	copied := session
	f.memory = &copied
	f.mu.Unlock()

	if err := f.primary.Save(ctx, session); err != nil {
		if ctx.Err() != nil {
			return err
		}
		f.logger.Warn("session storage unavailable, keeping session in memory", "err", err)
	}
	return nil
}

func (f *Fallback) Load(ctx context.Context) (domain.Session, error) {
	session, err := f.primary.Load(ctx)
	if err == nil {
		return session, nil
	}
	if ctx.Err() != nil {
		return domain.Session{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.memory != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			f.logger.Warn("session storage unavailable, using in-memory session", "err", err)
		}
		return *f.memory, nil
	}
	return domain.Session{}, err
}

func (f *Fallback) Clear(ctx context.Context) error {
	f.mu.Lock()
	f.memory = nil
	f.mu.Unlock()

	if err := f.primary.Clear(ctx); err != nil {
		if ctx.Err() != nil {
			return err
		}
		f.logger.Warn("failed to clear stored session", "err", err)
	}
	return nil
}
