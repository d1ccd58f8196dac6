package ports

import (
	"context"

	"github.com/bnema/skycircle/internal/domain"
)

// SessionStore persists the logged-in session. Load returns
// domain.ErrSessionNotFound when nothing is stored.
type SessionStore interface {
	Save(ctx context.Context, session domain.Session) error
	Load(ctx context.Context) (domain.Session, error)
	Clear(ctx context.Context) error
}
