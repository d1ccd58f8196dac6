package xrpc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/skycircle/internal/domain"
	"github.com/bnema/skycircle/internal/ports"
)

const (
	nsidCreateSession  = "com.atproto.server.createSession"
	nsidRefreshSession = "com.atproto.server.refreshSession"
)

type sessionResponse struct {
	DID        string `json:"did"`
	Handle     string `json:"handle"`
	AccessJwt  string `json:"accessJwt"`
	RefreshJwt string `json:"refreshJwt"`
}

func (r sessionResponse) toSession() domain.Session {
	return domain.Session{
		DID:          r.DID,
		Handle:       r.Handle,
		AccessToken:  r.AccessJwt,
		RefreshToken: r.RefreshJwt,
	}
}

// SessionService logs in and renews sessions against the account's entryway.
type SessionService struct {
	Client Client
}

var _ ports.SessionCreator = SessionService{}

func (s SessionService) CreateSession(ctx context.Context, identifier, password string) (domain.Session, error) {
	if strings.TrimSpace(identifier) == "" {
		return domain.Session{}, errors.New("identifier is required")
	}
	if password == "" {
		return domain.Session{}, errors.New("password is required")
	}

	var resp sessionResponse
	body := map[string]string{"identifier": identifier, "password": password}
	if err := s.Client.Procedure(ctx, nsidCreateSession, body, "", &resp); err != nil {
		return domain.Session{}, fmt.Errorf("create session: %w", err)
	}

	session := resp.toSession()
	if !session.Valid() {
		return domain.Session{}, errors.New("create session: response missing credentials")
	}
	return session, nil
}

// RefreshSession exchanges a refresh token for a new session. The refresh
// token travels as the bearer credential.
func (s SessionService) RefreshSession(ctx context.Context, refreshToken string) (domain.Session, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return domain.Session{}, errors.New("refresh token is empty")
	}

	var resp sessionResponse
	if err := s.Client.Procedure(ctx, nsidRefreshSession, nil, refreshToken, &resp); err != nil {
		return domain.Session{}, fmt.Errorf("refresh session: %w", err)
	}

	session := resp.toSession()
	if !session.Valid() {
		return domain.Session{}, errors.New("refresh session: response missing credentials")
	}
	return session, nil
}
