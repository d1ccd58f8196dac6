package xrpc

import (
	"context"
	"errors"
	"net/url"
	"sync"

	"github.com/bnema/skycircle/internal/domain"
	"github.com/bnema/skycircle/internal/ports"
)

// State is the authorization state of an AuthenticatedClient.
type State int

const (
	StateAuthorized State = iota
	StateRetrying
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateAuthorized:
		return "authorized"
	case StateRetrying:
		return "retrying"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Refresher renews a session from its refresh token.
type Refresher interface {
	RefreshSession(ctx context.Context, refreshToken string) (domain.Session, error)
}

// AuthenticatedClient calls the account's PDS with the held access token. A
// call rejected for an expired or invalid credential triggers exactly one
// session renewal followed by exactly one retry.
type AuthenticatedClient struct {
	client    Client
	refresher Refresher

	// OnSessionUpdate is called after a successful renewal so the caller can
	// persist the new credentials.
	OnSessionUpdate func(domain.Session)

	mu      sync.Mutex
	session domain.Session
	state   State
}

var _ ports.XRPCCaller = (*AuthenticatedClient)(nil)

// NewAuthenticatedClient binds session to the PDS reached through client.
// A nil refresher renews through the same host.
func NewAuthenticatedClient(client Client, session domain.Session, refresher Refresher) *AuthenticatedClient {
	if refresher == nil {
		refresher = SessionService{Client: client}
	}
	return &AuthenticatedClient{
		client:    client,
		refresher: refresher,
		session:   session,
		state:     StateAuthorized,
	}
}

func (c *AuthenticatedClient) Session() domain.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

func (c *AuthenticatedClient) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *AuthenticatedClient) Query(ctx context.Context, nsid string, params url.Values, out any) error {
	return c.call(ctx, func(token string) error {
		return c.client.Query(ctx, nsid, params, token, out)
	})
}

func (c *AuthenticatedClient) Procedure(ctx context.Context, nsid string, body any, out any) error {
	return c.call(ctx, func(token string) error {
		return c.client.Procedure(ctx, nsid, body, token, out)
	})
}

func (c *AuthenticatedClient) call(ctx context.Context, attempt func(token string) error) error {
	c.mu.Lock()
	if c.state == StateFailed {
		c.mu.Unlock()
		return &domain.SessionExpiredError{}
	}
	token := c.session.AccessToken
	c.mu.Unlock()

	err := attempt(token)
	if err == nil || !IsAuthFailure(err) {
		return err
	}

	renewed, err := c.renew(ctx)
	if err != nil {
		return err
	}

	return attempt(renewed.AccessToken)
}

func (c *AuthenticatedClient) renew(ctx context.Context) (domain.Session, error) {
	c.mu.Lock()
	c.state = StateRetrying
	refreshToken := c.session.RefreshToken
	c.mu.Unlock()

	renewed, err := c.refresher.RefreshSession(ctx, refreshToken)
	if err != nil {
		canceled := errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		c.mu.Lock()
		if canceled {
			c.state = StateAuthorized
		} else {
			c.state = StateFailed
		}
		c.mu.Unlock()
		if canceled {
			return domain.Session{}, err
		}
		return domain.Session{}, &domain.SessionExpiredError{Err: err}
	}

	c.mu.Lock()
	c.session = renewed
	c.state = StateAuthorized
	c.mu.Unlock()

	if c.OnSessionUpdate != nil {
		c.OnSessionUpdate(renewed)
	}

	return renewed, nil
}
