package appview

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/bnema/skycircle/internal/adapters/xrpc"
	"github.com/bnema/skycircle/internal/domain"
	"github.com/bnema/skycircle/internal/ports"
)

const (
	nsidGetProfiles = "app.bsky.actor.getProfiles"

	// MaxActorsPerCall is the AppView limit for one getProfiles request.
	MaxActorsPerCall = 25
)

// Client reads public profile data from an AppView. No credentials are sent.
type Client struct {
	XRPC xrpc.Client
}

var _ ports.ProfileSource = Client{}

type profileView struct {
	DID         string `json:"did"`
	Handle      string `json:"handle"`
	DisplayName string `json:"displayName"`
	Avatar      string `json:"avatar"`
	Description string `json:"description"`
}

func (c Client) GetProfiles(ctx context.Context, actors []string) ([]domain.Profile, error) {
	if len(actors) == 0 {
		return nil, nil
	}
	if len(actors) > MaxActorsPerCall {
		return nil, fmt.Errorf("get profiles: %d actors exceeds limit of %d", len(actors), MaxActorsPerCall)
	}

	params := url.Values{}
	for _, actor := range actors {
		if actor == "" {
			return nil, errors.New("get profiles: actor must not be empty")
		}
		params.Add("actors", actor)
	}

	var resp struct {
		Profiles []profileView `json:"profiles"`
	}
	if err := c.XRPC.Query(ctx, nsidGetProfiles, params, "", &resp); err != nil {
		return nil, fmt.Errorf("get profiles: %w", err)
	}

	profiles := make([]domain.Profile, 0, len(resp.Profiles))
	for _, view := range resp.Profiles {
		if view.DID == "" {
			continue
		}
		profiles = append(profiles, domain.Profile{
			DID:         view.DID,
			Handle:      view.Handle,
			DisplayName: view.DisplayName,
			Avatar:      view.Avatar,
			Description: view.Description,
		})
	}

	return profiles, nil
}
