package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bnema/skycircle/internal/adapters/xrpc"
	"github.com/bnema/skycircle/internal/domain"
	"github.com/bnema/skycircle/internal/ports"
)

const (
	nsidResolveHandle = "com.atproto.identity.resolveHandle"
	pdsServiceType    = "AtprotoPersonalDataServer"
	pdsServiceID      = "#atproto_pds"
	maxDocumentBytes  = 1 << 20
)

// Resolver maps handles to DIDs through an AppView and DIDs to their hosting
// server through the PLC directory or did:web documents.
type Resolver struct {
	AppView    xrpc.Client
	PLCURL     string
	HTTPClient *http.Client

	// webDocumentURL builds the did:web document location for a host. Tests
	// point it at an httptest server.
	webDocumentURL func(host string) string
}

var _ ports.IdentityResolver = (*Resolver)(nil)

func NewResolver(appView xrpc.Client, plcURL string, httpClient *http.Client) *Resolver {
	return &Resolver{
		AppView:    appView,
		PLCURL:     strings.TrimRight(plcURL, "/"),
		HTTPClient: httpClient,
	}
}

type didDocument struct {
	ID      string       `json:"id"`
	Service []didService `json:"service"`
}

type didService struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	ServiceEndpoint any    `json:"serviceEndpoint"`
}

func (r *Resolver) ResolveHandle(ctx context.Context, handle string) (string, error) {
	handle = domain.NormalizeHandle(handle)
	if handle == "" {
		return "", &domain.ResolutionError{Subject: "handle", Err: errors.New("handle is empty")}
	}
	if domain.IsDID(handle) {
		return handle, nil
	}

	var resp struct {
		DID string `json:"did"`
	}
	if err := r.AppView.Query(ctx, nsidResolveHandle, url.Values{"handle": {handle}}, "", &resp); err != nil {
		return "", &domain.ResolutionError{Subject: handle, Err: err}
	}
	if !domain.IsDID(resp.DID) {
		return "", &domain.ResolutionError{Subject: handle, Err: errors.New("response did not contain a DID")}
	}

	return resp.DID, nil
}

func (r *Resolver) ResolveHost(ctx context.Context, did string) (string, error) {
	documentURL, err := r.documentURL(did)
	if err != nil {
		return "", &domain.ResolutionError{Subject: did, Err: err}
	}

	doc, err := r.fetchDocument(ctx, documentURL)
	if err != nil {
		return "", &domain.ResolutionError{Subject: did, Err: err}
	}

	endpoint, ok := doc.pdsEndpoint()
	if !ok {
		return "", &domain.ResolutionError{Subject: did, Err: errors.New("no personal data server in DID document")}
	}

	return strings.TrimRight(endpoint, "/"), nil
}

func (r *Resolver) documentURL(did string) (string, error) {
	switch {
	case strings.HasPrefix(did, "did:plc:"):
		if r.PLCURL == "" {
			return "", errors.New("plc directory url is not configured")
		}
		return r.PLCURL + "/" + did, nil
	case strings.HasPrefix(did, "did:web:"):
		// Path-based did:web identifiers are not valid account identifiers.
		raw := strings.TrimPrefix(did, "did:web:")
		host, err := url.PathUnescape(raw)
		if err != nil || host == "" || strings.Contains(raw, ":") {
			return "", fmt.Errorf("unsupported did:web identifier %q", did)
		}
		if r.webDocumentURL != nil {
			return r.webDocumentURL(host), nil
		}
		return "https://" + host + "/.well-known/did.json", nil
	default:
		return "", fmt.Errorf("unsupported DID method in %q", did)
	}
}

func (r *Resolver) fetchDocument(ctx context.Context, documentURL string) (didDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, documentURL, nil)
	if err != nil {
		return didDocument{}, fmt.Errorf("create DID document request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient().Do(req)
	if err != nil {
		return didDocument{}, fmt.Errorf("fetch DID document: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return didDocument{}, fmt.Errorf("fetch DID document: status %d", resp.StatusCode)
	}

	var doc didDocument
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxDocumentBytes)).Decode(&doc); err != nil {
		return didDocument{}, fmt.Errorf("decode DID document: %w", err)
	}

	return doc, nil
}

func (d didDocument) pdsEndpoint() (string, bool) {
	for _, svc := range d.Service {
		if svc.Type != pdsServiceType && !strings.HasSuffix(svc.ID, pdsServiceID) {
			continue
		}
		endpoint, ok := svc.ServiceEndpoint.(string)
		if ok && strings.TrimSpace(endpoint) != "" {
			return endpoint, true
		}
	}
	return "", false
}

func (r *Resolver) httpClient() *http.Client {
	if r.HTTPClient != nil {
		return r.HTTPClient
	}
	return http.DefaultClient
}
