package xrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bnema/skycircle/internal/domain"
)

const (
	maxResponseBytes = 16 << 20
	maxErrorBytes    = 1 << 20
	userAgent        = "skycircle/xrpc"
)

// Client issues XRPC calls against one host. A zero HTTPClient uses
// http.DefaultClient.
type Client struct {
	Host       string
	HTTPClient *http.Client
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Query performs a GET on /xrpc/{nsid}. An empty bearer sends no
// Authorization header.
func (c Client) Query(ctx context.Context, nsid string, params url.Values, bearer string, out any) error {
	endpoint, err := c.endpoint(nsid)
	if err != nil {
		return err
	}
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create %s request: %w", nsid, err)
	}

	return c.do(req, nsid, bearer, out)
}

// Procedure performs a POST on /xrpc/{nsid} with a JSON body. A nil body
// sends no payload.
func (c Client) Procedure(ctx context.Context, nsid string, body any, bearer string, out any) error {
	endpoint, err := c.endpoint(nsid)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", nsid, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create %s request: %w", nsid, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, nsid, bearer, out)
}

func (c Client) do(req *http.Request, nsid string, bearer string, out any) error {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("perform %s: %w", nsid, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return DecodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", nsid, err)
	}

	return nil
}

// DecodeError turns a non-2xx response into *domain.AuthError for expired or
// invalid credentials and *domain.APIError otherwise.
func DecodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBytes))

	var body errorBody
	_ = json.Unmarshal(raw, &body)

	apiErr := domain.APIError{
		Status:  resp.StatusCode,
		Code:    body.Error,
		Message: body.Message,
	}
	if apiErr.Code == "" {
		apiErr.Code = "Unknown"
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(http.StatusText(resp.StatusCode))
	}

	if isAuthFailure(apiErr) {
		return &domain.AuthError{APIError: apiErr}
	}
	return &apiErr
}

func isAuthFailure(apiErr domain.APIError) bool {
	if apiErr.Status == http.StatusUnauthorized {
		return true
	}
	switch apiErr.Code {
	case "ExpiredToken", "InvalidToken":
		return true
	default:
		return false
	}
}

// IsAuthFailure reports whether err carries an expired or invalid credential.
func IsAuthFailure(err error) bool {
	var authErr *domain.AuthError
	return errors.As(err, &authErr)
}

func (c Client) endpoint(nsid string) (string, error) {
	host := strings.TrimRight(strings.TrimSpace(c.Host), "/")
	if host == "" {
		return "", errors.New("xrpc host is required")
	}
	if strings.TrimSpace(nsid) == "" {
		return "", errors.New("xrpc method is required")
	}
	return host + "/xrpc/" + nsid, nil
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
