package domain

import (
	"fmt"
	"strings"
)

const atURIScheme = "at://"

// ATURI is a parsed record locator of the form at://authority/collection/rkey.
type ATURI struct {
	Authority  string
	Collection string
	RecordKey  string
}

func ParseATURI(raw string) (ATURI, error) {
	if !strings.HasPrefix(raw, atURIScheme) {
		return ATURI{}, fmt.Errorf("invalid at-uri %q: missing scheme", raw)
	}

	rest := strings.TrimPrefix(raw, atURIScheme)
	if idx := strings.IndexAny(rest, "?#"); idx >= 0 {
		rest = rest[:idx]
	}

	parts := strings.Split(rest, "/")
	if parts[0] == "" {
		return ATURI{}, fmt.Errorf("invalid at-uri %q: empty authority", raw)
	}

	uri := ATURI{Authority: parts[0]}
	if len(parts) > 1 {
		uri.Collection = parts[1]
	}
	if len(parts) > 2 {
		uri.RecordKey = parts[2]
	}
	if len(parts) > 3 {
		return ATURI{}, fmt.Errorf("invalid at-uri %q: too many path segments", raw)
	}

	return uri, nil
}

func (u ATURI) String() string {
	var b strings.Builder
	b.WriteString(atURIScheme)
	b.WriteString(u.Authority)
	if u.Collection != "" {
		b.WriteString("/" + u.Collection)
		if u.RecordKey != "" {
			b.WriteString("/" + u.RecordKey)
		}
	}
	return b.String()
}

// TargetDID extracts the account DID from an AT-URI. URIs whose authority is
// a handle rather than a DID report false.
func TargetDID(raw string) (string, bool) {
	uri, err := ParseATURI(raw)
	if err != nil {
		return "", false
	}
	if !IsDID(uri.Authority) {
		return "", false
	}
	return uri.Authority, true
}

// IsDID reports whether s has the did:method:identifier shape.
func IsDID(s string) bool {
	if !strings.HasPrefix(s, "did:") {
		return false
	}
	parts := strings.SplitN(s, ":", 3)
	return len(parts) == 3 && parts[1] != "" && parts[2] != ""
}

// NormalizeHandle trims whitespace, a leading @ and case-folds.
func NormalizeHandle(raw string) string {
	handle := strings.TrimSpace(raw)
	handle = strings.TrimPrefix(handle, "@")
	return strings.ToLower(handle)
}
