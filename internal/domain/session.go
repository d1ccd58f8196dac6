package domain

import "strings"

type Session struct {
	DID          string `json:"did"`
	Handle       string `json:"handle"`
	AccessToken  string `json:"accessJwt"`
	RefreshToken string `json:"refreshJwt"`
}

// Valid reports whether every credential field is present.
func (s Session) Valid() bool {
	return strings.TrimSpace(s.DID) != "" &&
		strings.TrimSpace(s.Handle) != "" &&
		strings.TrimSpace(s.AccessToken) != "" &&
		strings.TrimSpace(s.RefreshToken) != ""
}
