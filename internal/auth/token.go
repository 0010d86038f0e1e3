package auth

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"shopfront/internal/domain"
)

// DefaultSecret signs tokens of the demo backend
const DefaultSecret = "do-not-tell-anyone"

type tokenHeader struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

type tokenPayload struct {
	Username string `json:"username"`
}

// Signer issues and checks the JWT-shaped session tokens
// header.payload.signature, where signature is base64(header.payload+secret).
type Signer struct {
	secret string
}

// NewSigner creates a signer; an empty secret selects DefaultSecret
func NewSigner(secret string) Signer {
	if secret == "" {
		secret = DefaultSecret
	}
	return Signer{secret: secret}
}

// Sign returns a token for username
func (s Signer) Sign(username string) (string, error) {
	header, err := encodeSegment(tokenHeader{Alg: "HS256", Typ: "JWT"})
	if err != nil {
		return "", err
	}
	payload, err := encodeSegment(tokenPayload{Username: username})
	if err != nil {
		return "", err
	}
	return header + "." + payload + "." + s.signature(header+"."+payload), nil
}

// Validate checks the signature and returns the user the token was issued to
func (s Signer) Validate(token string) (domain.User, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return domain.User{}, fmt.Errorf("%w: malformed token", ErrUnauthorized)
	}
	if parts[2] != s.signature(parts[0]+"."+parts[1]) {
		return domain.User{}, fmt.Errorf("%w: token signature is invalid", ErrUnauthorized)
	}

	raw, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: undecodable payload", ErrUnauthorized)
	}
	var p tokenPayload
	if err := json.Unmarshal(raw, &p); err != nil || p.Username == "" {
		return domain.User{}, fmt.Errorf("%w: invalid payload", ErrUnauthorized)
	}
	return domain.User{ID: p.Username, Username: p.Username}, nil
}

func (s Signer) signature(data string) string {
	return base64.StdEncoding.EncodeToString([]byte(data + s.secret))
}

func encodeSegment(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode token: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
