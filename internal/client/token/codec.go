// Package token issues and inspects the client's mock session tokens.
//
// A token looks like a JWT: three dot-separated segments holding the
// base64-encoded header JSON, payload JSON and a placeholder signature.
// The signature is never verified; only presence and expiry matter.
package token

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/postview/internal/client/models"
)

// Lifetime is how long an issued token stays valid.
const Lifetime = 24 * time.Hour

const signaturePrefix = "mock-signature-"

type header struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

var defaultHeader = header{Alg: "HS256", Typ: "JWT"}

// Codec issues tokens and checks their expiry against its clock.
type Codec struct {
	now       func() time.Time
	validator *jwt.Validator
}

// NewCodec returns a Codec reading time from now; nil means time.Now.
func NewCodec(now func() time.Time) *Codec {
	if now == nil {
		now = time.Now
	}
	return &Codec{
		now:       now,
		validator: jwt.NewValidator(jwt.WithTimeFunc(now), jwt.WithExpirationRequired()),
	}
}

// Issue builds a token for u with iat=now and exp=now+Lifetime.
func (c *Codec) Issue(u models.User) string {
	iat := c.now().Truncate(time.Second)

	claims := Claims{
		UserID:    u.ID,
		Email:     u.Email,
		IssuedAt:  jwt.NewNumericDate(iat),
		ExpiresAt: jwt.NewNumericDate(iat.Add(Lifetime)),
	}

	// Marshalling these fixed shapes cannot fail.
	h, _ := json.Marshal(defaultHeader)
	p, _ := json.Marshal(claims)
	sig := signaturePrefix + u.ID + "-" + strconv.FormatInt(iat.Unix(), 10)

	return strings.Join([]string{encode(h), encode(p), encode([]byte(sig))}, ".")
}

// Decode returns the payload of token. ok is false for any malformed input.
func (c *Codec) Decode(token string) (claims Claims, ok bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return Claims{}, false
	}

	raw, err := decode(parts[1])
	if err != nil {
		return Claims{}, false
	}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || trimmed[0] != '{' {
		return Claims{}, false
	}
	if err := json.Unmarshal(raw, &claims); err != nil {
		return Claims{}, false
	}
	return claims, true
}

// IsValid reports whether token decodes and now is strictly before exp.
// The signature and iat are not checked.
func (c *Codec) IsValid(token string) bool {
	claims, ok := c.Decode(token)
	if !ok {
		return false
	}
	return c.validator.Validate(claims) == nil
}

func encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// decode accepts standard base64 with or without padding.
func decode(s string) ([]byte, error) {
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
}
