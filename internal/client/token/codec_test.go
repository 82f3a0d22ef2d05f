package token

import (
	"encoding/base64"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/postview/internal/client/models"
)

var demoUser = models.User{ID: "user-001", Email: "user@example.com", Name: "Demo User"}

// fixedClock returns a clock that can be moved by tests.
func fixedClock(t0 time.Time) (func() time.Time, func(time.Duration)) {
	now := t0
	return func() time.Time { return now }, func(d time.Duration) { now = now.Add(d) }
}

func b64(s string) string { return base64.StdEncoding.EncodeToString([]byte(s)) }

func TestIssue_MatchesWireFormat(t *testing.T) {
	clock, _ := fixedClock(time.Unix(1700000000, 0))
	c := NewCodec(clock)

	got := c.Issue(demoUser)

	want := b64(`{"alg":"HS256","typ":"JWT"}`) + "." +
		b64(`{"userId":"user-001","email":"user@example.com","iat":1700000000,"exp":1700086400}`) + "." +
		b64("mock-signature-user-001-1700000000")
	assert.Equal(t, want, got)
}

func TestIssueDecode_Roundtrip(t *testing.T) {
	t0 := time.Unix(1700000000, 750_000_000)
	clock, _ := fixedClock(t0)
	c := NewCodec(clock)

	claims, ok := c.Decode(c.Issue(demoUser))
	require.True(t, ok)

	assert.Equal(t, "user-001", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, int64(1700000000), claims.IssuedAt.Unix())
	assert.Equal(t, int64(1700000000+86400), claims.ExpiresAt.Unix())
}

func TestIsValid_ExpiryBoundary(t *testing.T) {
	t0 := time.Unix(1700000000, 0)
	clock, advance := fixedClock(t0)
	c := NewCodec(clock)

	tok := c.Issue(demoUser)
	assert.True(t, c.IsValid(tok), "fresh token")

	advance(Lifetime - time.Second)
	assert.True(t, c.IsValid(tok), "one second before exp")

	advance(time.Second)
	assert.False(t, c.IsValid(tok), "at exp")

	advance(time.Hour)
	assert.False(t, c.IsValid(tok), "after exp")
}

func TestIsValid_IgnoresFutureIssuedAt(t *testing.T) {
	clock, advance := fixedClock(time.Unix(1700000000, 0))
	c := NewCodec(clock)

	advance(time.Hour)
	tok := c.Issue(demoUser)
	advance(-2 * time.Hour)

	assert.True(t, c.IsValid(tok), "iat in the future is not checked")
}

func TestDecode_Malformed(t *testing.T) {
	c := NewCodec(nil)
	header := b64(`{"alg":"HS256","typ":"JWT"}`)
	sig := b64("sig")

	tests := map[string]string{
		"empty":          "",
		"one segment":    "abc",
		"two segments":   header + "." + b64(`{}`),
		"four segments":  header + "." + b64(`{}`) + "." + sig + ".x",
		"not base64":     header + ".!!!." + sig,
		"not json":       header + "." + b64("hello") + "." + sig,
		"json null":      header + "." + b64("null") + "." + sig,
		"json array":     header + "." + b64("[1,2]") + "." + sig,
		"wrong exp type": header + "." + b64(`{"exp":"tomorrow"}`) + "." + sig,
		"truncated json": header + "." + b64(`{"userId":`) + "." + sig,
		"not a token":    "not.a.jwt",
	}

	for name, tok := range tests {
		t.Run(name, func(t *testing.T) {
			_, ok := c.Decode(tok)
			assert.False(t, ok)
			assert.False(t, c.IsValid(tok))
		})
	}
}

func TestDecode_AcceptsUnpaddedSegments(t *testing.T) {
	clock, _ := fixedClock(time.Unix(1700000000, 0))
	c := NewCodec(clock)

	parts := strings.Split(c.Issue(demoUser), ".")
	for i := range parts {
		parts[i] = strings.TrimRight(parts[i], "=")
	}

	claims, ok := c.Decode(strings.Join(parts, "."))
	require.True(t, ok)
	assert.Equal(t, "user-001", claims.UserID)
}

func TestIsValid_MissingExp(t *testing.T) {
	c := NewCodec(nil)
	tok := fmt.Sprintf("%s.%s.%s", b64(`{}`), b64(`{"userId":"u","email":"e"}`), b64("s"))

	_, ok := c.Decode(tok)
	assert.True(t, ok, "structurally fine")
	assert.False(t, c.IsValid(tok), "no exp means not valid")
}

func TestIsValid_HandcraftedFixture(t *testing.T) {
	clock, _ := fixedClock(time.Unix(1000, 0))
	c := NewCodec(clock)

	live := b64(`{"alg":"HS256","typ":"JWT"}`) + "." + b64(`{"userId":"user-001","email":"user@example.com","iat":900,"exp":1001}`) + "." + b64("mock-signature-user-001-900")
	dead := b64(`{"alg":"HS256","typ":"JWT"}`) + "." + b64(`{"userId":"user-001","email":"user@example.com","iat":900,"exp":1000}`) + "." + b64("mock-signature-user-001-900")

	assert.True(t, c.IsValid(live))
	assert.False(t, c.IsValid(dead))
}
