package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nested", "credentials.json"))

	creds := Credentials{Email: "ana@example.com", Password: "secret", Token: "tok"}
	require.NoError(t, store.Save(creds))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, creds, got)
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "credentials.json"))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, Credentials{}, got)
}

func TestFileStoreClear(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "credentials.json"))
	require.NoError(t, store.Save(Credentials{Token: "tok"}))
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear(), "clearing twice is fine")

	got, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, got.Token)
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": 1,
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestTokenValid(t *testing.T) {
	assert.True(t, TokenValid(signedToken(t, time.Now().Add(time.Hour)), time.Minute))
	assert.False(t, TokenValid(signedToken(t, time.Now().Add(-time.Hour)), time.Minute))
	assert.False(t, TokenValid(signedToken(t, time.Now().Add(30*time.Second)), time.Minute),
		"tokens inside the grace period count as expired")
	assert.False(t, TokenValid("", time.Minute))
	assert.False(t, TokenValid("not-a-jwt", time.Minute))
}
