package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/dto/responses"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/exceptions"
	"go.uber.org/zap"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func assertSessionKind(t *testing.T, err error, kind exceptions.Kind) {
	t.Helper()
	var custom *exceptions.CustomError
	require.ErrorAs(t, err, &custom)
	assert.Equal(t, kind, custom.Kind)
}

func TestSessionFileRepository(t *testing.T) {
	ctx := context.Background()
	user := &responses.User{ID: "u1", Name: "John Doe", Email: "john@example.com"}

	t.Run("Store Then Read Back", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		repository := NewSessionFileRepository(path, zap.NewNop())
		token := signedToken(t, time.Now().Add(time.Hour))

		require.NoError(t, repository.Store(ctx, token, user))

		current, err := repository.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, user, current)

		stored, err := repository.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, token, stored)
	})

	t.Run("Missing File Means Not Logged In", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		repository := NewSessionFileRepository(path, zap.NewNop())

		_, err := repository.Current(ctx)
		assertSessionKind(t, err, exceptions.KindNotLoggedIn)

		_, err = repository.Token(ctx)
		assertSessionKind(t, err, exceptions.KindNotLoggedIn)
	})

	t.Run("Expired Token Rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		repository := NewSessionFileRepository(path, zap.NewNop())

		require.NoError(t, repository.Store(ctx, signedToken(t, time.Now().Add(-time.Hour)), user))

		_, err := repository.Token(ctx)
		assertSessionKind(t, err, exceptions.KindNotLoggedIn)

		// the user data itself is still readable
		current, err := repository.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, user, current)
	})

	t.Run("Garbage Token Rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		repository := NewSessionFileRepository(path, zap.NewNop())

		require.NoError(t, repository.Store(ctx, "not-a-jwt", user))

		_, err := repository.Token(ctx)
		assertSessionKind(t, err, exceptions.KindNotLoggedIn)
	})

	t.Run("Replace Swaps Only The User", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		repository := NewSessionFileRepository(path, zap.NewNop())
		token := signedToken(t, time.Now().Add(time.Hour))

		require.NoError(t, repository.Store(ctx, token, user))

		updated := &responses.User{ID: "u1", Name: "John Updated", Email: "john@example.com", AvatarURL: "http://cdn/u1.jpg"}
		require.NoError(t, repository.Replace(ctx, updated))

		current, err := repository.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, updated, current)

		stored, err := repository.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, token, stored, "Replace must not touch the token")
	})

	t.Run("Replace Without A Session", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		repository := NewSessionFileRepository(path, zap.NewNop())

		err := repository.Replace(ctx, user)
		assertSessionKind(t, err, exceptions.KindNotLoggedIn)
	})

	t.Run("Corrupted File Surfaces A Read Error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
		repository := NewSessionFileRepository(path, zap.NewNop())

		_, err := repository.Current(ctx)
		assertSessionKind(t, err, exceptions.KindUnknown)
	})

	t.Run("No Stray Temp File Left Behind", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "session.json")
		repository := NewSessionFileRepository(path, zap.NewNop())

		require.NoError(t, repository.Store(ctx, signedToken(t, time.Now().Add(time.Hour)), user))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "session.json", entries[0].Name())
	})
}
