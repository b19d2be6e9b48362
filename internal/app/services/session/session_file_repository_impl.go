package session

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
	"github.com/thiagothgb/gostack-mobile-2020/internal/app/contracts"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/dto/responses"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/exceptions"
	"go.uber.org/zap"
)

type sessionPayload struct {
	Token string          `json:"token"`
	User  *responses.User `json:"user"`
}

// sessionFileRepository keeps the session in a single JSON file, the
// device-storage equivalent. Writes go through a temp file and rename
// so a crash never leaves a half-written session behind.
type sessionFileRepository struct {
	Path string
	Log  *zap.Logger

	mu sync.Mutex
}

func NewSessionFileRepository(path string, log *zap.Logger) contracts.SessionRepository {
	return &sessionFileRepository{
		Path: path,
		Log:  log,
	}
}

func (r *sessionFileRepository) Current(ctx context.Context) (*responses.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	payload, err := r.loadLocked()
	if err != nil {
		return nil, err
	}
	return payload.User, nil
}

func (r *sessionFileRepository) Token(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	payload, err := r.loadLocked()
	if err != nil {
		return "", err
	}

	// The signature belongs to the server; only the expiry claim is
	// checked before the token goes on the wire.
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(payload.Token, claims); err != nil {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}
	expiry, err := claims.GetExpirationTime()
	if err != nil {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}
	if expiry != nil && expiry.Before(time.Now()) {
		return "", exceptions.ErrTokenInvalidOrExpired(nil)
	}

	return payload.Token, nil
}

func (r *sessionFileRepository) Replace(ctx context.Context, user *responses.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	payload, err := r.loadLocked()
	if err != nil {
		return err
	}
	payload.User = user
	return r.storeLocked(payload)
}

func (r *sessionFileRepository) Store(ctx context.Context, token string, user *responses.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.storeLocked(&sessionPayload{Token: token, User: user})
}

func (r *sessionFileRepository) loadLocked() (*sessionPayload, error) {
	raw, err := os.ReadFile(r.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, exceptions.ErrSessionEmpty()
		}
		return nil, exceptions.ErrSessionRead(err)
	}

	payload := new(sessionPayload)
	if err := json.Unmarshal(raw, payload); err != nil {
		return nil, exceptions.ErrSessionRead(err)
	}
	if payload.User == nil || payload.Token == "" {
		return nil, exceptions.ErrSessionEmpty()
	}
	return payload, nil
}

func (r *sessionFileRepository) storeLocked(payload *sessionPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrSessionWrite(err)
	}

	if err := os.MkdirAll(filepath.Dir(r.Path), 0o700); err != nil {
		return exceptions.ErrSessionWrite(err)
	}

	tmp := r.Path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return exceptions.ErrSessionWrite(err)
	}
	if err := os.Rename(tmp, r.Path); err != nil {
		return exceptions.ErrSessionWrite(err)
	}
	return nil
}
