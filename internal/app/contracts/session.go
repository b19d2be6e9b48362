package contracts

import (
	"context"

	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/dto/responses"
)

// SessionRepository holds the authenticated user and their API token.
// Replace swaps the whole user object; concurrent updates are not
// coordinated and the last write wins.
type SessionRepository interface {
	Current(ctx context.Context) (*responses.User, error)
	Replace(ctx context.Context, user *responses.User) error
	// Token returns the stored API token, rejecting expired ones before
	// any request is attempted.
	Token(ctx context.Context) (string, error)
	Store(ctx context.Context, token string, user *responses.User) error
}
