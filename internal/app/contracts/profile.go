package contracts

import (
	"context"

	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/dto/requests"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/dto/responses"
)

type ProfileClient interface {
	UpdateProfile(ctx context.Context, request *requests.UpdateProfile) (*responses.User, error)
	UpdateAvatar(ctx context.Context, upload *requests.AvatarUpload) (*responses.User, error)
}

// AvatarPicker is the image-selection collaborator. ok is false when
// the user cancelled, which is not an error.
type AvatarPicker interface {
	Pick(ctx context.Context) (upload *requests.AvatarUpload, ok bool, err error)
}

type ProfileUsecase interface {
	CurrentUser(ctx context.Context) (*responses.User, error)

	// Submit validates the form (password rules apply only when the old
	// password is filled in) and sends it upstream with the password
	// trio omitted when it is not. On success the session user is
	// replaced with the response. Validation failures carry a
	// field-to-message map and are never collapsed into an alert.
	Submit(ctx context.Context, request *requests.UpdateProfile) (*responses.User, error)

	// UpdateAvatar runs the picker and, unless cancelled, uploads the
	// image and replaces the session user. Cancellation returns
	// (nil, nil) with no network call issued.
	UpdateAvatar(ctx context.Context) (*responses.User, error)
}
