package profile

import (
	"context"
	"fmt"

	"github.com/thiagothgb/gostack-mobile-2020/internal/app/contracts"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/constvars"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/dto/requests"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/dto/responses"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/exceptions"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/utils"
	"go.uber.org/zap"
)

type profileUsecase struct {
	Log           *zap.Logger
	ProfileClient contracts.ProfileClient
	Session       contracts.SessionRepository
	Picker        contracts.AvatarPicker
}

func NewProfileUsecase(log *zap.Logger, profileClient contracts.ProfileClient, session contracts.SessionRepository, picker contracts.AvatarPicker) contracts.ProfileUsecase {
	return &profileUsecase{
		Log:           log,
		ProfileClient: profileClient,
		Session:       session,
		Picker:        picker,
	}
}

func (u *profileUsecase) CurrentUser(ctx context.Context) (*responses.User, error) {
	return u.Session.Current(ctx)
}

func (u *profileUsecase) Submit(ctx context.Context, request *requests.UpdateProfile) (*responses.User, error) {
	utils.SanitizeUpdateProfileRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	payload := &requests.UpdateProfile{
		Name:  request.Name,
		Email: request.Email,
	}
	// The upstream must never receive empty password fields it could
	// read as "clear my password": the trio travels only when the old
	// password is filled in.
	if request.OldPassword != "" {
		payload.OldPassword = request.OldPassword
		payload.Password = request.Password
		payload.PasswordConfirmation = request.PasswordConfirmation
	}

	user, err := u.ProfileClient.UpdateProfile(ctx, payload)
	if err != nil {
		return nil, err
	}

	if err := u.Session.Replace(ctx, user); err != nil {
		return nil, err
	}

	u.Log.Info("ProfileUsecase.Submit replaced session user",
		zap.String(constvars.LoggingUserIDKey, user.ID))
	return user, nil
}

func (u *profileUsecase) UpdateAvatar(ctx context.Context) (*responses.User, error) {
	upload, ok, err := u.Picker.Pick(ctx)
	if err != nil {
		return nil, exceptions.ErrAvatarPick(err)
	}
	if !ok {
		// Cancelled. Not an error, no request goes out.
		u.Log.Debug("ProfileUsecase.UpdateAvatar selection cancelled")
		return nil, nil
	}
	defer upload.Content.Close()

	current, err := u.Session.Current(ctx)
	if err != nil {
		return nil, err
	}

	// The part is keyed by the session user's id regardless of the
	// picked file's original name.
	upload.FileName = fmt.Sprintf("%s.jpg", current.ID)
	if upload.ContentType == "" {
		upload.ContentType = constvars.MIMEImageJPEG
	}

	user, err := u.ProfileClient.UpdateAvatar(ctx, upload)
	if err != nil {
		return nil, err
	}

	if err := u.Session.Replace(ctx, user); err != nil {
		return nil, err
	}

	u.Log.Info("ProfileUsecase.UpdateAvatar replaced session user",
		zap.String(constvars.LoggingUserIDKey, user.ID))
	return user, nil
}
