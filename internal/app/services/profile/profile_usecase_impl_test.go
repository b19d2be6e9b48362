package profile

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/dto/requests"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/dto/responses"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/exceptions"
	"go.uber.org/zap"
)

type MockProfileClient struct {
	mock.Mock
}

func (m *MockProfileClient) UpdateProfile(ctx context.Context, request *requests.UpdateProfile) (*responses.User, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.User), args.Error(1)
}

func (m *MockProfileClient) UpdateAvatar(ctx context.Context, upload *requests.AvatarUpload) (*responses.User, error) {
	args := m.Called(ctx, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.User), args.Error(1)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Current(ctx context.Context) (*responses.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.User), args.Error(1)
}

func (m *MockSessionRepository) Replace(ctx context.Context, user *responses.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockSessionRepository) Token(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockSessionRepository) Store(ctx context.Context, token string, user *responses.User) error {
	args := m.Called(ctx, token, user)
	return args.Error(0)
}

type MockAvatarPicker struct {
	mock.Mock
}

func (m *MockAvatarPicker) Pick(ctx context.Context) (*requests.AvatarUpload, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*requests.AvatarUpload), args.Bool(1), args.Error(2)
}

type closeTrackingReader struct {
	io.Reader
	closed bool
}

func (r *closeTrackingReader) Close() error {
	r.closed = true
	return nil
}

func validationErrorFields(t *testing.T, err error) exceptions.ValidationErrors {
	t.Helper()
	var custom *exceptions.CustomError
	require.ErrorAs(t, err, &custom)
	require.Equal(t, exceptions.KindValidation, custom.Kind)
	return custom.Fields
}

func TestProfileUsecase_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("Name And Email Only", func(t *testing.T) {
		profileClient := new(MockProfileClient)
		sessionRepository := new(MockSessionRepository)
		usecase := NewProfileUsecase(zap.NewNop(), profileClient, sessionRepository, new(MockAvatarPicker))

		updated := &responses.User{ID: "u1", Name: "John Doe", Email: "john@example.com"}
		profileClient.On("UpdateProfile", mock.Anything, &requests.UpdateProfile{
			Name:  "John Doe",
			Email: "john@example.com",
		}).Return(updated, nil)
		sessionRepository.On("Replace", mock.Anything, updated).Return(nil)

		user, err := usecase.Submit(ctx, &requests.UpdateProfile{
			Name:  "  John Doe  ",
			Email: " John@Example.com ",
		})
		require.NoError(t, err)
		assert.Equal(t, updated, user)
		profileClient.AssertExpectations(t)
		sessionRepository.AssertExpectations(t)
	})

	t.Run("Password Trio Sent Only With Old Password", func(t *testing.T) {
		profileClient := new(MockProfileClient)
		sessionRepository := new(MockSessionRepository)
		usecase := NewProfileUsecase(zap.NewNop(), profileClient, sessionRepository, new(MockAvatarPicker))

		updated := &responses.User{ID: "u1", Name: "John Doe", Email: "john@example.com"}
		profileClient.On("UpdateProfile", mock.Anything, &requests.UpdateProfile{
			Name:                 "John Doe",
			Email:                "john@example.com",
			OldPassword:          "old-secret",
			Password:             "new-secret",
			PasswordConfirmation: "new-secret",
		}).Return(updated, nil)
		sessionRepository.On("Replace", mock.Anything, updated).Return(nil)

		_, err := usecase.Submit(ctx, &requests.UpdateProfile{
			Name:                 "John Doe",
			Email:                "john@example.com",
			OldPassword:          "old-secret",
			Password:             "new-secret",
			PasswordConfirmation: "new-secret",
		})
		require.NoError(t, err)
		profileClient.AssertExpectations(t)
	})

	t.Run("Stray Password Without Old Password Still Passes", func(t *testing.T) {
		profileClient := new(MockProfileClient)
		sessionRepository := new(MockSessionRepository)
		usecase := NewProfileUsecase(zap.NewNop(), profileClient, sessionRepository, new(MockAvatarPicker))

		// With no current password the password rules are inactive, and
		// whatever was typed never reaches the wire.
		updated := &responses.User{ID: "u1", Name: "John Doe", Email: "john@example.com"}
		profileClient.On("UpdateProfile", mock.Anything, &requests.UpdateProfile{
			Name:  "John Doe",
			Email: "john@example.com",
		}).Return(updated, nil)
		sessionRepository.On("Replace", mock.Anything, updated).Return(nil)

		_, err := usecase.Submit(ctx, &requests.UpdateProfile{
			Name:     "John Doe",
			Email:    "john@example.com",
			Password: "abc",
		})
		require.NoError(t, err)
		profileClient.AssertExpectations(t)
	})

	t.Run("Missing Name", func(t *testing.T) {
		usecase := NewProfileUsecase(zap.NewNop(), new(MockProfileClient), new(MockSessionRepository), new(MockAvatarPicker))

		_, err := usecase.Submit(ctx, &requests.UpdateProfile{
			Email: "john@example.com",
		})
		fields := validationErrorFields(t, err)
		assert.Contains(t, fields, "name")
	})

	t.Run("Invalid Email", func(t *testing.T) {
		usecase := NewProfileUsecase(zap.NewNop(), new(MockProfileClient), new(MockSessionRepository), new(MockAvatarPicker))

		_, err := usecase.Submit(ctx, &requests.UpdateProfile{
			Name:  "John Doe",
			Email: "not-an-email",
		})
		fields := validationErrorFields(t, err)
		assert.Contains(t, fields, "email")
	})

	t.Run("Old Password Requires A New One", func(t *testing.T) {
		usecase := NewProfileUsecase(zap.NewNop(), new(MockProfileClient), new(MockSessionRepository), new(MockAvatarPicker))

		_, err := usecase.Submit(ctx, &requests.UpdateProfile{
			Name:        "John Doe",
			Email:       "john@example.com",
			OldPassword: "old-secret",
		})
		fields := validationErrorFields(t, err)
		assert.Equal(t, "is required when old_password is present", fields["password"])
		assert.Equal(t, "is required when old_password is present", fields["password_confirmation"])
	})

	t.Run("New Password Too Short", func(t *testing.T) {
		usecase := NewProfileUsecase(zap.NewNop(), new(MockProfileClient), new(MockSessionRepository), new(MockAvatarPicker))

		_, err := usecase.Submit(ctx, &requests.UpdateProfile{
			Name:                 "John Doe",
			Email:                "john@example.com",
			OldPassword:          "old-secret",
			Password:             "abc",
			PasswordConfirmation: "abc",
		})
		fields := validationErrorFields(t, err)
		assert.Contains(t, fields, "password")
	})

	t.Run("Confirmation Mismatch", func(t *testing.T) {
		usecase := NewProfileUsecase(zap.NewNop(), new(MockProfileClient), new(MockSessionRepository), new(MockAvatarPicker))

		_, err := usecase.Submit(ctx, &requests.UpdateProfile{
			Name:                 "John Doe",
			Email:                "john@example.com",
			OldPassword:          "old-secret",
			Password:             "new-secret",
			PasswordConfirmation: "different",
		})
		fields := validationErrorFields(t, err)
		assert.Equal(t, "must match password", fields["password_confirmation"])
	})

	t.Run("Upstream Rejection Leaves Session Alone", func(t *testing.T) {
		profileClient := new(MockProfileClient)
		sessionRepository := new(MockSessionRepository)
		usecase := NewProfileUsecase(zap.NewNop(), profileClient, sessionRepository, new(MockAvatarPicker))

		profileClient.On("UpdateProfile", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrUpdateProfileRejected(errors.New("wrong password"), 401))

		_, err := usecase.Submit(ctx, &requests.UpdateProfile{
			Name:  "John Doe",
			Email: "john@example.com",
		})
		var custom *exceptions.CustomError
		require.ErrorAs(t, err, &custom)
		assert.Equal(t, exceptions.KindNotLoggedIn, custom.Kind)
		sessionRepository.AssertNotCalled(t, "Replace")
	})
}

func TestProfileUsecase_UpdateAvatar(t *testing.T) {
	ctx := context.Background()

	t.Run("Uploads Under The Session User ID", func(t *testing.T) {
		profileClient := new(MockProfileClient)
		sessionRepository := new(MockSessionRepository)
		picker := new(MockAvatarPicker)
		usecase := NewProfileUsecase(zap.NewNop(), profileClient, sessionRepository, picker)

		content := &closeTrackingReader{Reader: strings.NewReader("fake image bytes")}
		picker.On("Pick", mock.Anything).Return(&requests.AvatarUpload{
			FileName: "holiday-photo.png",
			Content:  content,
		}, true, nil)
		sessionRepository.On("Current", mock.Anything).Return(&responses.User{ID: "u1"}, nil)

		updated := &responses.User{ID: "u1", AvatarURL: "http://cdn/u1.jpg"}
		profileClient.On("UpdateAvatar", mock.Anything, mock.MatchedBy(func(upload *requests.AvatarUpload) bool {
			return upload.FileName == "u1.jpg" && upload.ContentType == "image/jpeg"
		})).Return(updated, nil)
		sessionRepository.On("Replace", mock.Anything, updated).Return(nil)

		user, err := usecase.UpdateAvatar(ctx)
		require.NoError(t, err)
		assert.Equal(t, updated, user)
		assert.True(t, content.closed, "the picked file must be closed after the upload")
		profileClient.AssertExpectations(t)
		sessionRepository.AssertExpectations(t)
	})

	t.Run("Picked File Closed Even On Failure", func(t *testing.T) {
		profileClient := new(MockProfileClient)
		sessionRepository := new(MockSessionRepository)
		picker := new(MockAvatarPicker)
		usecase := NewProfileUsecase(zap.NewNop(), profileClient, sessionRepository, picker)

		content := &closeTrackingReader{Reader: strings.NewReader("fake image bytes")}
		picker.On("Pick", mock.Anything).Return(&requests.AvatarUpload{Content: content}, true, nil)
		sessionRepository.On("Current", mock.Anything).Return(&responses.User{ID: "u1"}, nil)
		profileClient.On("UpdateAvatar", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrUpdateAvatarRejected(errors.New("file too large"), 400))

		_, err := usecase.UpdateAvatar(ctx)
		require.Error(t, err)
		assert.True(t, content.closed)
	})

	t.Run("Cancelled Pick Issues No Request", func(t *testing.T) {
		profileClient := new(MockProfileClient)
		sessionRepository := new(MockSessionRepository)
		picker := new(MockAvatarPicker)
		usecase := NewProfileUsecase(zap.NewNop(), profileClient, sessionRepository, picker)

		picker.On("Pick", mock.Anything).Return(nil, false, nil)

		user, err := usecase.UpdateAvatar(ctx)
		require.NoError(t, err)
		assert.Nil(t, user)
		profileClient.AssertNotCalled(t, "UpdateAvatar")
		sessionRepository.AssertNotCalled(t, "Replace")
	})

	t.Run("Picker Failure", func(t *testing.T) {
		picker := new(MockAvatarPicker)
		usecase := NewProfileUsecase(zap.NewNop(), new(MockProfileClient), new(MockSessionRepository), picker)

		picker.On("Pick", mock.Anything).Return(nil, false, errors.New("unreadable file"))

		_, err := usecase.UpdateAvatar(ctx)
		var custom *exceptions.CustomError
		require.ErrorAs(t, err, &custom)
		assert.Equal(t, exceptions.KindUnknown, custom.Kind)
	})

	t.Run("No Session User", func(t *testing.T) {
		profileClient := new(MockProfileClient)
		sessionRepository := new(MockSessionRepository)
		picker := new(MockAvatarPicker)
		usecase := NewProfileUsecase(zap.NewNop(), profileClient, sessionRepository, picker)

		picker.On("Pick", mock.Anything).Return(&requests.AvatarUpload{
			Content: io.NopCloser(strings.NewReader("fake image bytes")),
		}, true, nil)
		sessionRepository.On("Current", mock.Anything).Return(nil, exceptions.ErrSessionEmpty())

		_, err := usecase.UpdateAvatar(ctx)
		var custom *exceptions.CustomError
		require.ErrorAs(t, err, &custom)
		assert.Equal(t, exceptions.KindNotLoggedIn, custom.Kind)
		profileClient.AssertNotCalled(t, "UpdateAvatar")
	})
}
