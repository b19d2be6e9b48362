package profile

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/thiagothgb/gostack-mobile-2020/internal/app/contracts"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/constvars"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/dto/requests"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/dto/responses"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/exceptions"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/utils"
	"go.uber.org/zap"
)

type profileAPIClient struct {
	BaseURL    string
	HTTPClient *http.Client
	Session    contracts.SessionRepository
	Log        *zap.Logger
}

func NewProfileAPIClient(baseURL string, httpClient *http.Client, session contracts.SessionRepository, log *zap.Logger) contracts.ProfileClient {
	return &profileAPIClient{
		BaseURL:    baseURL,
		HTTPClient: httpClient,
		Session:    session,
		Log:        log,
	}
}

func (c *profileAPIClient) UpdateProfile(ctx context.Context, request *requests.UpdateProfile) (*responses.User, error) {
	requestID := uuid.NewString()
	c.Log.Info("ProfileAPIClient.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	token, err := c.Session.Token(ctx)
	if err != nil {
		return nil, err
	}

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPut, c.BaseURL+constvars.EndpointProfile, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
	req.Header.Set(constvars.HeaderRequestID, requestID)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrUpdateProfileRejected(utils.UpstreamBodyError(resp.Body), resp.StatusCode)
	}

	user := new(responses.User)
	err = json.NewDecoder(resp.Body).Decode(user)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "profile")
	}

	c.Log.Info("ProfileAPIClient.UpdateProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID))
	return user, nil
}

func (c *profileAPIClient) UpdateAvatar(ctx context.Context, upload *requests.AvatarUpload) (*responses.User, error) {
	requestID := uuid.NewString()
	c.Log.Info("ProfileAPIClient.UpdateAvatar called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	token, err := c.Session.Token(ctx)
	if err != nil {
		return nil, err
	}

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, constvars.AvatarFormField, upload.FileName))
	header.Set(constvars.HeaderContentType, upload.ContentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, exceptions.ErrCannotBuildMultipart(err)
	}
	if _, err = io.Copy(part, upload.Content); err != nil {
		return nil, exceptions.ErrCannotBuildMultipart(err)
	}
	if err = writer.Close(); err != nil {
		return nil, exceptions.ErrCannotBuildMultipart(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPatch, c.BaseURL+constvars.EndpointUsersAvatar, body)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
	req.Header.Set(constvars.HeaderRequestID, requestID)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrUpdateAvatarRejected(utils.UpstreamBodyError(resp.Body), resp.StatusCode)
	}

	user := new(responses.User)
	err = json.NewDecoder(resp.Body).Decode(user)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "avatar")
	}

	c.Log.Info("ProfileAPIClient.UpdateAvatar succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID))
	return user, nil
}
