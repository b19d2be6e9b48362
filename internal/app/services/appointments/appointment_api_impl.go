package appointments

import (
	"bytes"
	"context"
	"net/http"

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

type appointmentAPIClient struct {
	BaseURL    string
	HTTPClient *http.Client
	Session    contracts.SessionRepository
	Log        *zap.Logger
}

func NewAppointmentAPIClient(baseURL string, httpClient *http.Client, session contracts.SessionRepository, log *zap.Logger) contracts.AppointmentClient {
	return &appointmentAPIClient{
		BaseURL:    baseURL,
		HTTPClient: httpClient,
		Session:    session,
		Log:        log,
	}
}

func (c *appointmentAPIClient) Create(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID := uuid.NewString()
	c.Log.Info("AppointmentAPIClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, request.ProviderID),
		zap.String(constvars.LoggingDateKey, request.Date))

	token, err := c.Session.Token(ctx)
	if err != nil {
		return nil, err
	}

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseURL+constvars.EndpointAppointments, bytes.NewBuffer(requestJSON))
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

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return nil, exceptions.ErrCreateAppointmentRejected(utils.UpstreamBodyError(resp.Body), resp.StatusCode)
	}

	appointment := new(responses.Appointment)
	err = json.NewDecoder(resp.Body).Decode(appointment)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "appointments")
	}

	c.Log.Info("AppointmentAPIClient.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	return appointment, nil
}
