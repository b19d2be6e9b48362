package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/thiagothgb/gostack-mobile-2020/internal/app/contracts"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/constvars"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/dto/responses"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/exceptions"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/utils"
	"go.uber.org/zap"
)

type providerAPIClient struct {
	BaseURL    string
	HTTPClient *http.Client
	Session    contracts.SessionRepository
	Log        *zap.Logger
}

func NewProviderAPIClient(baseURL string, httpClient *http.Client, session contracts.SessionRepository, log *zap.Logger) contracts.ProviderClient {
	return &providerAPIClient{
		BaseURL:    baseURL,
		HTTPClient: httpClient,
		Session:    session,
		Log:        log,
	}
}

func (c *providerAPIClient) FindAll(ctx context.Context) ([]responses.Provider, error) {
	requestID := uuid.NewString()
	c.Log.Info("ProviderAPIClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	token, err := c.Session.Token(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseURL+constvars.EndpointProviders, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	c.setHeaders(req, token, requestID)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrListProvidersRejected(utils.UpstreamBodyError(resp.Body), resp.StatusCode)
	}

	var result []responses.Provider
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "providers")
	}

	c.Log.Info("ProviderAPIClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(result)))
	return result, nil
}

func (c *providerAPIClient) FindDayAvailability(ctx context.Context, providerID string, date time.Time) ([]responses.HourAvailability, error) {
	requestID := uuid.NewString()
	c.Log.Info("ProviderAPIClient.FindDayAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
		zap.String(constvars.LoggingDateKey, date.Format("2006-01-02")))

	token, err := c.Session.Token(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set(constvars.QueryParamDay, strconv.Itoa(date.Day()))
	params.Set(constvars.QueryParamMonth, strconv.Itoa(int(date.Month())))
	params.Set(constvars.QueryParamYear, strconv.Itoa(date.Year()))

	endpoint := fmt.Sprintf(c.BaseURL+constvars.EndpointDayAvailability, url.PathEscape(providerID))
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	c.setHeaders(req, token, requestID)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrDayAvailabilityRejected(utils.UpstreamBodyError(resp.Body), resp.StatusCode)
	}

	var result []responses.HourAvailability
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "day-availability")
	}

	c.Log.Info("ProviderAPIClient.FindDayAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(result)))
	return result, nil
}

func (c *providerAPIClient) setHeaders(req *http.Request, token, requestID string) {
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
	req.Header.Set(constvars.HeaderRequestID, requestID)
}
