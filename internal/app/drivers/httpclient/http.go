package httpclient

import (
	"net"
	"net/http"
	"time"

	"github.com/thiagothgb/gostack-mobile-2020/internal/app/config"
)

// NewHTTPClient builds the single shared client every API call goes
// through. The upstream's own timeout/retry policy is authoritative;
// the local timeout only keeps a dead network from hanging a screen.
func NewHTTPClient(driverConfig *config.DriverConfig) *http.Client {
	return &http.Client{
		Timeout: time.Duration(driverConfig.HTTPClient.TimeoutInSeconds) * time.Second,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   time.Duration(driverConfig.HTTPClient.DialTimeoutSeconds) * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        driverConfig.HTTPClient.MaxIdleConns,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}
