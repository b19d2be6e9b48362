package config

import (
	"github.com/joho/godotenv"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/utils"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		HTTPClient: HTTPClient{
			TimeoutInSeconds:   utils.GetEnvInt("HTTP_CLIENT_TIMEOUT_IN_SECONDS", 25),
			DialTimeoutSeconds: utils.GetEnvInt("HTTP_CLIENT_DIAL_TIMEOUT_IN_SECONDS", 10),
			MaxIdleConns:       utils.GetEnvInt("HTTP_CLIENT_MAX_IDLE_CONNS", 100),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                          utils.GetEnvString("APP_ENV", "development"),
			Timezone:                     utils.GetEnvString("APP_TIMEZONE", "America/Sao_Paulo"),
			AvailabilityRefetchPerSecond: utils.GetEnvFloat("APP_AVAILABILITY_REFETCH_PER_SECOND", 2),
			AvailabilityRefetchBurst:     utils.GetEnvInt("APP_AVAILABILITY_REFETCH_BURST", 4),
		},
		API: API{
			BaseURL: utils.GetEnvString("API_BASE_URL", "http://localhost:3333"),
		},
		Session: Session{
			FilePath: utils.GetEnvString("SESSION_FILE_PATH", ".gobarber/session.json"),
		},
	}
}
