package config

type (
	InternalConfig struct {
		App     App
		API     API
		Session Session
	}

	DriverConfig struct {
		Logger     Logger
		HTTPClient HTTPClient
	}

	App struct {
		Env      string
		Timezone string
		// AvailabilityRefetchPerSecond caps how often a burst of
		// provider/date changes may hit the day-availability endpoint.
		AvailabilityRefetchPerSecond float64
		AvailabilityRefetchBurst     int
	}

	API struct {
		BaseURL string
	}

	Session struct {
		FilePath string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	HTTPClient struct {
		TimeoutInSeconds   int
		DialTimeoutSeconds int
		MaxIdleConns       int
	}
)
