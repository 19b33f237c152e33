package config

type (
	InternalConfig struct {
		App  App
		JWT  JWT
		Scan Scan
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		EndpointPrefix             string
		SuperadminAPIKey           string
		MaxRequests                int
		ShutdownTimeout            int
		SessionExpiryTimeInHour    int
		RequestBodyLimitInMegabyte int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	Scan struct {
		MaxAttemptsPerMinute int
		BlockTimeInMinute    int
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Port       string
		Host       string
		Username   string
		Password   string
		AuditQueue string
	}

	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
