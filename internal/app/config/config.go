package config

import (
	"carelink-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "carelink"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:       utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:       utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username:   utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
			AuditQueue: utils.GetEnvString("RABBITMQ_AUDIT_QUEUE", "carelink_audit_events"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "prescription-attachments"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			SuperadminAPIKey:           utils.GetEnvString("APP_SUPERADMIN_API_KEY", ""),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			SessionExpiryTimeInHour:    utils.GetEnvInt("APP_SESSION_EXPIRY_TIME_IN_HOUR", 24),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Scan: Scan{
			MaxAttemptsPerMinute: utils.GetEnvInt("SCAN_MAX_ATTEMPTS_PER_MINUTE", 10),
			BlockTimeInMinute:    utils.GetEnvInt("SCAN_BLOCK_TIME_IN_MINUTE", 5),
		},
	}
}
