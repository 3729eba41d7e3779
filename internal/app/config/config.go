package config

import (
	"github.com/Bricklabsai/theralink/internal/pkg/utils"
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
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "theralink"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
			AccessLogFileName:   utils.GetEnvString("LOGGER_ACCESS_LOG_FILENAME", "access.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Africa/Nairobi"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			AllowedOrigins:             utils.GetEnvString("APP_ALLOWED_ORIGINS", "*"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			AuthRateLimitPerMinute:     utils.GetEnvInt("APP_AUTH_RATE_LIMIT_PER_MINUTE", 10),
			AuthRateLimitBlockMinutes:  utils.GetEnvInt("APP_AUTH_RATE_LIMIT_BLOCK_MINUTES", 5),
			LoginSessionExpiredInHours: utils.GetEnvInt("APP_LOGIN_SESSION_EXPIRED_TIME_IN_HOURS", 24),
			DashboardPartialFailure:    utils.GetEnvBool("APP_DASHBOARD_PARTIAL_FAILURE", false),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Minio: AppMinio{
			BucketName:                      utils.GetEnvString("MINIO_BUCKET_NAME", "avatars"),
			PublicBaseUrl:                   utils.GetEnvString("MINIO_PUBLIC_BASE_URL", "http://localhost:9000"),
			ProfilePictureMaxUploadSizeInMB: utils.GetEnvInt64("APP_MINIO_PROFILE_PICTURE_UPLOAD_MAX_SIZE_IN_MB", 5),
		},
		RabbitMQ: AppRabbitMQ{
			Exchange:    utils.GetEnvString("APP_RABBITMQ_EXCHANGE", "theralink.events"),
			EventsQueue: utils.GetEnvString("APP_RABBITMQ_EVENTS_QUEUE", "theralink_domain_events"),
		},
		Payment: AppPayment{
			PublicAPIKey: utils.GetEnvString("PAYMENT_PUBLIC_API_KEY", ""),
			Live:         utils.GetEnvBool("PAYMENT_LIVE", false),
			Currency:     utils.GetEnvString("PAYMENT_CURRENCY", "KES"),
			Country:      utils.GetEnvString("PAYMENT_COUNTRY", "KE"),
		},
		Video: AppVideo{
			Domain:            utils.GetEnvString("VIDEO_DOMAIN", "meet.jit.si"),
			RoomTTLInMinutes:  utils.GetEnvInt("VIDEO_ROOM_TTL_IN_MINUTES", 120),
			EmbedWidth:        utils.GetEnvString("VIDEO_EMBED_WIDTH", "100%"),
			EmbedHeight:       utils.GetEnvString("VIDEO_EMBED_HEIGHT", "100%"),
			DefaultParentNode: utils.GetEnvString("VIDEO_DEFAULT_PARENT_NODE", "jitsi-container"),
		},
	}
}
