package config

type InternalConfig struct {
	App      App
	JWT      AppJWT
	Minio    AppMinio
	RabbitMQ AppRabbitMQ
	Payment  AppPayment
	Video    AppVideo
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	AllowedOrigins             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestTimeoutInSeconds    int
	RequestBodyLimitInMegabyte int
	AuthRateLimitPerMinute     int
	AuthRateLimitBlockMinutes  int
	LoginSessionExpiredInHours int
	// DashboardPartialFailure keeps successful dashboard fields when some queries fail.
	DashboardPartialFailure bool
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppMinio struct {
	BucketName                      string
	PublicBaseUrl                   string
	ProfilePictureMaxUploadSizeInMB int64
}

type AppRabbitMQ struct {
	Exchange    string
	EventsQueue string
}

// AppPayment is handed to the checkout widget as is.
type AppPayment struct {
	PublicAPIKey string
	Live         bool
	Currency     string
	Country      string
}

type AppVideo struct {
	Domain            string
	RoomTTLInMinutes  int
	EmbedWidth        string
	EmbedHeight       string
	DefaultParentNode string
}
