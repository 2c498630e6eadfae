package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"      default:"8080"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"   default:"5"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"livecity"`
		Timezone string `envconfig:"TIMEZONE" default:"America/New_York"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"   default:"30"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
		} `envconfig:"RATE_LIMITER"`
		APIKey string `envconfig:"API_KEY"`
	} `envconfig:"APP"`

	Pricing struct {
		Base         int `envconfig:"BASE"          default:"350"`
		Lighting     int `envconfig:"LIGHTING"      default:"100"`
		Photography  int `envconfig:"PHOTOGRAPHY"   default:"150"`
		VideoVisuals int `envconfig:"VIDEO_VISUALS" default:"100"`
		HourlyRate   int `envconfig:"HOURLY_RATE"   default:"75"`
		BaseHours    int `envconfig:"BASE_HOURS"    default:"5"`
	} `envconfig:"PRICING"`

	Validation struct {
		Email      bool   `envconfig:"EMAIL"       default:"true"`
		Phone      bool   `envconfig:"PHONE"       default:"true"`
		Address    bool   `envconfig:"ADDRESS"     default:"true"`
		TimeWindow bool   `envconfig:"TIME_WINDOW" default:"true"`
		CollectAll bool   `envconfig:"COLLECT_ALL" default:"false"`
		LatestEnd  string `envconfig:"LATEST_END"  default:"02:00"`
	} `envconfig:"VALIDATION"`

	Reminder struct {
		Enable         bool   `envconfig:"ENABLE"           default:"true"`
		OffsetDays     int    `envconfig:"OFFSET_DAYS"      default:"14"`
		IntervalHours  int    `envconfig:"INTERVAL_HOURS"   default:"24"`
		Concurrency    int    `envconfig:"CONCURRENCY"      default:"1"`
		LockTTLSeconds int    `envconfig:"LOCK_TTL_SECONDS" default:"900"`
		Notifier       string `envconfig:"NOTIFIER"         default:"emailjs"`
		TemplateID     string `envconfig:"TEMPLATE_ID"`
	} `envconfig:"REMINDER"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"300"`
	} `envconfig:"CACHE"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY"       default:"3"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MigrationTable string `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"`
			Prefix         string `envconfig:"PREFIX"`
			Read           struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"READ"`
			Write struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Kafka struct {
		Enable        bool     `envconfig:"ENABLE"`
		Brokers       []string `envconfig:"BROKERS"`
		ConsumerGroup string   `envconfig:"CONSUMER_GROUP" default:"livecity"`
		SASL          struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
		Topics struct {
			Bookings      string `envconfig:"BOOKINGS"      default:"livecity.bookings"`
			Notifications string `envconfig:"NOTIFICATIONS" default:"livecity.notifications"`
		} `envconfig:"TOPICS"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		EmailJS struct {
			Endpoint   string `envconfig:"ENDPOINT"    default:"https://api.emailjs.com/api/v1.0/email/send"`
			ServiceID  string `envconfig:"SERVICE_ID"`
			PublicKey  string `envconfig:"PUBLIC_KEY"`
			PrivateKey string `envconfig:"PRIVATE_KEY"`
			TimeoutSec int    `envconfig:"TIMEOUT_SEC" default:"10"`
		} `envconfig:"EMAILJS"`
		S3 struct {
			Enable          bool   `envconfig:"ENABLE"`
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
		} `envconfig:"S3"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("processing environment: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
