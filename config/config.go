package config

import (
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer    HttpServerConfig    `envconfig:"HTTP"`
	Backend       BackendConfig       `envconfig:"BACKEND"`
	HttpClient    HttpClientConfig    `envconfig:"HTTP_CLIENT"`
	Redis         RedisConfig         `envconfig:"REDIS"`
	Session       SessionConfig       `envconfig:"SESSION"`
	MessageStream MessageStreamConfig `envconfig:"MESSAGE_STREAM"`
	Booking       BookingConfig       `envconfig:"BOOKING"`
	APM           APMConfig           `envconfig:"APM"`
}

type HttpServerConfig struct {
	Port         string `envconfig:"PORT" default:"3000"`
	CSRFEnabled  bool   `envconfig:"CSRF_ENABLED" default:"true"`
	CookieSecure bool   `envconfig:"COOKIE_SECURE" default:"false"`
}

// BackendConfig points at the cinema REST API, e.g. http://localhost:8000/api.
type BackendConfig struct {
	BaseURL string `envconfig:"BASE_URL" default:"http://localhost:8000/api"`
}

type HttpClientConfig struct {
	// Type selects the breaker: consecutive, rate or threshold.
	Type                string        `envconfig:"TYPE" default:"consecutive"`
	Timeout             time.Duration `envconfig:"TIMEOUT" default:"10s"`
	ConsecutiveFailures int64         `envconfig:"CONSECUTIVE_FAILURES" default:"5"`
	Threshold           int64         `envconfig:"THRESHOLD" default:"10"`
	ErrorRate           float64       `envconfig:"ERROR_RATE" default:"0.5"`
	MinSamples          int64         `envconfig:"MIN_SAMPLES" default:"20"`
	Tracing             bool          `envconfig:"TRACING" default:"false"`
}

// RedisConfig configures the session store. An empty Host keeps sessions in memory.
type RedisConfig struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`
}

type SessionConfig struct {
	CookieName string        `envconfig:"COOKIE_NAME" default:"cinema_session"`
	TTL        time.Duration `envconfig:"TTL" default:"24h"`
}

type MessageStreamConfig struct {
	// Driver is gochannel or amqp.
	Driver   string `envconfig:"DRIVER" default:"gochannel"`
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"5672"`
	Username string `envconfig:"USERNAME" default:"guest"`
	Password string `envconfig:"PASSWORD" default:"guest"`
}

type BookingConfig struct {
	UnitPrice       float64       `envconfig:"UNIT_PRICE" default:"100"`
	CheckoutLockTTL time.Duration `envconfig:"CHECKOUT_LOCK_TTL" default:"30s"`
}

type APMConfig struct {
	Enabled bool `envconfig:"ENABLED" default:"false"`
}

func InitConfig() *Config {
	var cfg Config
	if err := envconfig.Process("cinema", &cfg); err != nil {
		log.Fatalf("error load config: %v", err)
	}
	return &cfg
}
