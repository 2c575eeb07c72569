package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Telegram     TelegramConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"AVTOMIR_APP_ENV" required:"true"`
	Port         string `envconfig:"AVTOMIR_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"AVTOMIR_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"AVTOMIR_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"AVTOMIR_DB_DSN"`
	Driver string `envconfig:"AVTOMIR_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"AVTOMIR_DB_HOST"`
	LegacyPort     int    `envconfig:"AVTOMIR_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"AVTOMIR_DB_USER"`
	LegacyPassword string `envconfig:"AVTOMIR_DB_PASSWORD"`
	LegacyName     string `envconfig:"AVTOMIR_DB_NAME"`
	LegacySSLMode  string `envconfig:"AVTOMIR_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"AVTOMIR_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"AVTOMIR_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"AVTOMIR_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"AVTOMIR_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, "sqlite")
}

// RedisConfig is optional: an empty URL and address disables the
// idempotency guard without affecting the rest of the API.
type RedisConfig struct {
	URL          string        `envconfig:"AVTOMIR_REDIS_URL"`
	Address      string        `envconfig:"AVTOMIR_REDIS_ADDR"`
	Password     string        `envconfig:"AVTOMIR_REDIS_PASSWORD"`
	DB           int           `envconfig:"AVTOMIR_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"AVTOMIR_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"AVTOMIR_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"AVTOMIR_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"AVTOMIR_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"AVTOMIR_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Configured() bool {
	return r.URL != "" || r.Address != ""
}

// TelegramConfig carries the notification channel credentials. Missing
// credentials disable the channel entirely; catalog, cart, and
// pre-order flows keep working.
type TelegramConfig struct {
	BotToken       string        `envconfig:"AVTOMIR_TELEGRAM_BOT_TOKEN"`
	ChatID         int64         `envconfig:"AVTOMIR_TELEGRAM_CHAT_ID"`
	RequestTimeout time.Duration `envconfig:"AVTOMIR_TELEGRAM_REQUEST_TIMEOUT" default:"10s"`
}

func (t TelegramConfig) Configured() bool {
	return t.BotToken != "" && t.ChatID != 0
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"AVTOMIR_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.IsSQLite() {
		return fmt.Errorf("%s is required when the sqlite driver is selected", EnvDBDSN)
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
