package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	Cart          CartConfig
	Currency      CurrencyConfig
	CORS          CORSConfig
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
	Env          string `envconfig:"MEBELHUB_APP_ENV" required:"true"`
	Port         string `envconfig:"MEBELHUB_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"MEBELHUB_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MEBELHUB_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"MEBELHUB_DB_DSN"`
	Driver string `envconfig:"MEBELHUB_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"MEBELHUB_DB_HOST"`
	LegacyPort     int    `envconfig:"MEBELHUB_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"MEBELHUB_DB_USER"`
	LegacyPassword string `envconfig:"MEBELHUB_DB_PASSWORD"`
	LegacyName     string `envconfig:"MEBELHUB_DB_NAME"`
	LegacySSLMode  string `envconfig:"MEBELHUB_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MEBELHUB_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MEBELHUB_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MEBELHUB_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MEBELHUB_DB_CONN_MAX_IDLE_TIME" default:"10m"`

	PingAttempts int           `envconfig:"MEBELHUB_DB_PING_ATTEMPTS" default:"5"`
	PingBackoff  time.Duration `envconfig:"MEBELHUB_DB_PING_BACKOFF" default:"500ms"`
}

type RedisConfig struct {
	URL          string        `envconfig:"MEBELHUB_REDIS_URL" required:"true"`
	Address      string        `envconfig:"MEBELHUB_REDIS_ADDR"`
	Password     string        `envconfig:"MEBELHUB_REDIS_PASSWORD"`
	DB           int           `envconfig:"MEBELHUB_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MEBELHUB_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MEBELHUB_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MEBELHUB_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MEBELHUB_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MEBELHUB_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"MEBELHUB_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"MEBELHUB_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"MEBELHUB_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"MEBELHUB_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"MEBELHUB_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"MEBELHUB_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"MEBELHUB_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"MEBELHUB_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"MEBELHUB_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"MEBELHUB_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit int           `envconfig:"MEBELHUB_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"MEBELHUB_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"MEBELHUB_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"MEBELHUB_AUTO_MIGRATE" default:"false"`
}

// CartConfig drives the redis-backed cart persister.
type CartConfig struct {
	TTL time.Duration `envconfig:"MEBELHUB_CART_TTL" default:"720h"`
}

// CurrencyConfig controls the USD to UZS conversion rate resolution.
type CurrencyConfig struct {
	DefaultRate string        `envconfig:"MEBELHUB_CURRENCY_DEFAULT_RATE" default:"13000"`
	CacheTTL    time.Duration `envconfig:"MEBELHUB_CURRENCY_CACHE_TTL" default:"5m"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"MEBELHUB_CORS_ALLOWED_ORIGINS"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
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
