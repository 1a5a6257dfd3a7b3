package config

// EnvPrefix is passed to envconfig; individual fields carry explicit names.
const EnvPrefix = "mebelhub"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv   = "MEBELHUB_APP_ENV"
	EnvPort     = "MEBELHUB_APP_PORT"
	EnvDBDSN    = "MEBELHUB_DB_DSN"
	EnvDBHost   = "MEBELHUB_DB_HOST"
	EnvDBUser   = "MEBELHUB_DB_USER"
	EnvDBName   = "MEBELHUB_DB_NAME"
	EnvRedisURL = "MEBELHUB_REDIS_URL"

	EnvJWTSecret              = "MEBELHUB_JWT_SECRET"
	EnvJWTIssuer              = "MEBELHUB_JWT_ISSUER"
	EnvJWTExpMins             = "MEBELHUB_JWT_EXPIRATION_MINUTES"
	EnvRefreshTokenTTLMinutes = "MEBELHUB_REFRESH_TOKEN_TTL_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
