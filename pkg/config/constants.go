package config

// EnvPrefix is applied by envconfig when resolving configuration.
const EnvPrefix = "avtomir"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "AVTOMIR_DB_DSN"
	EnvDBHost = "AVTOMIR_DB_HOST"
	EnvDBUser = "AVTOMIR_DB_USER"
	EnvDBName = "AVTOMIR_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
