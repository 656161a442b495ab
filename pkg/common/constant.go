package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyBoxDBType string = "BOX_DB_TYPE"
	EnvKeyBoxDbPath string = "BOX_DB_PATH"

	EnvKeyBoxHttpHostPort string = "BOX_HTTP_HOST_PORT"

	EnvKeyBoxAdminSecret string = "BOX_ADMIN_SECRET"

	EnvKeyBoxDefaultRate  string = "BOX_DEFAULT_RATE"
	EnvKeyBoxDefaultBurst string = "BOX_DEFAULT_BURST"

	LoggerNameTelemetryCore string = "telemetry_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerFieldCategory     string = "category"

	LoggerCategoryMeasurement string = "measurement"
	LoggerCategoryDirectory   string = "directory"
	LoggerCategoryGuard       string = "guard"
	LoggerCategorySeed        string = "seed"
)
