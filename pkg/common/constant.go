package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyLogDir string = "ALERTS_LOG_DIR"

	EnvKeyStoreType   string = "ALERTS_STORE_TYPE"
	EnvKeyDbPath      string = "ALERTS_DB_PATH"
	EnvKeyTableConfig string = "ALERTS_TABLE_CONFIG"

	EnvKeySupabaseURL string = "SUPABASE_URL"
	EnvKeySupabaseKey string = "SUPABASE_KEY"

	EnvKeyXylexAPIKey      string = "XYLEX_API_KEY"
	EnvKeyXylexAPIEndpoint string = "XYLEX_API_ENDPOINT"

	EnvKeyHttpHostPort string = "ALERTS_HTTP_HOST_PORT"
	EnvKeyGrpcHostPort string = "ALERTS_GRPC_HOST_PORT"

	EnvKeyDefaultRate  string = "ALERTS_DEFAULT_RATE"
	EnvKeyDefaultBurst string = "ALERTS_DEFAULT_BURST"

	EnvKeySchedule         string = "ALERTS_SCHEDULE"
	EnvKeyPassTimeout      string = "ALERTS_PASS_TIMEOUT"
	EnvKeyTolerance        string = "ALERTS_TOLERANCE"
	EnvKeyQuoteConcurrency string = "ALERTS_QUOTE_CONCURRENCY"
	EnvKeyQuoteRate        string = "ALERTS_QUOTE_RATE"
	EnvKeyReapPolicy       string = "ALERTS_REAP_POLICY"

	EnvKeyRedisAddr    string = "ALERTS_REDIS_ADDR"
	EnvKeyRedisChannel string = "ALERTS_REDIS_CHANNEL"

	LoggerNameAlertsCore    string = "alerts_core"
	LoggerNameStore         string = "alert_store"
	LoggerNamePriceFeed     string = "price_feed"
	LoggerNameNotifier      string = "notifier"
	LoggerNameScheduler     string = "scheduler"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameGrpcServer    string = "grpc_server"

	LoggerFieldCategory    string = "category"
	LoggerCategoryPass     string = "pass"
	LoggerCategoryQuote    string = "quote"
	LoggerCategoryReap     string = "reap"
	LoggerCategoryManage   string = "manage"
	LoggerCategoryNotify   string = "notify"
	LoggerCategoryStore    string = "store"
	LoggerCategorySchedule string = "schedule"
)
