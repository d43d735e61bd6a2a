package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/match-ingestion/internal/platform/logging"
)

// Config stores runtime configuration for the ingestion binaries.
type Config struct {
	AppEnv                     string
	ServiceName                string
	ServiceVersion             string
	DBURL                      string
	DBDisablePreparedBinary    bool
	DBMaxOpenConns             int
	RiotAPIKey                 string
	RiotBaseURL                string
	RiotTimeout                time.Duration
	RiotRetryBackoff           time.Duration
	ImportPageSize             int
	ImportWorkers              int
	ImportTargetTotal          int
	ImportRankedQueues         []int
	BulkImportInterval         time.Duration
	BulkImportCount            int
	BulkImportOffset           int
	RankBackfillWindow         time.Duration
	RankCheckpointTTL          time.Duration
	RollupCacheEnabled         bool
	RollupCacheTTL             time.Duration
	UptraceEnabled             bool
	UptraceDSN                 string
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
	LogLevel                   logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	riotAPIKey := strings.TrimSpace(getEnv("RIOT_API_KEY", ""))
	if riotAPIKey == "" && appEnv != EnvDev {
		return Config{}, fmt.Errorf("RIOT_API_KEY is required when APP_ENV=%s", appEnv)
	}
	riotTimeout, err := time.ParseDuration(getEnv("RIOT_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse RIOT_TIMEOUT: %w", err)
	}
	if riotTimeout <= 0 {
		return Config{}, fmt.Errorf("RIOT_TIMEOUT must be > 0")
	}
	riotRetryBackoff, err := time.ParseDuration(getEnv("RIOT_RETRY_BACKOFF", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse RIOT_RETRY_BACKOFF: %w", err)
	}
	if riotRetryBackoff < 0 {
		return Config{}, fmt.Errorf("RIOT_RETRY_BACKOFF must be >= 0")
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}
	dbMaxOpenConns, err := getEnvAsInt("DB_MAX_OPEN_CONNS", 60)
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_MAX_OPEN_CONNS: %w", err)
	}
	if dbMaxOpenConns <= 0 {
		return Config{}, fmt.Errorf("DB_MAX_OPEN_CONNS must be > 0")
	}

	importPageSize, err := getEnvAsInt("IMPORT_PAGE_SIZE", 100)
	if err != nil {
		return Config{}, fmt.Errorf("parse IMPORT_PAGE_SIZE: %w", err)
	}
	if importPageSize <= 0 || importPageSize > 100 {
		return Config{}, fmt.Errorf("IMPORT_PAGE_SIZE must be between 1 and 100")
	}
	importWorkers, err := getEnvAsInt("IMPORT_WORKERS", 50)
	if err != nil {
		return Config{}, fmt.Errorf("parse IMPORT_WORKERS: %w", err)
	}
	if importWorkers <= 0 {
		return Config{}, fmt.Errorf("IMPORT_WORKERS must be > 0")
	}
	importTargetTotal, err := getEnvAsInt("IMPORT_TARGET_TOTAL", 100)
	if err != nil {
		return Config{}, fmt.Errorf("parse IMPORT_TARGET_TOTAL: %w", err)
	}
	if importTargetTotal <= 0 {
		return Config{}, fmt.Errorf("IMPORT_TARGET_TOTAL must be > 0")
	}
	importRankedQueues, err := parseIntList(getEnv("IMPORT_RANKED_QUEUES", "420,440,470"))
	if err != nil {
		return Config{}, fmt.Errorf("parse IMPORT_RANKED_QUEUES: %w", err)
	}
	if len(importRankedQueues) == 0 {
		return Config{}, fmt.Errorf("IMPORT_RANKED_QUEUES cannot be empty")
	}

	bulkImportInterval, err := parsePositiveDuration("BULK_IMPORT_INTERVAL", "24h")
	if err != nil {
		return Config{}, err
	}
	bulkImportCount, err := getEnvAsInt("BULK_IMPORT_COUNT", 200)
	if err != nil {
		return Config{}, fmt.Errorf("parse BULK_IMPORT_COUNT: %w", err)
	}
	if bulkImportCount <= 0 {
		return Config{}, fmt.Errorf("BULK_IMPORT_COUNT must be > 0")
	}
	bulkImportOffset, err := getEnvAsInt("BULK_IMPORT_OFFSET", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse BULK_IMPORT_OFFSET: %w", err)
	}
	if bulkImportOffset < 0 {
		return Config{}, fmt.Errorf("BULK_IMPORT_OFFSET must be >= 0")
	}
	rankBackfillWindow, err := parsePositiveDuration("RANK_BACKFILL_WINDOW", "24h")
	if err != nil {
		return Config{}, err
	}
	rankCheckpointTTL, err := parsePositiveDuration("RANK_CHECKPOINT_TTL", "24h")
	if err != nil {
		return Config{}, err
	}

	rollupCacheEnabled, err := strconv.ParseBool(getEnv("ROLLUP_CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ROLLUP_CACHE_ENABLED: %w", err)
	}
	rollupCacheTTL, err := parsePositiveDuration("ROLLUP_CACHE_TTL", "60s")
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := parsePositiveDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("APP_SERVICE_NAME", "match-ingestion"),
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		DBURL:                      strings.TrimSpace(getEnv("DB_URL", "")),
		DBDisablePreparedBinary:    dbDisablePreparedBinary,
		DBMaxOpenConns:             dbMaxOpenConns,
		RiotAPIKey:                 riotAPIKey,
		RiotBaseURL:                strings.TrimSpace(getEnv("RIOT_BASE_URL", "")),
		RiotTimeout:                riotTimeout,
		RiotRetryBackoff:           riotRetryBackoff,
		ImportPageSize:             importPageSize,
		ImportWorkers:              importWorkers,
		ImportTargetTotal:          importTargetTotal,
		ImportRankedQueues:         importRankedQueues,
		BulkImportInterval:         bulkImportInterval,
		BulkImportCount:            bulkImportCount,
		BulkImportOffset:           bulkImportOffset,
		RankBackfillWindow:         rankBackfillWindow,
		RankCheckpointTTL:          rankCheckpointTTL,
		RollupCacheEnabled:         rollupCacheEnabled,
		RollupCacheTTL:             rollupCacheTTL,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
		LogLevel:                   parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func parsePositiveDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return out, nil
}

func parseIntList(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		value, err := strconv.Atoi(item)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", item, err)
		}
		if value <= 0 {
			return nil, fmt.Errorf("value must be > 0, got %d", value)
		}
		out = append(out, value)
	}
	return out, nil
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
