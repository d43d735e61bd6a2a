package app

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/match-ingestion/internal/config"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

// OpenDB connects to Postgres with OpenTelemetry instrumentation and verifies the connection.
func OpenDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := postgresDSN(cfg.DBURL, cfg.ServiceName, cfg.DBDisablePreparedBinary)

	opts := []otelsql.Option{
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(traceQuery),
	}
	if name := databaseName(dsn); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	db, err := otelsqlx.Open("postgres", dsn, opts...)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(max(cfg.DBMaxOpenConns/4, 2))
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}

const maxTracedQueryLength = 512

// postgresDSN tags the connection with the service name and, when asked, turns off
// binary results for prepared statements so pgbouncer in transaction mode keeps working.
// Parameters already present in the URL win.
func postgresDSN(raw, applicationName string, disablePreparedBinaryResult bool) string {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	changed := false
	if disablePreparedBinaryResult && query.Get("disable_prepared_binary_result") == "" {
		query.Set("disable_prepared_binary_result", "yes")
		changed = true
	}
	if applicationName != "" && query.Get("application_name") == "" {
		query.Set("application_name", applicationName)
		changed = true
	}
	if !changed {
		return raw
	}
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// databaseName reads the database from either a postgres:// URL or a key=value DSN.
func databaseName(dsn string) string {
	dsn = strings.TrimSpace(dsn)
	if parsed, err := url.Parse(dsn); err == nil && parsed.Scheme != "" {
		return strings.TrimPrefix(parsed.Path, "/")
	}
	for _, field := range strings.Fields(dsn) {
		if value, ok := strings.CutPrefix(field, "dbname="); ok {
			return strings.Trim(value, `"'`)
		}
	}
	return ""
}

// traceQuery collapses whitespace so span names stay readable, and caps the length.
func traceQuery(query string) string {
	compact := strings.Join(strings.Fields(query), " ")
	if len(compact) > maxTracedQueryLength {
		return compact[:maxTracedQueryLength] + "..."
	}
	return compact
}
