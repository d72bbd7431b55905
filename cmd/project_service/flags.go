package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/project_ingest/internal/config"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

const envPrefix = "PROJECT_INGEST_"

var version = "dev"

type runFunc func(ctx context.Context, cfg *config.Config) error

func cmd(run runFunc) *cli.Command {
	return &cli.Command{
		Name:    "project_service",
		Usage:   "Project archive ingestion service",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, config.Load(cmd))
		},
	}
}

// sources resolves a flag from the environment first and the YAML config file second.
func sources(env, key string, config *string) cli.ValueSourceChain {
	return cli.NewValueSourceChain(
		cli.EnvVar(envPrefix+env),
		yaml.YAML(key, altsrc.NewStringPtrSourcer(config)),
	)
}

func flags() []cli.Flag {
	var config string

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Sources:     cli.EnvVars(envPrefix + "CONFIG"),
			Destination: &config,
		},
		&cli.StringFlag{
			Name:      "storage-root",
			Aliases:   []string{"s"},
			Usage:     "Set directory uploaded archives are staged and extracted under",
			Value:     "uploads",
			Sources:   sources("STORAGE_ROOT", "app.storage_root", &config),
			Validator: validateDirectory,
		},
		&cli.StringFlag{
			Name:    "reclaim-schedule",
			Usage:   "Set cron schedule for staging reclamation, empty to disable",
			Value:   "@daily",
			Sources: sources("RECLAIM_SCHEDULE", "app.reclaim_schedule", &config),
		},
		&cli.DurationFlag{
			Name:    "retention",
			Usage:   "Set how long staged uploads are kept, 0 keeps them until the project is deleted",
			Value:   0,
			Sources: sources("RETENTION", "app.retention", &config),
		},
		&cli.Int64Flag{
			Name:      "max-upload-size",
			Usage:     "Set maximum upload request size in bytes",
			Value:     100 << 20,
			Sources:   sources("MAX_UPLOAD_SIZE", "app.max_upload_size", &config),
			Validator: validatePositive,
		},
		&cli.DurationFlag{
			Name:    "token-ttl",
			Usage:   "Set bearer token lifetime",
			Value:   24 * time.Hour,
			Sources: sources("TOKEN_TTL", "auth.token_ttl", &config),
		},
		&cli.StringFlag{
			Name:    "token-purge-schedule",
			Usage:   "Set cron schedule for deleting expired tokens, empty to disable",
			Value:   "@hourly",
			Sources: sources("TOKEN_PURGE_SCHEDULE", "auth.purge_schedule", &config),
		},
		&cli.StringFlag{
			Name:    "pg-host",
			Usage:   "Set PostgreSQL host",
			Value:   "localhost",
			Sources: sources("PG_HOST", "postgresql.host", &config),
		},
		&cli.StringFlag{
			Name:    "pg-port",
			Usage:   "Set PostgreSQL port",
			Value:   "5432",
			Sources: sources("PG_PORT", "postgresql.port", &config),
		},
		&cli.StringFlag{
			Name:     "pg-username",
			Usage:    "Set PostgreSQL username",
			Sources:  sources("PG_USERNAME", "postgresql.username", &config),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-password",
			Usage:    "Set PostgreSQL password",
			Sources:  sources("PG_PASSWORD", "postgresql.password", &config),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "pg-dbname",
			Usage:   "Set PostgreSQL database name",
			Value:   "project_ingest",
			Sources: sources("PG_DBNAME", "postgresql.dbname", &config),
		},
		&cli.StringFlag{
			Name:    "pg-sslmode",
			Usage:   "Set PostgreSQL sslmode",
			Value:   "disable",
			Sources: sources("PG_SSLMODE", "postgresql.sslmode", &config),
		},
		&cli.Int32Flag{
			Name:    "pg-max-conns",
			Usage:   "Set PostgreSQL pool size, 0 uses the driver default",
			Sources: sources("PG_MAX_CONNS", "postgresql.max_conns", &config),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: sources("HTTP_HOST", "http.host", &config),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: sources("HTTP_PORT", "http.port", &config),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: sources("HTTP_IDLE_TIMEOUT", "http.idle_timeout", &config),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   1 * time.Minute,
			Sources: sources("HTTP_READ_TIMEOUT", "http.read_timeout", &config),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   1 * time.Minute,
			Sources: sources("HTTP_WRITE_TIMEOUT", "http.write_timeout", &config),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Set log level: debug, info, warn or error",
			Value:   "info",
			Sources: sources("LOG_LEVEL", "log.level", &config),
		},
	}
}

func validateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", dir)
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	return nil
}

func validatePositive(n int64) error {
	if n <= 0 {
		return fmt.Errorf("must be positive, got %d", n)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
