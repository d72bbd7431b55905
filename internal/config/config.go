package config

import (
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	Auth
	PostgreSQL
	HTTP
	Log
}

type App struct {
	StorageRoot     string
	ReclaimSchedule string
	Retention       time.Duration
	MaxUploadSize   int64
}

type Auth struct {
	TokenTTL      time.Duration
	PurgeSchedule string
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type Log struct {
	Level slog.Level
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			StorageRoot:     cmd.String("storage-root"),
			ReclaimSchedule: cmd.String("reclaim-schedule"),
			Retention:       cmd.Duration("retention"),
			MaxUploadSize:   cmd.Int64("max-upload-size"),
		},
		Auth: Auth{
			TokenTTL:      cmd.Duration("token-ttl"),
			PurgeSchedule: cmd.String("token-purge-schedule"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
			SSLMode:  cmd.String("pg-sslmode"),
			MaxConns: cmd.Int32("pg-max-conns"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
		Log: Log{
			Level: ParseLevel(cmd.String("log-level")),
		},
	}
}

// ParseLevel maps a level name such as "debug" or "WARN" to a slog.Level.
// Unknown names fall back to info.
func ParseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}

	return level
}
