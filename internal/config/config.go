package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Config is the full set of knobs the daemon needs at startup. Every
// field except DB.Migrations (a fixed path relative to the working
// directory) is sourced from the environment (optionally via a .env
// file), never from a config file on disk.
type Config struct {
	Env    string
	DB     DB
	Notion Notion
	Server Server
	Sync   Sync
	Logger Logger
}

type DB struct {
	Path       string `env:"DATABASE_URL"`
	Migrations string
}

type Notion struct {
	Token       string `env:"NOTION_TOKEN"`
	CoursesDBID string `env:"NOTION_COURSES_DB_ID"`
	TodosDBID   string `env:"NOTION_TODOS_DB_ID"`
}

type Server struct {
	Addr string `env:"RUN_ADDRESS"`
}

type Sync struct {
	IntervalSecs int `env:"SYNC_INTERVAL_SECS"`
}

type Logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// NewConfig loads configuration from .env (if present) and the process
// environment, applying the same defaults the daemon has always shipped
// with so it runs against a local file store out of the box.
func NewConfig() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("no .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("database_url", "file:coursesync.db")
	viper.SetDefault("run_address", "127.0.0.1:3000")
	viper.SetDefault("sync_interval_secs", 300)
	viper.SetDefault("app_env", EnvLocal)
	viper.SetDefault("log_level", "info")

	return &Config{
		Env: viper.GetString("app_env"),
		DB: DB{
			Path:       viper.GetString("database_url"),
			Migrations: "internal/storage/sqlite/migrations",
		},
		Notion: Notion{
			Token:       viper.GetString("notion_token"),
			CoursesDBID: viper.GetString("notion_courses_db_id"),
			TodosDBID:   viper.GetString("notion_todos_db_id"),
		},
		Server: Server{
			Addr: viper.GetString("run_address"),
		},
		Sync: Sync{
			IntervalSecs: viper.GetInt("sync_interval_secs"),
		},
		Logger: Logger{
			LogLevel: viper.GetString("log_level"),
		},
	}
}

// HasNotionCredentials reports whether enough is configured to talk to
// the real remote, as opposed to falling back to a no-op adapter.
func (c *Config) HasNotionCredentials() bool {
	return c.Notion.Token != "" && c.Notion.CoursesDBID != "" && c.Notion.TodosDBID != ""
}
