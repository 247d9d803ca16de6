package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StorageMongo    = "mongo"
	StoragePostgres = "postgres"
)

type Config struct {
	Name     string
	HTTPAddr string
	LogLevel string
	LogFile  string
	LokiAddr string

	JWTSecret string

	StorageDriver string
	Mongo         *Mongo
	DB            *DB

	// Telegram is nil when no bot is configured.
	Telegram *Telegram

	KafkaBrokers []string
	KafkaTopic   string

	SchedulerQueueSize int
}

type Mongo struct {
	URI        string
	Database   string
	Collection string
}

type DB struct {
	Host     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type Telegram struct {
	ApiToken string
	ChatID   int64
}

var (
	ErrEnvNotFound     = errors.New("err env not found")
	ErrEnvInvalid      = errors.New("err env invalid")
	ErrUnknownStorage  = errors.New("unknown storage driver")
	ErrTelegramPartial = errors.New("TELEGRAM_API_TOKEN and TELEGRAM_CHAT_ID must be set together")
)

func (a *App) loadConfig(confFileName string) error {
	var cfg Config
	var err error

	if err = godotenv.Load(confFileName); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	cfg.Name = cfg.setDefault("APP_NAME", "futuresbot")
	cfg.HTTPAddr = cfg.setDefault("HTTP_ADDR", ":8000")
	cfg.LogLevel = cfg.setDefault("LOG_LEVEL", "INFO")
	cfg.LogFile = os.Getenv("LOG_FILE")
	cfg.LokiAddr = os.Getenv("LOKI_ADDR")

	if cfg.JWTSecret, err = cfg.set("JWT_SECRET"); err != nil {
		return err
	}

	cfg.StorageDriver = strings.ToLower(cfg.setDefault("STORAGE_DRIVER", StorageMongo))

	switch cfg.StorageDriver {
	case StorageMongo:
		var m Mongo

		if m.URI, err = cfg.set("MONGODB_URI"); err != nil {
			return err
		}
		m.Database = cfg.setDefault("MONGO_DB", "binance_bot")
		m.Collection = cfg.setDefault("MONGO_COLLECTION", "orders")

		cfg.Mongo = &m
	case StoragePostgres:
		var db DB

		if db.Host, err = cfg.set("PG_HOST"); err != nil {
			return err
		}

		if db.User, err = cfg.set("PG_USER"); err != nil {
			return err
		}

		if db.Password, err = cfg.set("PG_PASSWORD"); err != nil {
			return err
		}

		if db.DBName, err = cfg.set("PG_DBNAME"); err != nil {
			return err
		}

		if db.SSLMode, err = cfg.set("PG_SSL_MODE"); err != nil {
			return err
		}

		cfg.DB = &db
	default:
		return fmt.Errorf("%w: %s", ErrUnknownStorage, cfg.StorageDriver)
	}

	if cfg.Telegram, err = cfg.telegram(); err != nil {
		return err
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaTopic = cfg.setDefault("KAFKA_TOPIC", "order-events")

	if cfg.SchedulerQueueSize, err = cfg.setInt("SCHEDULER_QUEUE_SIZE", 1024); err != nil {
		return err
	}

	a.Config = &cfg

	return nil
}

func (d *DB) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode)
}

func (c *Config) telegram() (*Telegram, error) {
	token, chat := os.Getenv("TELEGRAM_API_TOKEN"), os.Getenv("TELEGRAM_CHAT_ID")

	switch {
	case token == "" && chat == "":
		return nil, nil
	case token == "" || chat == "":
		return nil, ErrTelegramPartial
	}

	chatID, err := strconv.ParseInt(chat, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: TELEGRAM_CHAT_ID", ErrEnvInvalid)
	}

	return &Telegram{ApiToken: token, ChatID: chatID}, nil
}

func (c *Config) set(key string) (string, error) {
	if os.Getenv(key) == "" {
		return "", fmt.Errorf("%w: %s", ErrEnvNotFound, key)
	}

	return os.Getenv(key), nil
}

func (c *Config) setDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func (c *Config) setInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s", ErrEnvInvalid, key)
	}

	return n, nil
}
