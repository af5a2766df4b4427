package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string      `yaml:"env" env:"ENV" env-default:"local"`
	AdminToken  string      `yaml:"admin_token" env:"ADMIN_TOKEN" env-required:"true"`
	HTTPServer  HTTPServer  `yaml:"http_server"`
	DB          DB          `yaml:"db"`
	Cache       Cache       `yaml:"cache"`
	FileStorage FileStorage `yaml:"file_storage"`
	RateLimits  RateLimits  `yaml:"rate_limits"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type DB struct {
	Addr     string `yaml:"addr" env:"DB_ADDR" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-required:"true"`
	Password string `yaml:"password" env:"DB_PASSWORD" env-required:"true"`
	DB       string `yaml:"db" env:"DB_NAME" env-required:"true"`
}

type Cache struct {
	Addr         string        `yaml:"addr" env:"CACHE_ADDR" env-default:"localhost:6379"`
	Password     string        `yaml:"password" env:"CACHE_PASSWORD" env-default:""`
	DB           int           `yaml:"db" env:"CACHE_DB" env-default:"0"`
	SessionTTL   time.Duration `yaml:"session_ttl" env:"CACHE_SESSION_TTL" env-default:"24h"`
	DocumentsTTL time.Duration `yaml:"documents_ttl" env:"CACHE_DOCUMENTS_TTL" env-default:"10m"`
}

type FileStorage struct {
	Driver string `yaml:"driver" env:"FILE_STORAGE_DRIVER" env-default:"local"`
	Path   string `yaml:"path" env:"FILE_STORAGE_PATH" env-default:"./storage"`
	S3     S3     `yaml:"s3"`
}

type S3 struct {
	Endpoint  string `yaml:"endpoint" env:"S3_ENDPOINT" env-default:""`
	AccessKey string `yaml:"access_key" env:"S3_ACCESS_KEY" env-default:""`
	SecretKey string `yaml:"secret_key" env:"S3_SECRET_KEY" env-default:""`
	Bucket    string `yaml:"bucket" env:"S3_BUCKET" env-default:""`
	UseSSL    bool   `yaml:"use_ssl" env:"S3_USE_SSL" env-default:"false"`
}

type RateLimits struct {
	AnonLimit     int64         `yaml:"anon_limit" env:"RATE_ANON_LIMIT" env-default:"200"`
	AnonWindow    time.Duration `yaml:"anon_window" env:"RATE_ANON_WINDOW" env-default:"1h"`
	ReviewsLimit  int64         `yaml:"reviews_limit" env:"RATE_REVIEWS_LIMIT" env-default:"20"`
	ReviewsWindow time.Duration `yaml:"reviews_window" env:"RATE_REVIEWS_WINDOW" env-default:"1h"`
	OrdersLimit   int64         `yaml:"orders_limit" env:"RATE_ORDERS_LIMIT" env-default:"30"`
	OrdersWindow  time.Duration `yaml:"orders_window" env:"RATE_ORDERS_WINDOW" env-default:"1h"`
}

func MustLoad() *Config {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			log.Fatalf("config file does not exist: %s", path)
		}

		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			log.Fatalf("cannot read config: %s", err)
		}

		return &cfg
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config from env: %s", err)
	}

	return &cfg
}
