// Package config предоставляет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env             string `yaml:"env" env-default:"local"`
	MongoConnection `yaml:"mongo_connection"`
	RedisConnection `yaml:"redis_connection"`
	HTTPServer      `yaml:"http_server"`
	Session         `yaml:"session"`
	CORS            `yaml:"cors"`
}

// MongoConnection структура для настройки подключения к хранилищу документов
type MongoConnection struct {
	URI               string        `yaml:"uri" env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	Database          string        `yaml:"database" env-default:"recipes"`
	UsersCollection   string        `yaml:"users_collection" env-default:"users"`
	RecipesCollection string        `yaml:"recipes_collection" env-default:"recipes"`
	TimeoutMongo      time.Duration `yaml:"timeout" env-default:"5s"`
}

// RedisConnection структура для настройки подключения к redis
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password     string        `yaml:"password"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries" env-default:"3"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env-default:"5s"`
	TimeoutRedis time.Duration `yaml:"timeoutredis" env-default:"5s"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"30s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Session структура для настройки серверных сессий:
// секрет для подписи токена и время жизни записи сессии.
type Session struct {
	SecretKey  string        `yaml:"secret_key" env:"SESSION_SECRET" env-required:"true"`
	SessionTTL time.Duration `yaml:"session_ttl" env-default:"24h"`
}

// CORS структура для настройки cross-origin политики
type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" env-default:"*"`
}

// MustLoad загружает конфиг по пути из CONFIG_PATH и завершает процесс при ошибке.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}
