// Package config предоставляет структуры и функцию для загрузки конфига.
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Секрет подписи по умолчанию. Годится только для локальной разработки:
// в любом другом окружении пустой секрет валит процесс на старте.
const devSecretKey = "dev-secret-key"

// Config общая структура для хранения настроек.
type Config struct {
	Env                     string `yaml:"env" env-default:"local"`
	StorageConnectionString string `yaml:"storage_connection_string" env:"DATABASE_URL"`
	MigrationsPath          string `yaml:"migrations_path" env-default:"./migrations"`
	HTTPServer              `yaml:"http_server"`
	JWTToken                `yaml:"jwttoken"`
	ObjectStore             `yaml:"object_store"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// JWTToken структура для работы с jwt-токеном.
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"JWT_SECRET"`
	TokenTTL     time.Duration `yaml:"token_ttl" env:"JWT_EXPIRY" env-default:"3600s"`
}

// ObjectStore структура для настройки объектного хранилища изображений.
// Пустой endpoint означает, что загрузка изображений выключена.
type ObjectStore struct {
	Endpoint  string `yaml:"endpoint" env:"OBJECT_STORE_ENDPOINT"`
	AccessKey string `yaml:"access_key" env:"OBJECT_STORE_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"OBJECT_STORE_SECRET_KEY"`
	Bucket    string `yaml:"bucket" env:"OBJECT_STORE_BUCKET"`
	PublicURL string `yaml:"public_url" env:"OBJECT_STORE_PUBLIC_URL"`
	UseSSL    bool   `yaml:"use_ssl" env:"OBJECT_STORE_USE_SSL"`
}

// MustLoad загружает конфиг по пути из CONFIG_PATH и завершает процесс
// при любой проблеме. Отсутствие секрета подписи — тоже проблема: вне
// локального окружения сервис обязан упасть сразу, а не работать
// с общеизвестным ключом.
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

	if cfg.JWTSecretKey == "" {
		if cfg.Env != "local" {
			log.Fatalf("jwt secret key is not set, refusing to start in env %q", cfg.Env)
		}
		log.Println("WARNING: using built-in dev jwt secret, do not deploy this")
		cfg.JWTSecretKey = devSecretKey
	}

	return &cfg
}
