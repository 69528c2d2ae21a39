package app

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"megaCalc/internal/api/http"
	"megaCalc/internal/infrastructure/click"
	"megaCalc/internal/infrastructure/kafka"
	"megaCalc/internal/infrastructure/mongo"
	"megaCalc/internal/infrastructure/pg"
	"megaCalc/internal/infrastructure/redis"
)

const AppName = "CALCULATOR"

// GrpcConfig — настройки gRPC-сервера. Переменные: CALCULATOR_GRPC_HOST, CALCULATOR_GRPC_PORT.
type GrpcConfig struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port string `envconfig:"PORT" default:"9090"`
}

// EngineConfig — настройки движка. Ширина дисплея в цифрах: CALCULATOR_ENGINE_WIDTH.
type EngineConfig struct {
	Width int `envconfig:"WIDTH" default:"9"`
}

// Config — конфиг приложения. Заполняется через envconfig с префиксом CALCULATOR.
type Config struct {
	Server     http.ServerConfig `envconfig:"SERVER"`
	Grpc       GrpcConfig        `envconfig:"GRPC"`
	Engine     EngineConfig      `envconfig:"ENGINE"`
	DB         pg.Config         `envconfig:"DB"`
	Redis      redis.Config      `envconfig:"REDIS"`
	Mongo      mongo.Config      `envconfig:"MONGO"`
	Kafka      kafka.Config      `envconfig:"KAFKA"`
	ClickHouse click.Config      `envconfig:"CLICKHOUSE"`
	LogLevel   string            `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
func LoadCfg() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: .env не найден, используем окружение: %v", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
