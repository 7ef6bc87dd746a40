package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type ModerationConfig struct {
	Env                 string `yaml:"env"`
	HTTPServer          `yaml:"http_server"`
	ModerationDB        `yaml:"moderation_db"`
	LogConfig           `yaml:"log_config"`
	SSOService          `yaml:"sso-service"`
	NotificationService `yaml:"notification-service"`
	KafkaService        `yaml:"kafka-service"`
	Moderation          `yaml:"moderation"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type ModerationDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type SSOService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type NotificationService struct {
	Host      string `yaml:"host"`
	Port      string `yaml:"port"`
	FromEmail string `yaml:"from_email"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic"`
}

type Moderation struct {
	DefaultWarningThreshold int `yaml:"default_warning_threshold" env-default:"3"`
}

func MustLoad() *ModerationConfig {

	// Processing env config variable and file
	configPath := os.Getenv("MODERATION_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("MODERATION_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg ModerationConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
