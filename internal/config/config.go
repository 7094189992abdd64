package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type EscrowConfig struct {
	Env string `yaml:"env" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	EscrowDB     `yaml:"escrow_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	Escrow       `yaml:"escrow"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type EscrowDB struct {
	Dsn            string `yaml:"dsn" env:"ESCROW_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"json"`
	LogOutput string `yaml:"log_output" env-default:"stdout"`
}

type KafkaService struct {
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	Topic      string `yaml:"topic" env-default:"escrow-transition-events"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
	Mechanism  string `yaml:"mechanism"`
	TLSEnabled bool   `yaml:"tls_enabled"`
}

// Escrow holds the engine knobs that vary per deployment.
type Escrow struct {
	// VerificationWindow is how long after delivery confirmation the buyer
	// may still open a dispute before funds auto-release.
	VerificationWindow time.Duration `yaml:"verification_window" env-default:"72h"`
	// MaxEvidence caps attachment URLs per dispute.
	MaxEvidence int `yaml:"max_evidence" env-default:"5"`
	// SweepInterval is the period of the verification-expiry sweep.
	SweepInterval time.Duration `yaml:"sweep_interval" env-default:"30s"`
}

func MustLoad() *EscrowConfig {

	// Processing env config variable and file
	configPath := os.Getenv("ESCROW_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("ESCROW_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg EscrowConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
