package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries every environment-derived setting the batch needs. Clients
// receive the relevant fields at construction instead of reading the
// environment themselves.
type Config struct {
	OMSEndpoint   string
	OMSAPIKey     string
	StockEndpoint string
	StockAPIKey   string

	BatchDir  string
	ResultCSV string

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	KafkaBrokers    []string
	KafkaAuditTopic string

	MetricsAddr string
}

func loadEnv() {
	wd, err := os.Getwd()
	if err != nil {
		log.Printf("Error getting working directory: %v", err)
		return
	}

	possiblePaths := []string{
		filepath.Join(wd, ".env"),
		filepath.Join(wd, "..", ".env"),
		filepath.Join(wd, "..", "..", ".env"),
	}

	for _, envPath := range possiblePaths {
		if err := godotenv.Load(envPath); err == nil {
			log.Printf("Loaded environment variables from %s", envPath)
			return
		}
	}
}

func Load() (*Config, error) {
	loadEnv()

	cfg := &Config{
		OMSEndpoint:     os.Getenv("OMS_ENDPOINT"),
		OMSAPIKey:       os.Getenv("OMS_API_KEY"),
		StockEndpoint:   os.Getenv("IS_ENDPOINT"),
		StockAPIKey:     os.Getenv("IS_API_KEY"),
		BatchDir:        getEnvDefault("BATCH_DIR", "./batch"),
		ResultCSV:       getEnvDefault("RESULT_CSV", "reorder.csv"),
		DBHost:          os.Getenv("DB_HOST"),
		DBUser:          os.Getenv("POSTGRES_USER"),
		DBPassword:      os.Getenv("POSTGRES_PASSWORD"),
		DBName:          os.Getenv("POSTGRES_DB"),
		KafkaAuditTopic: getEnvDefault("KAFKA_AUDIT_TOPIC", "reorder_audit"),
		MetricsAddr:     os.Getenv("METRICS_ADDR"),
	}

	if port := os.Getenv("DB_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid DB_PORT %q: %w", port, err)
		}
		cfg.DBPort = p
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	if cfg.OMSEndpoint == "" {
		return nil, fmt.Errorf("OMS_ENDPOINT is required")
	}
	if cfg.StockEndpoint == "" {
		return nil, fmt.Errorf("IS_ENDPOINT is required")
	}

	return cfg, nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
