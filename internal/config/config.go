package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	ITAD       ITADConfig
	IMF        IMFConfig
	CORS       CORSConfig
	GameTitles []string
	// IndicatorCatalog maps indicator codes to human descriptions. It is the
	// injected catalog behind /indicators_list and the metadata.indicators
	// mapping; unknown codes fall back to the code itself.
	IndicatorCatalog map[string]string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// ITADConfig holds IsThereAnyDeal API configuration
type ITADConfig struct {
	BaseURL        string
	APIKey         string
	HistoryTimeout time.Duration
	SearchTimeout  time.Duration
}

// IMFConfig holds IMF data service configuration
type IMFConfig struct {
	BaseURL  string
	Database string
	Timeout  time.Duration
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8000"),
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
		},
		ITAD: ITADConfig{
			BaseURL:        getEnv("ITAD_BASE_URL", "https://api.isthereanydeal.com"),
			APIKey:         getEnv("ITAD_API_KEY", ""),
			HistoryTimeout: time.Duration(getEnvInt("ITAD_HISTORY_TIMEOUT_SECONDS", 15)) * time.Second,
			SearchTimeout:  time.Duration(getEnvInt("ITAD_SEARCH_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		IMF: IMFConfig{
			BaseURL:  getEnv("IMF_BASE_URL", "http://dataservices.imf.org/REST/SDMX_JSON.svc"),
			Database: getEnv("IMF_DATABASE", "WEO"),
			Timeout:  time.Duration(getEnvInt("IMF_TIMEOUT_SECONDS", 20)) * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		GameTitles: []string{
			"Elden Ring",
			"Half Life 2",
			"Baldur's Gate 3",
			"The witcher 3",
			"Fifa 22",
		},
		IndicatorCatalog: map[string]string{
			"PCPIPCH":   "taxa de inflação, média de preços consumidores (percentual anual)",
			"NGDPDPC":   "PIB per capita, preços atuais (dólares americanos)",
			"PPPPC":     "PIB per capita, PPP (dólares internacionais atuais)",
			"NGDP_RPCH": "PIB, preços constantes (percentual anual)",
			"LUR":       "taxa de desemprego (percentual do total da força de trabalho)",
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
