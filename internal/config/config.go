package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Host           string
	Port           int
	AllowOrigins   []string
	LogLevel       string
	LogFormat      string // console | json
	LogFile        string
	MaxBodyKB      int
	CatalogPath    string
	MatchThreshold float64 // порог fuzzy-совпадения, шкала 0..100
	SuggestLimit   int
	DBDriver       string // sqlite3 | postgres
	DBDSN          string
}

// Load читает .env (если есть) и переменные окружения.
func Load() Config {
	_ = godotenv.Load() // .env необязателен

	port, _ := strconv.Atoi(getenv("PORT", "8082"))
	kb, _ := strconv.Atoi(getenv("MAX_BODY_KB", "512"))
	suggest, _ := strconv.Atoi(getenv("SUGGEST_LIMIT", "3"))
	threshold, err := strconv.ParseFloat(getenv("MATCH_THRESHOLD", "80"), 64)
	if err != nil || threshold < 0 || threshold > 100 {
		threshold = 80
	}
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	return Config{
		Host:           getenv("HOST", "127.0.0.1"),
		Port:           port,
		AllowOrigins:   origins,
		LogLevel:       getenv("LOG_LEVEL", "info"),
		LogFormat:      getenv("LOG_FORMAT", "console"),
		LogFile:        getenv("LOG_FILE", "logs/voiceorder-service.log"),
		MaxBodyKB:      kb,
		CatalogPath:    getenv("CATALOG_PATH", "data/menu.json"),
		MatchThreshold: threshold,
		SuggestLimit:   suggest,
		DBDriver:       getenv("DB_DRIVER", "sqlite3"),
		DBDSN:          getenv("DB_DSN", "data/orders.db"),
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
