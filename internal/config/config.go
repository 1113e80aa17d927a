package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is built once in main and passed explicitly to constructors.
// Nothing reads the environment after startup.
type Config struct {
	HTTPAddr    string
	DatabaseURL string

	CORSAllowedOrigins   []string
	CORSAllowCredentials bool

	JWTSecret   string
	JWTIssuer   string
	JWTAudience string

	MaxPageSize int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:             getenv("HTTP_ADDR", ":8080"),
		DatabaseURL:          mustGetenv("DATABASE_URL"),
		CORSAllowCredentials: getenv("CORS_ALLOW_CREDENTIALS", "false") == "true",
		JWTSecret:            mustGetenv("JWT_SECRET"),
		JWTIssuer:            getenv("JWT_ISSUER", "tienda-api"),
		JWTAudience:          getenv("JWT_AUDIENCE", "tienda-web"),
		MaxPageSize:          getenvInt("MAX_PAGE_SIZE", 100),
	}

	origins := strings.Split(getenv("CORS_ALLOWED_ORIGINS", ""), ",")
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	return cfg, nil
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func mustGetenv(key string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		panic("missing env: " + key)
	}
	return v
}
