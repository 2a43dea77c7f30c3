package config

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type TMDB struct {
	APIKey   string
	BaseURL  string
	Language string
}

type Gemini struct {
	APIKey  string
	BaseURL string
	Model   string
}

type Config struct {
	HTTP     HTTPServer
	Redis    RedisCache
	Postgres Postgres
	TMDB     TMDB
	Gemini   Gemini
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := &Config{
		HTTP:     *newHTTP(),
		Redis:    *newRedis(),
		Postgres: *newPostgres(),
		TMDB:     *newTMDB(),
		Gemini:   *newGemini(),
	}

	return cfg
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
	}
}

// Empty REDIS_HOST keeps session state in process memory.
func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", ""),
		Password: getenv("REDIS_PASSWORD", ""),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "indicai"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newTMDB() *TMDB {
	return &TMDB{
		APIKey:   getenv("TMDB_API_KEY", ""),
		BaseURL:  getenv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		Language: getenv("TMDB_LANGUAGE", "pt-BR"),
	}
}

func newGemini() *Gemini {
	return &Gemini{
		APIKey:  getenv("GEMINI_API_KEY", ""),
		BaseURL: getenv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		Model:   getenv("GEMINI_MODEL", "gemini-2.0-flash"),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %q\n", logtag, key, defaultValue)
		return defaultValue
	}
	return val
}
