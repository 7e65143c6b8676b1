package config

import (
	"os"
	"strconv"
	"strings"
)

type Redis struct {
	Addr string
	DB   int
	Key  string
}

type Config struct {
	HTTPAddr       string
	LogLevel       string
	StoreBackend   string
	Redis          Redis
	RoomCodeLength int
	AllowedOrigins []string
	// AllowCredentials is ignored while AllowedOrigins holds "*".
	AllowCredentials bool
}

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getenvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func Load() Config {
	return Config{
		HTTPAddr:     getenv("HTTP_ADDR", ":8080"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		StoreBackend: getenv("STORE_BACKEND", BackendMemory),
		Redis: Redis{
			Addr: getenv("REDIS_ADDR", "localhost:6379"),
			DB:   getenvInt("REDIS_DB", 0),
			Key:  getenv("REDIS_KEY", "jungle:rooms"),
		},
		RoomCodeLength:   getenvInt("ROOM_CODE_LENGTH", 6),
		AllowedOrigins:   getenvList("CORS_ORIGINS", []string{"*"}),
		AllowCredentials: getenvBool("CORS_ALLOW_CREDENTIALS", false),
	}
}
