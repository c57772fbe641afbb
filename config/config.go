package config

import (
	"os"
	"strconv"
	"time"

	"jsonviews/pkg/apiinfo"
)

const (
	defaultHTTPPort          = "8080"
	defaultAPITimeoutSeconds = 10
	defaultPostsLimit        = 5
	defaultPostUserID        = 1
	defaultSessionTTLMinutes = 60
	defaultLogLevel          = "info"
)

type Config struct {
	HTTP     HTTPConfig
	API      APIConfig
	Posts    PostsConfig
	Sessions SessionsConfig
	LogLevel string
}

type HTTPConfig struct {
	Port string
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type PostsConfig struct {
	Limit  int
	UserID int64
}

type SessionsConfig struct {
	TTL time.Duration
}

func LoadConfig() Config {
	return Config{
		HTTP: HTTPConfig{
			Port: getEnv("HTTP_PORT", defaultHTTPPort),
		},
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", apiinfo.DefaultBaseURL),
			Timeout: time.Duration(mustGetInt("API_TIMEOUT_SECONDS", defaultAPITimeoutSeconds)) * time.Second,
		},
		Posts: PostsConfig{
			Limit:  mustGetInt("POSTS_LIMIT", defaultPostsLimit),
			UserID: int64(mustGetInt("POST_USER_ID", defaultPostUserID)),
		},
		Sessions: SessionsConfig{
			TTL: time.Duration(mustGetInt("SESSION_TTL_MINUTES", defaultSessionTTLMinutes)) * time.Minute,
		},
		LogLevel: getEnv("LOG_LEVEL", defaultLogLevel),
	}
}

func getEnv(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}

// mustGetInt returns def when key is unset and panics on anything that is
// not a positive integer.
func mustGetInt(key string, def int) int {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	i, err := strconv.Atoi(val)
	if err != nil || i <= 0 {
		panic("invalid int for env var " + key + ": " + val)
	}
	return i
}
