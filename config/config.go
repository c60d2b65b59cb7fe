package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Load reads a .env file from the working directory if one exists.
// A missing file is fine; packaged builds configure the environment
// directly and .env is a development convenience.
func Load() {
	_ = godotenv.Load()
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

// Debug reports whether this run should behave like a development build.
func Debug() bool {
	return os.Getenv("STUDYPILOT_DEBUG") == "1"
}
