package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Load pulls a .env file into the process environment if one exists. The
// relay runs fine on defaults, so a missing file is not fatal.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
		return
	}
	log.Println("loaded environment from .env")
}

// Port returns the listen port, default 8080.
func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}

// WebDir returns the static client directory, default ./web. The directory
// is optional; the relay serves websockets either way.
func WebDir() string {
	if d := os.Getenv("WEB_DIR"); d != "" {
		return d
	}
	return "./web"
}
