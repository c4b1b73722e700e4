package infra

import (
	"log"

	"github.com/joho/godotenv"
)

// Initialize loads the optional .env file before anything reads the
// environment. Absence is fine; real env vars take over.
func Initialize() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using environment variables")
	}
}
