package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/bankist-dev/bankist/internal/commands"
)

func main() {
	// A .env file is optional; environment variables override config values.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
