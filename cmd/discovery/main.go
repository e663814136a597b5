package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/justthetip/yoto-discovery/cmd/discovery/commands"
)

func main() {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
