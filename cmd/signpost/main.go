package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/signpost/cmd/signpost/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
