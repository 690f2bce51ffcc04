package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/clarionhq/clarion/internal/cli"
)

func main() {
	// Optional .env for local development; absence is not an error
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
