package main

import (
	"fmt"
	"os"

	"audioboard/cmd/audioboard/cmd"
	"audioboard/internal/config"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "configuration warning: %v\n", err)
		// Continue execution - system environment variables may still
		// carry everything needed.
	}

	cmd.Execute()
}
