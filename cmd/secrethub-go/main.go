// secrethub-go is a command line front end for the secrethub client. It reads,
// writes and resolves secrets through libsecrethub, or through the in-memory
// stand-in when started with --memory.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd(newApp()).Execute(); err != nil {
		if code, ok := exitCode(err); ok {
			os.Exit(code)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
