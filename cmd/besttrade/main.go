package main

import (
	"os"

	"github.com/rustyeddy/besttrade/cmd/besttrade/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
