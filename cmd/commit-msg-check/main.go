package main

import (
	"fmt"
	"os"

	app "github.com/magtools/commitcheck/internal/hooks/conventional"
)

func main() {
	err := app.Run(os.Stderr, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
