package main

import (
	"fmt"
	"os"

	"github.com/talo100uraba/talo-admin/internal/app"
)

func main() {
	if err := app.Run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "talo-admin: %v\n", err)
		os.Exit(1)
	}
}
