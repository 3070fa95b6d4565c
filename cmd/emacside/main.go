package main

import (
	"fmt"
	"os"

	"github.com/kobzarvs/emacside/internal/app"
)

func main() {
	if err := app.New(os.Args[1:]).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "emacside: error:", err)
		os.Exit(1)
	}
}
