package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fumr/tidalgo/internal/config"
	"github.com/fumr/tidalgo/internal/tui"
)

func main() {
	configFlag := flag.String("config", "", "Path to config file (.env format)")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
