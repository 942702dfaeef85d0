package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"toyrobot/internal/config"
	"toyrobot/internal/console"
	"toyrobot/internal/interpreter"
	"toyrobot/internal/wsserver"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML configuration file")
	width := flag.Int("width", 0, "table width (overrides config)")
	height := flag.Int("height", 0, "table height (overrides config)")
	serve := flag.Bool("serve", false, "serve websocket sessions instead of reading stdin")
	listen := flag.String("listen", "", "listen address for -serve (overrides config)")
	grid := flag.Bool("grid", false, "draw the table on stderr after every command")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *width > 0 {
		cfg.Table.Width = *width
	}
	if *height > 0 {
		cfg.Table.Height = *height
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	if *grid {
		cfg.ShowGrid = true
	}

	if *serve {
		srv := wsserver.New(cfg.Table.Width, cfg.Table.Height)
		log.Printf("Serving %dx%d table sessions on %s", cfg.Table.Width, cfg.Table.Height, cfg.Listen)
		log.Fatal(http.ListenAndServe(cfg.Listen, srv.Handler()))
	}

	sim, err := interpreter.New(cfg.Table.Width, cfg.Table.Height, os.Stdout, os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	c := console.New(sim, cfg.ExitCommand, os.Stderr, console.WithGrid(cfg.ShowGrid))
	c.Banner(os.Stdout)
	if err := c.Run(os.Stdin); err != nil {
		log.Fatal(err)
	}
}
