package main

import (
	"flag"
	"log"
	"os"

	"github.com/muhsinaltintop/yildiz-quote/config"
	"github.com/muhsinaltintop/yildiz-quote/server"
)

func main() {
	cfgPath := flag.String("config", "", "path to config yaml (optional)")
	flag.Parse()

	path := *cfgPath
	if path == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			path = "config.yaml"
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app := &server.App{}
	app.Initialize(cfg)
	if err := app.Run(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
