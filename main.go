package main

import (
	"io"
	"log"
	"os"

	"Sketchpad/internal/config"
	"Sketchpad/internal/ui"
)

func main() {
	opt := parseCLIOpts()

	if opt.doLog {
		log.SetOutput(os.Stdout)
	} else {
		log.SetOutput(io.Discard)
	}
	log.Println("Starting Sketchpad")

	confPath := opt.configPath
	if confPath == "" {
		confPath = config.Path()
	}
	if err := config.Init(confPath); err != nil {
		// keep going on defaults, just without a writable config
		log.Printf("[CONFIG] %v", err)
		ui.Run(config.Defaults(), "")
		return
	}

	ui.Run(config.Load(confPath), confPath)
}
