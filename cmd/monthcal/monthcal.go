package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"tableflip.dev/monthcal/pkg/commands"
)

func init() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		log.SetLevel(log.WarnLevel)
		return
	}
	logrusLevel, err := log.ParseLevel(level)
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(logrusLevel)
}

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
