package main

import (
	"errors"
	"log"
	"os"

	"github.com/Speshl/gorrc_keydrive/internal/app"
	"github.com/Speshl/gorrc_keydrive/internal/config"
	"github.com/Speshl/gorrc_keydrive/internal/keyboard"
	"github.com/Speshl/gorrc_keydrive/internal/vehicle"
	"github.com/google/uuid"
)

func main() {
	os.Exit(run())
}

func run() int {
	sessionID := uuid.New()
	log.SetPrefix(sessionID.String()[:8] + " ")

	cfg := config.GetConfig()
	err := cfg.Validate()
	if err != nil {
		log.Printf("invalid config: %s\n", err.Error())
		return 1
	}

	commandDriver, err := app.NewCommandDriver(cfg.CommandCfg)
	if err != nil {
		log.Printf("error creating command driver - %s\n", err.Error())
		return 1
	}

	keyReader, err := keyboard.Open(cfg.InputCfg.Device)
	if err != nil {
		log.Printf("error opening key input - %s\n", err.Error())
		return 1
	}
	defer func() {
		err := keyReader.Close()
		if err != nil {
			log.Printf("warning: %s\n", err.Error())
		}
	}()

	app := app.NewApp(sessionID, cfg, commandDriver, keyReader)

	err = app.Start()
	if err != nil {
		if errors.Is(err, vehicle.ErrInitFailed) {
			log.Printf("client failed to start: %s", err.Error())
		} else {
			log.Printf("client shutdown with error: %s", err.Error())
		}
		return 1
	}

	log.Println("client shutdown successfully")
	return 0
}
