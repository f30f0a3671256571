package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Speshl/gorrc_keydrive/internal/command/dummy"
	pca9685 "github.com/Speshl/gorrc_keydrive/internal/command/pca9685"
	pipwm "github.com/Speshl/gorrc_keydrive/internal/command/pi_pwm"
	"github.com/Speshl/gorrc_keydrive/internal/config"
	"github.com/Speshl/gorrc_keydrive/internal/vehicle"
	"github.com/Speshl/gorrc_keydrive/internal/vehicle/keyracer"
	"github.com/google/uuid"
	"github.com/prometheus/procfs"
	"golang.org/x/sync/errgroup"
)

type App struct {
	ctx       context.Context
	ctxCancel context.CancelFunc

	SessionID uuid.UUID
	Cfg       config.Config

	car *keyracer.KeyRacer
}

func NewApp(sessionID uuid.UUID, cfg config.Config, commandDriver vehicle.CommandDriverIFace, keyReader vehicle.KeyReader) *App {
	ctx, cancel := context.WithCancel(context.Background())

	return &App{
		ctx:       ctx,
		ctxCancel: cancel,
		SessionID: sessionID,
		Cfg:       cfg,
		car:       keyracer.NewKeyRacer(cfg.KeyRacerCfg, commandDriver, keyReader),
	}
}

// NewCommandDriver picks the pwm backend named in cfg.
func NewCommandDriver(cfg config.CommandConfig) (vehicle.CommandDriverIFace, error) {
	switch cfg.CommandDriver {
	case config.DriverPiPwm:
		return pipwm.NewCommand(cfg), nil
	case config.DriverPCA9685:
		return pca9685.NewCommand(cfg), nil
	case config.DriverDummy:
		return dummy.NewCommand(), nil
	default:
		return nil, fmt.Errorf("unsupported servo driver: %s", cfg.CommandDriver)
	}
}

// Start brings the car to neutral and runs it until quit, a signal or an error.
// An init failure is returned wrapping vehicle.ErrInitFailed before any key is read.
func (a *App) Start() error {
	log.Printf("starting session %s\n", a.SessionID)
	defer a.ctxCancel()

	err := a.car.Init()
	if err != nil {
		return err
	}
	log.Printf("key bindings:\n%s\n", keyracer.KeyHelp)

	// registered before the car reads its first key
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signalChannel)

	group, groupCtx := errgroup.WithContext(a.ctx)

	//kill listener
	group.Go(func() error {
		select {
		case sig := <-signalChannel:
			log.Printf("received signal: %s\n", sig)
			a.ctxCancel()
			return nil
		case <-groupCtx.Done():
			return nil
		}
	})

	//Start car
	group.Go(func() error {
		defer a.ctxCancel()
		return a.car.Start(groupCtx)
	})

	err = group.Wait()
	a.logSessionSummary()
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Println("context was cancelled")
			return nil
		}
		return fmt.Errorf("key racer stopping due to error - %w", err)
	}

	log.Println("shutting down")
	return nil
}

func (a *App) logSessionSummary() {
	state := a.car.State()
	log.Printf("session %s summary - keys: %d steer: %d esc: %d\n", a.SessionID, a.car.KeyCount(), state.Steer, state.Esc)

	p, err := procfs.Self()
	if err != nil {
		log.Printf("warning: procfs could not get process: %s\n", err)
		return
	}
	stat, err := p.Stat()
	if err != nil {
		log.Printf("warning: procfs could not read process stat: %s\n", err)
		return
	}
	log.Printf("session %s process - cpu: %.2fs rss: %dKiB\n", a.SessionID, stat.CPUTime(), stat.ResidentMemory()/1024)
}
