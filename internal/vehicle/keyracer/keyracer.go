package keyracer

import (
	"context"
	"fmt"
	"log"

	"github.com/Speshl/gorrc_keydrive/internal/config"
	"github.com/Speshl/gorrc_keydrive/internal/vehicle"
)

func NewKeyRacer(cfg config.KeyRacerConfig, commandDriver vehicle.CommandDriverIFace, keyReader vehicle.KeyReader) *KeyRacer {
	log.Println("setting up key racer")
	return &KeyRacer{
		cfg:           cfg,
		commandDriver: commandDriver,
		keyReader:     keyReader,
		state:         NewKeyRacerState(),
	}
}

func NewKeyRacerState() KeyRacerState {
	return KeyRacerState{
		Steer: NeutralValue,
		Esc:   NeutralValue, //esc arms on neutral
	}
}

// Init brings up the command driver and drives both channels to neutral. No key is read here.
func (c *KeyRacer) Init() error {
	err := c.commandDriver.Init()
	if err != nil {
		return fmt.Errorf("%w: %w", vehicle.ErrInitFailed, err)
	}

	err = c.applyState(c.state)
	if err != nil {
		c.stop()
		return fmt.Errorf("%w: failed driving neutral: %w", vehicle.ErrInitFailed, err)
	}
	return nil
}

// Start dispatches keys until quit, a read or write error, or ctx is done. The command driver is released on the way out.
// Nothing is centered on exit, the last written values stay asserted.
func (c *KeyRacer) Start(ctx context.Context) error {
	log.Println("starting key racer")
	defer c.stop()

	readerCtx, readerCancel := context.WithCancel(ctx)
	defer readerCancel()

	keyRequests := make(chan struct{})
	keyResults := make(chan keyResult)
	go c.readKeys(readerCtx, keyRequests, keyResults)

	for {
		select {
		case <-ctx.Done():
			return c.cancelled(ctx)
		case keyRequests <- struct{}{}:
		}

		var result keyResult
		select {
		case <-ctx.Done():
			return c.cancelled(ctx)
		case result = <-keyResults:
		}

		if result.err != nil {
			return fmt.Errorf("key racer input stopped: %w", result.err)
		}

		running, err := c.HandleKey(result.key)
		if err != nil {
			return fmt.Errorf("failed applying key racer state: %w", err)
		}
		if !running {
			log.Println("quit key pressed")
			return nil
		}
	}
}

func (c *KeyRacer) cancelled(ctx context.Context) error {
	log.Printf("stopping key racer: %s\n", ctx.Err().Error())
	return ctx.Err()
}

// readKeys reads exactly one key per request, so nothing is taken from the input that the dispatcher will not apply.
func (c *KeyRacer) readKeys(ctx context.Context, keyRequests <-chan struct{}, keyResults chan<- keyResult) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-keyRequests:
		}

		key, err := c.keyReader.ReadKey()
		select {
		case <-ctx.Done():
			return
		case keyResults <- keyResult{key: key, err: err}:
		}
		if err != nil {
			return
		}
	}
}

// HandleKey applies one key. It reports false once the quit key has been seen.
func (c *KeyRacer) HandleKey(key byte) (bool, error) {
	c.keyCount++

	var err error
	switch key {
	case KeySteerLeft:
		_, err = c.AdjustSteering(SteerStep)
	case KeySteerRight:
		_, err = c.AdjustSteering(-SteerStep)
	case KeyThrottleUp:
		_, err = c.AdjustThrottle(EscStep)
	case KeyThrottleDown:
		_, err = c.AdjustThrottle(-EscStep)
	case KeyBrake:
		_, err = c.Brake()
	case KeyQuit:
		return false, nil
	}
	return true, err
}

func (c *KeyRacer) AdjustSteering(delta int) (int, error) {
	c.state.steer(delta)
	log.Printf("new steering value: %d\n", c.state.Steer)
	return c.state.Steer, c.commandDriver.Set(c.steerCommand(c.state))
}

func (c *KeyRacer) AdjustThrottle(delta int) (int, error) {
	c.state.throttle(delta)
	log.Printf("new throttle value: %d\n", c.state.Esc)
	return c.state.Esc, c.commandDriver.Set(c.escCommand(c.state))
}

func (c *KeyRacer) Brake() (int, error) {
	c.state.brake()
	log.Printf("braking, set value to: %d\n", c.state.Esc)
	return c.state.Esc, c.commandDriver.Set(c.escCommand(c.state))
}

func (c *KeyRacer) State() KeyRacerState {
	return c.state
}

func (c *KeyRacer) KeyCount() int {
	return c.keyCount
}

func (c *KeyRacer) stop() {
	log.Printf("stopping key racer - steer: %d esc: %d keys: %d\n", c.state.Steer, c.state.Esc, c.keyCount)
	err := c.commandDriver.Stop()
	if err != nil {
		log.Printf("error: failed stopping command driver: %s\n", err.Error())
	}
}

func (c *KeyRacer) applyState(state KeyRacerState) error {
	c.state = state

	err := c.commandDriver.SetMany(c.buildCommands(c.state))
	if err != nil {
		return fmt.Errorf("failed setting key racer commands: %w", err)
	}
	return nil
}

func (c *KeyRacer) buildCommands(state KeyRacerState) []vehicle.DriverCommand {
	return []vehicle.DriverCommand{
		c.steerCommand(state),
		c.escCommand(state),
	}
}

func (c *KeyRacer) steerCommand(state KeyRacerState) vehicle.DriverCommand {
	return vehicle.DriverCommand{
		Name:    config.SteerServoName,
		Channel: c.cfg.SteerChannel,
		Value:   state.Steer,
	}
}

func (c *KeyRacer) escCommand(state KeyRacerState) vehicle.DriverCommand {
	return vehicle.DriverCommand{
		Name:    config.EscServoName,
		Channel: c.cfg.EscChannel,
		Value:   state.Esc,
	}
}

var _ vehicle.Vehicle = (*KeyRacer)(nil)
