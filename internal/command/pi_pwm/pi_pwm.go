package pipwm

import (
	"fmt"
	"log"

	"github.com/Speshl/gorrc_keydrive/internal/command"
	"github.com/Speshl/gorrc_keydrive/internal/config"
	"github.com/Speshl/gorrc_keydrive/internal/vehicle"
	"github.com/stianeikeland/go-rpio/v4"
)

const (
	Frequency          = 100000 // 100kHz clock / 2000 ticks = 50Hz
	CycleLength        = uint32(command.CycleLength)
	MaxSupportedServos = 2
)

var PinMap = []int{12, 13} //Channel0 BCM12 (pin 32), Channel1 BCM13 (pin 33)

type CommandDriver struct {
	cfg    config.CommandConfig
	servos map[int]Servo
}

type Servo struct {
	name     string
	inverted bool
	servo    rpio.Pin
}

func NewCommand(cfg config.CommandConfig) *CommandDriver {
	return &CommandDriver{
		cfg: cfg,
	}
}

func (c *CommandDriver) Init() error {
	servos := make(map[int]Servo, MaxSupportedServos)
	for i := range c.cfg.ServoCfgs {
		channel := c.cfg.ServoCfgs[i].Channel
		if channel < 0 || channel >= MaxSupportedServos {
			return fmt.Errorf("servo %s channel %d not supported by pi pwm", c.cfg.ServoCfgs[i].Name, channel)
		}
		servos[channel] = Servo{
			name:     c.cfg.ServoCfgs[i].Name,
			inverted: c.cfg.ServoCfgs[i].Inverted,
			servo:    rpio.Pin(PinMap[channel]),
		}
	}

	err := rpio.Open()
	if err != nil {
		return fmt.Errorf("failed opening rpio: %w", err)
	}

	// DutyCycle runs the pwm block in mark-space mode, balanced mode would break servo timing
	for channel, servo := range servos {
		servo.servo.Mode(rpio.Pwm)
		servo.servo.Freq(Frequency)
		log.Printf("servo added: %s on channel %d (BCM%d)\n", servo.name, channel, PinMap[channel])
	}
	c.servos = servos
	return nil
}

func (c *CommandDriver) Stop() error {
	log.Println("releasing rpio")
	err := rpio.Close()
	if err != nil {
		return fmt.Errorf("failed closing rpio: %w", err)
	}
	return nil
}

func (c *CommandDriver) SetMany(cmds []vehicle.DriverCommand) error {
	for i := range cmds {
		err := c.Set(cmds[i])
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *CommandDriver) Set(cmd vehicle.DriverCommand) error {
	val, ok := c.servos[cmd.Channel]
	if !ok {
		return fmt.Errorf("no servo on channel %d for %s", cmd.Channel, cmd.Name)
	}

	value := cmd.Value
	if val.inverted {
		value = command.Mirror(value)
	}
	value = vehicle.Clamp(value, command.MinValue, command.MaxValue)

	val.servo.DutyCycle(uint32(value), CycleLength)
	return nil
}
