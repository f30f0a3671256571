package command

import (
	"fmt"
	"log"

	"github.com/Speshl/gorrc_keydrive/internal/command"
	"github.com/Speshl/gorrc_keydrive/internal/config"
	"github.com/Speshl/gorrc_keydrive/internal/vehicle"
	"github.com/googolgl/go-i2c"
	"github.com/googolgl/go-pca9685"
)

const (
	MaxFraction = 1.0
	MinFraction = 0.0

	TickWidth = 10 // microseconds per duty tick at 50Hz
	MinPulse  = command.MinValue * TickWidth
	MaxPulse  = command.MaxValue * TickWidth
	AcRange   = pca9685.ServoRangeDef

	MaxSupportedServos = 16
)

type Command struct {
	cfg    config.CommandConfig
	servos map[int]Servo
	bus    *i2c.Options
	driver *pca9685.PCA9685
}

type Servo struct {
	name     string
	inverted bool
	servo    *pca9685.Servo
}

func NewCommand(cfg config.CommandConfig) *Command {
	return &Command{
		cfg: cfg,
	}
}

func (c *Command) Init() error {
	for i := range c.cfg.ServoCfgs {
		channel := c.cfg.ServoCfgs[i].Channel
		if channel < 0 || channel >= MaxSupportedServos {
			return fmt.Errorf("servo %s channel %d not supported by pca9685", c.cfg.ServoCfgs[i].Name, channel)
		}
	}

	bus, err := i2c.New(uint8(c.cfg.Address), c.cfg.I2CDevice)
	if err != nil {
		return fmt.Errorf("error starting i2c with address - %w", err)
	}

	c.driver, err = pca9685.New(bus, nil)
	if err != nil {
		bus.Close()
		return fmt.Errorf("error getting servo driver - %w", err)
	}
	c.bus = bus

	servos := make(map[int]Servo, len(c.cfg.ServoCfgs))
	for i := range c.cfg.ServoCfgs {
		channel := c.cfg.ServoCfgs[i].Channel
		servos[channel] = Servo{
			name:     c.cfg.ServoCfgs[i].Name,
			inverted: c.cfg.ServoCfgs[i].Inverted,
			servo: c.driver.ServoNew(channel, &pca9685.ServOptions{
				AcRange:  AcRange,
				MinPulse: float32(MinPulse),
				MaxPulse: float32(MaxPulse),
			}),
		}
		log.Printf("servo added: %s on channel %d\n", servos[channel].name, channel)
	}
	c.servos = servos
	return nil
}

func (c *Command) Stop() error {
	log.Println("releasing pca9685 bus")
	if c.bus == nil {
		return nil
	}
	err := c.bus.Close()
	if err != nil {
		return fmt.Errorf("failed closing i2c bus: %w", err)
	}
	return nil
}

func (c *Command) SetMany(cmds []vehicle.DriverCommand) error {
	for i := range cmds {
		err := c.Set(cmds[i])
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *Command) Set(cmd vehicle.DriverCommand) error {
	val, ok := c.servos[cmd.Channel]
	if !ok {
		return fmt.Errorf("no servo on channel %d for %s", cmd.Channel, cmd.Name)
	}

	value := cmd.Value
	if val.inverted {
		value = command.Mirror(value)
	}

	mappedValue := command.MapToRange(float64(value), command.MinValue, command.MaxValue, MinFraction, MaxFraction)
	err := val.servo.Fraction(float32(mappedValue))
	if err != nil {
		return fmt.Errorf("failed setting servo value - name: %s value: %d - error: %w", cmd.Name, value, err)
	}
	return nil
}
