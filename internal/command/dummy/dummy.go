package dummy

import (
	"fmt"
	"log"
	"sync"

	"github.com/Speshl/gorrc_keydrive/internal/vehicle"
)

// CommandDriver keeps every write in memory. It backs the "dummy" driver for bench runs and the tests.
type CommandDriver struct {
	lock sync.Mutex

	InitErr error
	SetErr  error
	StopErr error

	initCount int
	stopCount int
	writes    []vehicle.DriverCommand
	last      map[int]int
}

func NewCommand() *CommandDriver {
	return &CommandDriver{
		last: make(map[int]int),
	}
}

func (d *CommandDriver) Init() error {
	d.lock.Lock()
	defer d.lock.Unlock()
	log.Println("dummy: init")
	d.initCount++
	return d.InitErr
}

func (d *CommandDriver) Stop() error {
	d.lock.Lock()
	defer d.lock.Unlock()
	log.Println("dummy: stop")
	d.stopCount++
	return d.StopErr
}

func (d *CommandDriver) SetMany(cmds []vehicle.DriverCommand) error {
	for i := range cmds {
		err := d.Set(cmds[i])
		if err != nil {
			return err
		}
	}
	return nil
}

func (d *CommandDriver) Set(cmd vehicle.DriverCommand) error {
	d.lock.Lock()
	defer d.lock.Unlock()
	if d.SetErr != nil {
		return fmt.Errorf("dummy: failed setting %s: %w", cmd.Name, d.SetErr)
	}
	log.Printf("dummy: set %s channel=%d value=%d\n", cmd.Name, cmd.Channel, cmd.Value)
	d.writes = append(d.writes, cmd)
	d.last[cmd.Channel] = cmd.Value
	return nil
}

// Writes returns a copy of every accepted write in order.
func (d *CommandDriver) Writes() []vehicle.DriverCommand {
	d.lock.Lock()
	defer d.lock.Unlock()
	writes := make([]vehicle.DriverCommand, len(d.writes))
	copy(writes, d.writes)
	return writes
}

// Last is the value currently driven on channel.
func (d *CommandDriver) Last(channel int) (int, bool) {
	d.lock.Lock()
	defer d.lock.Unlock()
	value, ok := d.last[channel]
	return value, ok
}

func (d *CommandDriver) InitCount() int {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.initCount
}

func (d *CommandDriver) StopCount() int {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.stopCount
}

var _ vehicle.CommandDriverIFace = (*CommandDriver)(nil)
