package vehicle

import (
	"context"
	"errors"
	"math"
)

// ErrInitFailed marks a command driver that could not be brought up. Nothing has been written when it is returned.
var ErrInitFailed = errors.New("command driver init failed")

// DriverCommand is one duty value for one channel. Value is a compare value against a 2000 tick period.
type DriverCommand struct {
	Name    string
	Channel int
	Value   int
}

type CommandDriverIFace interface {
	Init() error
	Set(DriverCommand) error
	SetMany([]DriverCommand) error
	Stop() error
}

// KeyReader blocks until one key is available.
type KeyReader interface {
	ReadKey() (byte, error)
}

type Vehicle interface {
	Init() error
	Start(context.Context) error
}

// Clamp saturates value into [low, high].
func Clamp(value, low, high int) int {
	if value < low {
		return low
	} else if value > high {
		return high
	} else {
		return value
	}
}

// StepWithClamp adds delta to value without wrapping on overflow, then clamps.
func StepWithClamp(value, delta, low, high int) int {
	if delta > 0 && value > math.MaxInt-delta {
		return high
	}
	if delta < 0 && value < math.MinInt-delta {
		return low
	}
	return Clamp(value+delta, low, high)
}
