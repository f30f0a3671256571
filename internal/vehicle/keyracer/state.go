package keyracer

import (
	"github.com/Speshl/gorrc_keydrive/internal/vehicle"
)

func ClampSteer(value int) int {
	return vehicle.Clamp(value, MinSteer, MaxSteer)
}

func ClampEsc(value int) int {
	return vehicle.Clamp(value, MinEsc, MaxEsc)
}

// BrakeFrom is bang-bang: full brake while driving forward, neutral otherwise.
func BrakeFrom(esc int) int {
	if esc > NeutralValue {
		return BrakeValue
	}
	return NeutralValue
}

func (c *KeyRacerState) steer(delta int) {
	c.Steer = vehicle.StepWithClamp(c.Steer, delta, MinSteer, MaxSteer)
}

func (c *KeyRacerState) throttle(delta int) {
	c.Esc = vehicle.StepWithClamp(c.Esc, delta, MinEsc, MaxEsc)
}

func (c *KeyRacerState) brake() {
	c.Esc = BrakeFrom(c.Esc)
}
