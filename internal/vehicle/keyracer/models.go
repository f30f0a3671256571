package keyracer

import (
	"github.com/Speshl/gorrc_keydrive/internal/config"
	"github.com/Speshl/gorrc_keydrive/internal/vehicle"
)

const (
	//Key Maps
	KeySteerLeft    = 'k'
	KeySteerRight   = 'l'
	KeyThrottleUp   = 'a'
	KeyThrottleDown = 'y'
	KeyBrake        = 'b'
	KeyQuit         = 'q'

	SteerStep = 1
	EscStep   = 1

	// duty values on a 2000 tick period
	NeutralValue = 150
	MinSteer     = 120
	MaxSteer     = 180
	MinEsc       = 120
	MaxEsc       = 160 //limits top speed, tighter than the steering throw on purpose
	BrakeValue   = 100
)

const KeyHelp = `control the steering with:
   k key to the left
   l key to the right
control the throttle with:
   a key to increase speed
   y key to decrease speed
   b key to brake
q quits`

type KeyRacer struct {
	cfg           config.KeyRacerConfig
	state         KeyRacerState
	commandDriver vehicle.CommandDriverIFace
	keyReader     vehicle.KeyReader

	keyCount int
}

type KeyRacerState struct {
	Steer int
	Esc   int
}

type keyResult struct {
	key byte
	err error
}
