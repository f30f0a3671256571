package config

const (
	AppEnvBase = "GORRC_"

	// Default Command Options
	DefaultCommandDriver = DriverPiPwm
	DefaultAddress       = 0x40
	MinI2CAddress        = 0x03 //7 bit addresses outside the reserved blocks
	MaxI2CAddress        = 0x77
	DefaultI2CDevice     = "/dev/i2c-1"

	DefaultSteerChannel  = 0
	DefaultEscChannel    = 1
	DefaultSteerInverted = false
	DefaultEscInverted   = false

	// Default Input Options
	DefaultInputDevice = "" //stdin

	DriverPiPwm   = "pipwm"
	DriverPCA9685 = "pca9685"
	DriverDummy   = "dummy"

	SteerServoName = "steer"
	EscServoName   = "esc"
)

type Config struct {
	CommandCfg  CommandConfig
	InputCfg    InputConfig
	KeyRacerCfg KeyRacerConfig
}

type CommandConfig struct {
	CommandDriver string
	Address       int
	I2CDevice     string
	ServoCfgs     []ServoConfig
}

type ServoConfig struct {
	Name     string
	Channel  int
	Inverted bool
}

type InputConfig struct {
	Device string
}

type KeyRacerConfig struct {
	SteerChannel int
	EscChannel   int
}
