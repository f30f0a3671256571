package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

func GetConfig() Config {
	cfg := Config{
		CommandCfg:  GetCommandConfig(),
		InputCfg:    GetInputConfig(),
		KeyRacerCfg: GetKeyRacerConfig(),
	}

	log.Printf("app Config: \n%+v\n", cfg)
	return cfg
}

// Validate catches wiring mistakes: unknown drivers, i2c addresses that do not fit 7 bits,
// and both actuators driven from one channel.
func (c Config) Validate() error {
	switch c.CommandCfg.CommandDriver {
	case DriverPiPwm, DriverPCA9685, DriverDummy:
	default:
		return fmt.Errorf("unsupported servo driver: %s", c.CommandCfg.CommandDriver)
	}

	if c.CommandCfg.Address < MinI2CAddress || c.CommandCfg.Address > MaxI2CAddress {
		return fmt.Errorf("i2c address 0x%x outside 0x%02x-0x%02x", c.CommandCfg.Address, MinI2CAddress, MaxI2CAddress)
	}

	if c.KeyRacerCfg.SteerChannel == c.KeyRacerCfg.EscChannel {
		return fmt.Errorf("steer and esc share channel %d", c.KeyRacerCfg.SteerChannel)
	}
	return nil
}

func GetCommandConfig() CommandConfig {
	return CommandConfig{
		CommandDriver: strings.ToLower(GetStringEnv("SERVODRIVER", DefaultCommandDriver)),
		Address:       GetIntEnv("I2CADDRESS", DefaultAddress),
		I2CDevice:     GetStringEnv("I2CDEVICE", DefaultI2CDevice),
		ServoCfgs: []ServoConfig{
			{
				Name:     SteerServoName,
				Channel:  GetIntEnv("STEER_CHANNEL", DefaultSteerChannel),
				Inverted: GetBoolEnv("STEER_INVERTED", DefaultSteerInverted),
			},
			{
				Name:     EscServoName,
				Channel:  GetIntEnv("ESC_CHANNEL", DefaultEscChannel),
				Inverted: GetBoolEnv("ESC_INVERTED", DefaultEscInverted),
			},
		},
	}
}

func GetInputConfig() InputConfig {
	return InputConfig{
		Device: GetStringEnv("INPUTDEVICE", DefaultInputDevice),
	}
}

func GetKeyRacerConfig() KeyRacerConfig {
	return KeyRacerConfig{
		SteerChannel: GetIntEnv("STEER_CHANNEL", DefaultSteerChannel),
		EscChannel:   GetIntEnv("ESC_CHANNEL", DefaultEscChannel),
	}
}

func GetIntEnv(env string, defaultValue int) int {
	envValue, found := os.LookupEnv(AppEnvBase + env)
	if !found {
		return defaultValue
	} else {
		value, err := strconv.ParseInt(strings.Trim(envValue, "\r"), 0, 32)
		if err != nil {
			log.Printf("warning:%s not parsed - error: %s\n", env, err)
			return defaultValue
		} else {
			return int(value)
		}
	}
}

func GetBoolEnv(env string, defaultValue bool) bool {
	envValue, found := os.LookupEnv(AppEnvBase + env)
	if !found {
		return defaultValue
	} else {
		value, err := strconv.ParseBool(strings.Trim(envValue, "\r"))
		if err != nil {
			log.Printf("warning:%s not parsed - error: %s\n", env, err)
			return defaultValue
		} else {
			return value
		}
	}
}

// GetStringEnv keeps the case of the value, device paths like /dev/ttyAMA0 are case sensitive.
func GetStringEnv(env string, defaultValue string) string {
	envValue, found := os.LookupEnv(AppEnvBase + env)
	if !found {
		return defaultValue
	} else {
		return strings.Trim(envValue, "\r")
	}
}
