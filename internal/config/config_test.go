package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigDefaults(t *testing.T) {
	cfg := GetConfig()

	assert.Equal(t, DriverPiPwm, cfg.CommandCfg.CommandDriver)
	assert.Equal(t, 0x40, cfg.CommandCfg.Address)
	assert.Equal(t, "/dev/i2c-1", cfg.CommandCfg.I2CDevice)
	assert.Equal(t, "", cfg.InputCfg.Device)

	require.Len(t, cfg.CommandCfg.ServoCfgs, 2)
	assert.Equal(t, ServoConfig{Name: SteerServoName, Channel: 0}, cfg.CommandCfg.ServoCfgs[0])
	assert.Equal(t, ServoConfig{Name: EscServoName, Channel: 1}, cfg.CommandCfg.ServoCfgs[1])
	assert.Equal(t, KeyRacerConfig{SteerChannel: 0, EscChannel: 1}, cfg.KeyRacerCfg)
	assert.NoError(t, cfg.Validate())
}

func TestGetConfigFromEnv(t *testing.T) {
	t.Setenv("GORRC_SERVODRIVER", "PCA9685\r")
	t.Setenv("GORRC_I2CADDRESS", "0x41")
	t.Setenv("GORRC_STEER_CHANNEL", "4")
	t.Setenv("GORRC_ESC_CHANNEL", "5")
	t.Setenv("GORRC_ESC_INVERTED", "true")
	t.Setenv("GORRC_INPUTDEVICE", "/dev/ttyAMA0")

	cfg := GetConfig()

	assert.Equal(t, DriverPCA9685, cfg.CommandCfg.CommandDriver)
	assert.Equal(t, 0x41, cfg.CommandCfg.Address)
	assert.Equal(t, "/dev/ttyAMA0", cfg.InputCfg.Device)
	assert.Equal(t, ServoConfig{Name: SteerServoName, Channel: 4}, cfg.CommandCfg.ServoCfgs[0])
	assert.Equal(t, ServoConfig{Name: EscServoName, Channel: 5, Inverted: true}, cfg.CommandCfg.ServoCfgs[1])
	assert.Equal(t, KeyRacerConfig{SteerChannel: 4, EscChannel: 5}, cfg.KeyRacerCfg)
	assert.NoError(t, cfg.Validate())
}

func TestBadEnvFallsBackToDefault(t *testing.T) {
	t.Setenv("GORRC_STEER_CHANNEL", "left")
	t.Setenv("GORRC_STEER_INVERTED", "maybe")

	assert.Equal(t, DefaultSteerChannel, GetIntEnv("STEER_CHANNEL", DefaultSteerChannel))
	assert.Equal(t, DefaultSteerInverted, GetBoolEnv("STEER_INVERTED", DefaultSteerInverted))
}

func TestValidate(t *testing.T) {
	t.Setenv("GORRC_ESC_CHANNEL", "0")
	assert.Error(t, GetConfig().Validate())

	t.Setenv("GORRC_ESC_CHANNEL", "1")
	t.Setenv("GORRC_SERVODRIVER", "bcm2835")
	assert.Error(t, GetConfig().Validate())
}

func TestValidateI2CAddress(t *testing.T) {
	t.Setenv("GORRC_I2CADDRESS", "0x140")
	cfg := GetConfig()
	assert.Equal(t, 0x140, cfg.CommandCfg.Address)
	assert.ErrorContains(t, cfg.Validate(), "0x140")

	t.Setenv("GORRC_I2CADDRESS", "0x78")
	assert.Error(t, GetConfig().Validate())

	t.Setenv("GORRC_I2CADDRESS", "0x02")
	assert.Error(t, GetConfig().Validate())

	t.Setenv("GORRC_I2CADDRESS", "0x77")
	assert.NoError(t, GetConfig().Validate())
}
