//go:build unix

package app

import (
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/Speshl/gorrc_keydrive/internal/command/dummy"
	"github.com/Speshl/gorrc_keydrive/internal/keyboard"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartSignalShutdown(t *testing.T) {
	driver := dummy.NewCommand()
	hold := keyboard.NewHold()
	t.Cleanup(hold.Release)

	app := NewApp(uuid.New(), testConfig(), driver, hold)
	done := make(chan error, 1)
	go func() {
		done <- app.Start()
	}()

	<-hold.Waiting()
	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGINT))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop on SIGINT")
	}
	assert.Equal(t, 1, driver.StopCount())

	// only the startup neutral pair, the last value is left asserted
	assert.Len(t, driver.Writes(), 2)
}
