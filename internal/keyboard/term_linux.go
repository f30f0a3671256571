//go:build linux

package keyboard

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

var errNotTerminal = errors.New("not a terminal")

// makeCbreak clears ICANON and ECHO and asks for one byte per read. Signals stay enabled so ctrl-c still reaches the app.
func makeCbreak(fd int) (func() error, error) {
	old, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		if errors.Is(err, unix.ENOTTY) || errors.Is(err, unix.EINVAL) {
			return nil, errNotTerminal
		}
		return nil, fmt.Errorf("failed reading terminal attributes: %w", err)
	}

	cbreak := *old
	cbreak.Lflag &^= unix.ICANON | unix.ECHO
	cbreak.Cc[unix.VMIN] = 1
	cbreak.Cc[unix.VTIME] = 0
	err = unix.IoctlSetTermios(fd, unix.TCSETS, &cbreak)
	if err != nil {
		return nil, fmt.Errorf("failed setting terminal attributes: %w", err)
	}

	return func() error {
		return unix.IoctlSetTermios(fd, unix.TCSETSW, old)
	}, nil
}
