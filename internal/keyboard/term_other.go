//go:build !linux

package keyboard

import "errors"

var errNotTerminal = errors.New("not a terminal")

// cbreak mode is only wired up for linux, elsewhere keys arrive after return is pressed.
func makeCbreak(fd int) (func() error, error) {
	return nil, errNotTerminal
}
