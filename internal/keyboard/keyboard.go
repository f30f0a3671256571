package keyboard

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

var ErrInputClosed = errors.New("key input closed")

// Reader hands out one byte per ReadKey. A terminal is switched to cbreak mode (no line buffering, no echo) until Close.
type Reader struct {
	file    *os.File
	owned   bool
	restore func() error
	buf     [1]byte
}

// Open reads keys from device, or from stdin when device is empty.
func Open(device string) (*Reader, error) {
	if device == "" {
		return NewReader(os.Stdin)
	}

	file, err := os.Open(device)
	if err != nil {
		return nil, fmt.Errorf("failed opening input device %s: %w", device, err)
	}

	reader, err := NewReader(file)
	if err != nil {
		file.Close()
		return nil, err
	}
	reader.owned = true
	return reader, nil
}

func NewReader(file *os.File) (*Reader, error) {
	restore, err := makeCbreak(int(file.Fd()))
	if err != nil {
		if !errors.Is(err, errNotTerminal) {
			return nil, err
		}
		log.Printf("warning: %s is not a terminal, reading keys without cbreak\n", file.Name())
		restore = func() error { return nil }
	}

	return &Reader{
		file:    file,
		restore: restore,
	}, nil
}

func (r *Reader) ReadKey() (byte, error) {
	for {
		n, err := r.file.Read(r.buf[:])
		if n == 1 {
			return r.buf[0], nil
		}
		if errors.Is(err, io.EOF) {
			return 0, ErrInputClosed
		}
		if err != nil {
			return 0, fmt.Errorf("failed reading key: %w", err)
		}
	}
}

// Close puts the terminal back the way it was found.
func (r *Reader) Close() error {
	err := r.restore()
	if err != nil {
		err = fmt.Errorf("failed restoring terminal: %w", err)
	}
	if r.owned {
		closeErr := r.file.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("failed closing input device: %w", closeErr)
		}
	}
	return err
}
