package keyboard

import "sync"

// Script replays a fixed key sequence, then reports ErrInputClosed.
type Script struct {
	lock  sync.Mutex
	keys  []byte
	reads int
}

func NewScript(keys string) *Script {
	return &Script{
		keys: []byte(keys),
	}
}

func (s *Script) ReadKey() (byte, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.reads >= len(s.keys) {
		return 0, ErrInputClosed
	}
	key := s.keys[s.reads]
	s.reads++
	return key, nil
}

// Reads is how many keys have been handed out.
func (s *Script) Reads() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.reads
}

// Hold blocks every ReadKey until Release, then reports ErrInputClosed. It stands in for an idle keyboard.
type Hold struct {
	once    sync.Once
	waiting chan struct{}
	release chan struct{}
	relOnce sync.Once
}

func NewHold() *Hold {
	return &Hold{
		waiting: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (h *Hold) ReadKey() (byte, error) {
	h.once.Do(func() { close(h.waiting) })
	<-h.release
	return 0, ErrInputClosed
}

// Waiting is closed once the first ReadKey has started.
func (h *Hold) Waiting() <-chan struct{} {
	return h.waiting
}

func (h *Hold) Release() {
	h.relOnce.Do(func() { close(h.release) })
}
