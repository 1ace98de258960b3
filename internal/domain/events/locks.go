package events

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

const lockStripes = 256

// keyLocks serializa check-then-write sobre una misma key.
// Keys distintas pueden caer en el mismo stripe; eso solo agrega espera, nunca deadlock,
// porque cada operación toma un único lock.
type keyLocks struct {
	stripes [lockStripes]sync.Mutex
}

func (l *keyLocks) lock(k Key) func() {
	m := &l.stripes[xxhash.Sum64String(k.Flat())%lockStripes]
	m.Lock()
	return m.Unlock
}
