// Package singleton contrasts four disciplines for lazily creating one
// shared instance. Same contract every time: every caller gets the same
// pointer and the constructor runs once. What varies is how much the
// discipline costs and whether it survives concurrent first access.
package singleton

import (
	"sync"
	"sync/atomic"
	"time"
)

// Settings is the instance everybody wants exactly one of.
type Settings struct {
	Theme    string
	PageSize int
	LoadedAt time.Time
}

// Per-variant construction counters. They only ever reach 1 in a correct
// program, which is precisely what the tests pin down.
var (
	unsafeBuilds  atomic.Int64
	mutexBuilds   atomic.Int64
	checkedBuilds atomic.Int64
	onceBuilds    atomic.Int64
)

func newSettings(builds *atomic.Int64) *Settings {
	builds.Add(1)
	return &Settings{Theme: "dark", PageSize: 50, LoadedAt: time.Now().UTC()}
}

// Builds reports how many times each variant's constructor has run, keyed by
// accessor name.
func Builds() map[string]int64 {
	return map[string]int64{
		"unsafe":  unsafeBuilds.Load(),
		"mutex":   mutexBuilds.Load(),
		"checked": checkedBuilds.Load(),
		"once":    onceBuilds.Load(),
	}
}

// --- variant 1: unsynchronized -------------------------------------------

var unsafeInstance *Settings

// UnsafeInstance is the broken baseline: a plain nil check. Two goroutines
// arriving together can both see nil and both construct, and the unguarded
// write is a data race the race detector will flag. It exists to be read,
// not called from more than one goroutine.
func UnsafeInstance() *Settings {
	if unsafeInstance == nil {
		unsafeInstance = newSettings(&unsafeBuilds)
	}
	return unsafeInstance
}

// --- variant 2: mutex on every access ------------------------------------

var (
	mutexInstance *Settings
	mutexMu       sync.Mutex
)

// MutexInstance is correct and simple: take the lock, check, construct,
// return. The price is that every access pays for the lock forever, long
// after the instance exists.
func MutexInstance() *Settings {
	mutexMu.Lock()
	defer mutexMu.Unlock()
	if mutexInstance == nil {
		mutexInstance = newSettings(&mutexBuilds)
	}
	return mutexInstance
}

// --- variant 3: double-checked locking -----------------------------------

var (
	checkedInstance atomic.Pointer[Settings]
	checkedMu       sync.Mutex
)

// CheckedInstance is the classic double-checked idiom done the only way it
// is sound in Go: the fast path is an atomic load, and losers of the
// construction race re-check under the lock before building. A plain
// (non-atomic) fast-path read would be the same race UnsafeInstance has,
// just better disguised.
func CheckedInstance() *Settings {
	if s := checkedInstance.Load(); s != nil {
		return s
	}

	checkedMu.Lock()
	defer checkedMu.Unlock()
	if s := checkedInstance.Load(); s != nil {
		return s
	}
	s := newSettings(&checkedBuilds)
	checkedInstance.Store(s)
	return s
}

// --- variant 4: sync.Once -------------------------------------------------

var (
	onceInstance *Settings
	once         sync.Once
)

// OnceInstance is the Go idiom. sync.Once performs the whole double-checked
// dance internally, callers after the first pay one atomic load, and there
// is no way to hold it wrong.
func OnceInstance() *Settings {
	once.Do(func() {
		onceInstance = newSettings(&onceBuilds)
	})
	return onceInstance
}
