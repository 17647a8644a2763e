package runtime

import (
	"bytes"
	goruntime "runtime"
	"strconv"
	"sync"
)

// passLock serializes dispatches across goroutines.
// The goroutine holding it may take it again, so a subscriber can dispatch from inside a pass.
type passLock struct {
	mu    sync.Mutex
	cond  *sync.Cond
	owner int64
	depth int
}

func newPassLock() *passLock {
	l := &passLock{}
	l.cond = sync.NewCond(&l.mu)
	return l
}

func (l *passLock) lock() {
	g := goroutineID()

	l.mu.Lock()
	for l.depth > 0 && l.owner != g {
		l.cond.Wait()
	}
	l.owner = g
	l.depth++
	l.mu.Unlock()
}

func (l *passLock) unlock() {
	l.mu.Lock()
	l.depth--
	if l.depth == 0 {
		l.owner = 0
		l.cond.Broadcast()
	}
	l.mu.Unlock()
}

var goroutinePrefix = []byte("goroutine ")

// goroutineID reads the current goroutine id from the stack header ("goroutine 42 [running]:").
func goroutineID() int64 {
	var buf [64]byte
	n := goruntime.Stack(buf[:], false)
	b := bytes.TrimPrefix(buf[:n], goroutinePrefix)
	if i := bytes.IndexByte(b, ' '); i > 0 {
		b = b[:i]
	}
	id, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		panic("sprig: cannot parse goroutine id: " + err.Error())
	}
	return id
}
