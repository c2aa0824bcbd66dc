package handler

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

type State int32

const (
	StateConnecting State = iota
	StateOpen
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "CONNECTING"
	case StateOpen:
		return "OPEN"
	case StateClosed:
		return "CLOSED"
	default:
		return "UNKNOWN"
	}
}

// Connection is one live client session. The transport drains Outbound and
// tears the socket down once Done is closed.
type Connection struct {
	ID       string
	UserID   int64
	UserName string

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
	state     atomic.Int32
	evicted   atomic.Bool
}

func NewConnection(userID int64, userName string, buffer int) *Connection {
	if buffer <= 0 {
		buffer = 256
	}
	return &Connection{
		ID:       uuid.NewString(),
		UserID:   userID,
		UserName: userName,
		send:     make(chan []byte, buffer),
		done:     make(chan struct{}),
	}
}

// Send queues a frame without blocking. A full queue closes the connection
// so one slow reader cannot hold up fan-out.
func (c *Connection) Send(frame []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- frame:
		return true
	default:
		c.evicted.Store(true)
		c.Close()
		return false
	}
}

func (c *Connection) Outbound() <-chan []byte {
	return c.send
}

func (c *Connection) Done() <-chan struct{} {
	return c.done
}

// Evicted reports whether the connection was closed for falling behind.
func (c *Connection) Evicted() bool {
	return c.evicted.Load()
}

func (c *Connection) State() State {
	return State(c.state.Load())
}

func (c *Connection) open() bool {
	return c.state.CompareAndSwap(int32(StateConnecting), int32(StateOpen))
}

func (c *Connection) Close() {
	c.closeOnce.Do(func() {
		c.state.Store(int32(StateClosed))
		close(c.done)
	})
}
