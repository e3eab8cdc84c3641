package phase

import "github.com/vovakirdan/gridsnake/internal/games/snake/world"

// Channel is a one-way event stream. Producers Send; each listener reads
// through its own Reader, which remembers how far it has read.
//
// Events survive two frame updates: one sent after its listener already ran
// this frame is still delivered on the next frame, and then dropped.
type Channel[T any] struct {
	buf  []entry[T]
	next uint64 // Sequence number of the next Send
	mark uint64 // First sequence number sent during the current frame
}

type entry[T any] struct {
	seq uint64
	ev  T
}

// Send appends an event.
func (c *Channel[T]) Send(ev T) {
	c.buf = append(c.buf, entry[T]{seq: c.next, ev: ev})
	c.next++
}

// Len returns the number of buffered events.
func (c *Channel[T]) Len() int {
	return len(c.buf)
}

// Sent returns the total number of events ever sent.
func (c *Channel[T]) Sent() uint64 {
	return c.next
}

// Update ends a frame: events sent before the previous Update are dropped.
func (c *Channel[T]) Update() {
	i := 0
	for i < len(c.buf) && c.buf[i].seq < c.mark {
		i++
	}
	if i > 0 {
		c.buf = append(c.buf[:0], c.buf[i:]...)
	}
	c.mark = c.next
}

// Reader is a listener's read cursor over a Channel. The cursor only moves
// forward, so no event is returned twice.
type Reader[T any] struct {
	cursor uint64
}

// Read returns every buffered event the reader has not seen yet.
func (r *Reader[T]) Read(c *Channel[T]) []T {
	var out []T
	for _, e := range c.buf {
		if e.seq >= r.cursor {
			out = append(out, e.ev)
		}
	}
	r.cursor = c.next
	return out
}

// The lifecycle events. Each marks one boundary crossing.
type (
	PreGameStart  struct{}
	PreGameEnd    struct{}
	RunningStart  struct{}
	RunningEnd    struct{ Reason world.EndReason }
	PostGameStart struct{}
	PostGameEnd   struct{}
)

// Events holds one channel per lifecycle event.
type Events struct {
	PreGameStart  Channel[PreGameStart]
	PreGameEnd    Channel[PreGameEnd]
	RunningStart  Channel[RunningStart]
	RunningEnd    Channel[RunningEnd]
	PostGameStart Channel[PostGameStart]
	PostGameEnd   Channel[PostGameEnd]
}

// Update ends the frame on every channel.
func (e *Events) Update() {
	e.PreGameStart.Update()
	e.PreGameEnd.Update()
	e.RunningStart.Update()
	e.RunningEnd.Update()
	e.PostGameStart.Update()
	e.PostGameEnd.Update()
}
