package core

// ScanQueueSize is the scan-code buffer capacity. One slot stays unused to
// distinguish full from empty, so 253 bytes can be pending at once.
const ScanQueueSize = 254

// ScanQueue is the bounded circular buffer between the PS/2 clock interrupt
// (producer) and the foreground poll loop (consumer). The producer writes
// tail and storage, the consumer writes head. The producer never blocks:
// when the buffer fills, the oldest unread byte is dropped in favour of the
// newest, trading completeness for liveness.
type ScanQueue struct {
	buf   [ScanQueueSize]byte
	head  uint8
	tail  uint8
	drops uint32
}

// Push appends a scan code. Interrupt context only; the hardware delivers
// one frame at a time, so the producer needs no locking against itself.
func (q *ScanQueue) Push(b byte) {
	q.buf[q.tail] = b
	q.tail++
	if q.tail == ScanQueueSize {
		q.tail = 0
	}
	if q.tail == q.head {
		// Buffer just became full: drop the oldest unread byte.
		q.head++
		if q.head == ScanQueueSize {
			q.head = 0
		}
		q.drops++
	}
}

// TryPop removes and returns the oldest scan code, reporting whether one was
// available. Foreground context only. Interrupts are masked for the duration
// so the producer cannot move tail (or head, on overflow) mid-read.
func (q *ScanQueue) TryPop() (byte, bool) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	if q.head == q.tail {
		return 0, false
	}
	b := q.buf[q.head]
	q.head++
	if q.head == ScanQueueSize {
		q.head = 0
	}
	return b, true
}

// Drops reports how many bytes have been discarded to overflow.
func (q *ScanQueue) Drops() uint32 {
	state := disableInterrupts()
	defer restoreInterrupts(state)
	return q.drops
}
