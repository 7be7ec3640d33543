// PS/2 keyboard frame decoder
// Runs in interrupt context: the keyboard clocks one bit per falling edge of
// its clock line, and the handler reassembles 11-bit frames into scan codes.
package core

// PS2Decoder accumulates one PS/2 frame across clock-edge invocations.
// A frame is start bit (low), 8 data bits LSB first, odd parity, stop bit
// (high). The decoder owns its state exclusively; nothing else touches it.
type PS2Decoder struct {
	queue *ScanQueue

	data        byte
	bitCount    uint8
	parityCount uint8 // set bits seen across data and parity positions
	startBit    bool
	stopBit     bool

	badFrames uint32
}

// NewPS2Decoder returns a decoder pushing valid scan codes onto queue.
func NewPS2Decoder(queue *ScanQueue) *PS2Decoder {
	return &PS2Decoder{queue: queue}
}

// ClockEdge consumes one bit time. Call it from the clock-line falling-edge
// interrupt with the sampled state of the data line. After the 11th bit the
// frame is validated: start low, stop high, and an odd count of set bits over
// data plus parity. Valid frames are queued; invalid ones are dropped without
// ceremony, since the next start bit resynchronizes the stream.
func (d *PS2Decoder) ClockEdge(dataHigh bool) {
	d.bitCount++
	switch {
	case d.bitCount == 1:
		d.startBit = dataHigh

	case d.bitCount <= 9:
		// Data arrives least-significant-bit first.
		d.data >>= 1
		if dataHigh {
			d.data |= 0x80
			d.parityCount++
		}

	case d.bitCount == 10:
		if dataHigh {
			d.parityCount++
		}

	case d.bitCount == 11:
		d.stopBit = dataHigh
	}

	if d.bitCount > 10 {
		if d.parityCount%2 == 1 && !d.startBit && d.stopBit {
			d.queue.Push(d.data)
		} else {
			d.badFrames++
		}
		d.parityCount = 0
		d.bitCount = 0
	}
}

// BadFrames reports how many frames failed start/stop/parity validation.
func (d *PS2Decoder) BadFrames() uint32 {
	state := disableInterrupts()
	defer restoreInterrupts(state)
	return d.badFrames
}
