package core

// Test doubles shared across the package tests.

// pinWrite records one SetPin call in order.
type pinWrite struct {
	pin   GPIOPin
	value bool
}

// mockGPIODriver is a test implementation of GPIODriver. Outputs remember
// their last driven level, inputs return scripted levels (default high,
// matching released active-low switches on pull-ups).
type mockGPIODriver struct {
	outputs map[GPIOPin]bool
	inputs  map[GPIOPin]bool
	writes  []pinWrite
}

func newMockGPIODriver() *mockGPIODriver {
	return &mockGPIODriver{
		outputs: make(map[GPIOPin]bool),
		inputs:  make(map[GPIOPin]bool),
	}
}

func (m *mockGPIODriver) ConfigureOutput(pin GPIOPin) error {
	m.outputs[pin] = false
	return nil
}

func (m *mockGPIODriver) ConfigureInputPullUp(pin GPIOPin) error {
	if _, ok := m.inputs[pin]; !ok {
		m.inputs[pin] = true
	}
	return nil
}

func (m *mockGPIODriver) SetPin(pin GPIOPin, value bool) error {
	m.outputs[pin] = value
	m.writes = append(m.writes, pinWrite{pin: pin, value: value})
	return nil
}

func (m *mockGPIODriver) ReadPin(pin GPIOPin) bool {
	level, ok := m.inputs[pin]
	if !ok {
		return true
	}
	return level
}

// press drives an active-low input pin.
func (m *mockGPIODriver) press(pin GPIOPin)   { m.inputs[pin] = false }
func (m *mockGPIODriver) release(pin GPIOPin) { m.inputs[pin] = true }

func (m *mockGPIODriver) clearWrites() { m.writes = nil }

// latchedOp is one crosspoint write as the MT8816 would see it: the
// address and data line levels at the moment the strobe rose.
type latchedOp struct {
	col, row uint8
	closed   bool
}

// decodeLatches replays a pin-write log against the matrix pin assignment
// and returns the operations the chip latched.
func decodeLatches(pins MatrixPins, writes []pinWrite) []latchedOp {
	levels := make(map[GPIOPin]bool)
	var ops []latchedOp
	for _, w := range writes {
		if w.pin == pins.Strobe && w.value && !levels[pins.Strobe] {
			var col, row uint8
			if levels[pins.AX0] {
				col |= 0x01
			}
			if levels[pins.AX1] {
				col |= 0x02
			}
			if levels[pins.AX2] {
				col |= 0x04
			}
			if levels[pins.AX3] {
				col |= 0x08
			}
			if levels[pins.AY0] {
				row |= 0x01
			}
			if levels[pins.AY1] {
				row |= 0x02
			}
			ops = append(ops, latchedOp{col: col, row: row, closed: levels[pins.Data]})
		}
		levels[w.pin] = w.value
	}
	return ops
}

// switchOp records one SetCrosspoint call against a recording array.
type switchOp struct {
	addr   SwitchAddress
	closed bool
}

// recordingArray implements SwitchArray for translator and poller tests.
type recordingArray struct {
	ops []switchOp
}

func (r *recordingArray) SetCrosspoint(addr SwitchAddress, closed bool) {
	r.ops = append(r.ops, switchOp{addr: addr, closed: closed})
}

func (r *recordingArray) clear() { r.ops = nil }

// has reports whether an operation was recorded.
func (r *recordingArray) has(addr SwitchAddress, closed bool) bool {
	for _, op := range r.ops {
		if op.addr == addr && op.closed == closed {
			return true
		}
	}
	return false
}

var testMatrixPins = MatrixPins{
	AX0: 6, AX1: 7, AX2: 8, AX3: 9,
	AY0: 10, AY1: 11,
	Data:   12,
	Strobe: 13,
}
