package core

// Bridge ties the pollers together: two joysticks and the keyboard
// translator, all converging on one switch matrix. The target's main loop
// calls Poll forever; there is no scheduler and nothing ever blocks.
type Bridge struct {
	Matrix   *Matrix
	Queue    *ScanQueue
	Decoder  *PS2Decoder
	Keyboard *Keyboard
	Left     *Joystick
	Right    *Joystick
}

// BridgeConfig carries the build-time pin assignments.
type BridgeConfig struct {
	Matrix     MatrixPins
	LeftStick  JoystickPins
	RightStick JoystickPins
}

// NewBridge wires up every component and clears the whole switch array,
// since the MT8816 powers up in an undefined state.
func NewBridge(cfg BridgeConfig) (*Bridge, error) {
	matrix, err := NewMatrix(cfg.Matrix)
	if err != nil {
		return nil, err
	}
	matrix.ResetAll()

	left, err := NewJoystick(matrix, cfg.LeftStick, LeftStickWiring)
	if err != nil {
		return nil, err
	}
	right, err := NewJoystick(matrix, cfg.RightStick, RightStickWiring)
	if err != nil {
		return nil, err
	}

	queue := &ScanQueue{}
	return &Bridge{
		Matrix:   matrix,
		Queue:    queue,
		Decoder:  NewPS2Decoder(queue),
		Keyboard: NewKeyboard(queue, matrix),
		Left:     left,
		Right:    right,
	}, nil
}

// Poll runs one foreground iteration: left stick, right stick, then one
// keyboard byte. It reports whether anything was acted on, which the target
// uses to drive its activity LED.
func (b *Bridge) Poll() bool {
	active := b.Left.Poll()
	active = b.Right.Poll() || active
	active = b.Keyboard.Poll() || active
	return active
}

// StatsLine formats the diagnostic counters for the debug stream.
func (b *Bridge) StatsLine() string {
	return "[STATS] bad_frames=" + utoa(b.Decoder.BadFrames()) +
		" queue_drops=" + utoa(b.Queue.Drops()) +
		" unmapped=" + utoa(b.Keyboard.Unmapped())
}
