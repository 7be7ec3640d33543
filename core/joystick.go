// Joystick polling
// Samples one stick's direction and button lines each loop iteration and
// replays any change onto the crosspoint array.
package core

// Joystick sample bit layout, after active-low inversion.
const (
	joyUp      = 0x01
	joyDown    = 0x02
	joyLeft    = 0x04
	joyRight   = 0x08
	joyButton1 = 0x10
	joyButton2 = 0x20

	joyDirMask = 0x0F
)

// JoystickPins assigns one stick's input lines. All are active low and
// expected to be configured with pull-ups.
type JoystickPins struct {
	Up, Down, Left, Right GPIOPin
	Button1, Button2      GPIOPin
}

// Joystick polls one stick and drives its share of the switch array. Only
// changes are acted on: an unchanged sample is a no-op, so steady state
// costs six pin reads and nothing else. There is no temporal debounce;
// contact bounce observed across two polls is replayed as two changes.
type Joystick struct {
	matrix SwitchArray
	pins   JoystickPins
	wiring JoystickWiring

	prev uint8
}

// NewJoystick configures the stick's input pins and returns the poller.
func NewJoystick(matrix SwitchArray, pins JoystickPins, wiring JoystickWiring) (*Joystick, error) {
	g := MustGPIO()
	for _, pin := range []GPIOPin{
		pins.Up, pins.Down, pins.Left, pins.Right, pins.Button1, pins.Button2,
	} {
		if err := g.ConfigureInputPullUp(pin); err != nil {
			return nil, err
		}
	}
	return &Joystick{matrix: matrix, pins: pins, wiring: wiring}, nil
}

// sample reads the six input lines into an active-high bitfield.
func (j *Joystick) sample() uint8 {
	g := MustGPIO()
	var s uint8
	if !g.ReadPin(j.pins.Up) {
		s |= joyUp
	}
	if !g.ReadPin(j.pins.Down) {
		s |= joyDown
	}
	if !g.ReadPin(j.pins.Left) {
		s |= joyLeft
	}
	if !g.ReadPin(j.pins.Right) {
		s |= joyRight
	}
	if !g.ReadPin(j.pins.Button1) {
		s |= joyButton1
	}
	if !g.ReadPin(j.pins.Button2) {
		s |= joyButton2
	}
	return s
}

// Poll samples the stick and, when the sample differs from the previous
// one, rewrites the affected crosspoints. Switches no longer needed are
// opened before the new ones are closed, so a transition never bridges
// contacts from two different directions. Poll reports whether a change
// was handled.
func (j *Joystick) Poll() bool {
	cur := j.sample()
	if cur == j.prev {
		return false
	}

	w := &j.wiring
	set := j.matrix.SetCrosspoint

	set(w.Button1, cur&joyButton1 != 0)
	set(w.Button2, cur&joyButton2 != 0)

	// Each direction case opens every direction switch it does not use,
	// then closes its own. Diagonals close both cardinals plus their
	// dedicated extra contact. Contradictory bit patterns (up+down,
	// left+right combinations) fail safe to idle.
	switch cur & joyDirMask {
	case joyUp:
		set(w.Down, false)
		set(w.Left, false)
		set(w.Right, false)
		set(w.UpLeftExtra, false)
		set(w.UpRightDownLeftExtra, false)
		set(w.DownRightExtra, false)
		set(w.Up, true)

	case joyDown:
		set(w.Up, false)
		set(w.Left, false)
		set(w.Right, false)
		set(w.UpLeftExtra, false)
		set(w.UpRightDownLeftExtra, false)
		set(w.DownRightExtra, false)
		set(w.Down, true)

	case joyLeft:
		set(w.Up, false)
		set(w.Down, false)
		set(w.Right, false)
		set(w.UpLeftExtra, false)
		set(w.UpRightDownLeftExtra, false)
		set(w.DownRightExtra, false)
		set(w.Left, true)

	case joyRight:
		set(w.Up, false)
		set(w.Down, false)
		set(w.Left, false)
		set(w.UpLeftExtra, false)
		set(w.UpRightDownLeftExtra, false)
		set(w.DownRightExtra, false)
		set(w.Right, true)

	case joyUp | joyLeft:
		set(w.Down, false)
		set(w.Right, false)
		set(w.UpRightDownLeftExtra, false)
		set(w.DownRightExtra, false)
		set(w.UpLeftExtra, true)
		set(w.Up, true)
		set(w.Left, true)

	case joyUp | joyRight:
		set(w.Down, false)
		set(w.Left, false)
		set(w.UpLeftExtra, false)
		set(w.DownRightExtra, false)
		set(w.UpRightDownLeftExtra, true)
		set(w.Up, true)
		set(w.Right, true)

	case joyDown | joyRight:
		set(w.Up, false)
		set(w.Left, false)
		set(w.UpLeftExtra, false)
		set(w.UpRightDownLeftExtra, false)
		set(w.DownRightExtra, true)
		set(w.Down, true)
		set(w.Right, true)

	case joyDown | joyLeft:
		set(w.Up, false)
		set(w.Right, false)
		set(w.UpLeftExtra, false)
		set(w.DownRightExtra, false)
		set(w.UpRightDownLeftExtra, true)
		set(w.Down, true)
		set(w.Left, true)

	default:
		set(w.Up, false)
		set(w.Down, false)
		set(w.Left, false)
		set(w.Right, false)
		set(w.UpLeftExtra, false)
		set(w.UpRightDownLeftExtra, false)
		set(w.DownRightExtra, false)
	}

	j.prev = cur
	return true
}
