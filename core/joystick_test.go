package core

import "testing"

var testStickPins = JoystickPins{
	Up: 16, Down: 17, Left: 18, Right: 19,
	Button1: 20, Button2: 21,
}

func newTestJoystick(t *testing.T) (*Joystick, *mockGPIODriver, *recordingArray) {
	t.Helper()
	mock := newMockGPIODriver()
	SetGPIODriver(mock)
	rec := &recordingArray{}
	j, err := NewJoystick(rec, testStickPins, LeftStickWiring)
	if err != nil {
		t.Fatalf("NewJoystick failed: %v", err)
	}
	return j, mock, rec
}

func TestJoystickIdleIsNoop(t *testing.T) {
	j, _, rec := newTestJoystick(t)
	if j.Poll() {
		t.Error("Poll reported a change with all lines released")
	}
	if len(rec.ops) != 0 {
		t.Errorf("idle poll drove %d crosspoints", len(rec.ops))
	}
}

func TestJoystickCardinal(t *testing.T) {
	j, mock, rec := newTestJoystick(t)
	w := LeftStickWiring

	mock.press(testStickPins.Up)
	if !j.Poll() {
		t.Fatal("Poll missed the up transition")
	}

	if !rec.has(w.Up, true) {
		t.Errorf("ops = %+v, up switch not closed", rec.ops)
	}
	for _, cleared := range []SwitchAddress{
		w.Down, w.Left, w.Right,
		w.UpLeftExtra, w.UpRightDownLeftExtra, w.DownRightExtra,
	} {
		if !rec.has(cleared, false) {
			t.Errorf("switch %#x not opened on up transition", cleared)
		}
	}
	if rec.has(w.Up, false) {
		t.Error("up switch was opened during its own assertion")
	}

	// Same sample next poll: nothing happens.
	rec.clear()
	if j.Poll() {
		t.Error("unchanged sample reported as a change")
	}
	if len(rec.ops) != 0 {
		t.Errorf("unchanged sample drove %d crosspoints", len(rec.ops))
	}
}

func TestJoystickDiagonalUpLeft(t *testing.T) {
	j, mock, rec := newTestJoystick(t)
	w := LeftStickWiring

	mock.press(testStickPins.Up)
	mock.press(testStickPins.Left)
	j.Poll()

	for _, closed := range []SwitchAddress{w.Up, w.Left, w.UpLeftExtra} {
		if !rec.has(closed, true) {
			t.Errorf("switch %#x not closed for up-left", closed)
		}
	}
	for _, cleared := range []SwitchAddress{
		w.Down, w.Right, w.UpRightDownLeftExtra, w.DownRightExtra,
	} {
		if !rec.has(cleared, false) {
			t.Errorf("switch %#x not opened for up-left", cleared)
		}
	}

	// The clears must all land before the first assert.
	firstClose := -1
	lastClear := -1
	for i, op := range rec.ops {
		if op.addr == w.Button1 || op.addr == w.Button2 {
			continue
		}
		if op.closed && firstClose < 0 {
			firstClose = i
		}
		if !op.closed {
			lastClear = i
		}
	}
	if lastClear > firstClose {
		t.Errorf("clear at %d after assert at %d: %+v", lastClear, firstClose, rec.ops)
	}
}

func TestJoystickSharedDiagonalExtra(t *testing.T) {
	j, mock, rec := newTestJoystick(t)
	w := LeftStickWiring

	// Up-right and down-left share one extra contact.
	mock.press(testStickPins.Up)
	mock.press(testStickPins.Right)
	j.Poll()
	if !rec.has(w.UpRightDownLeftExtra, true) {
		t.Errorf("ops = %+v, shared extra not closed for up-right", rec.ops)
	}

	mock.release(testStickPins.Up)
	mock.release(testStickPins.Right)
	mock.press(testStickPins.Down)
	mock.press(testStickPins.Left)
	rec.clear()
	j.Poll()
	if !rec.has(w.UpRightDownLeftExtra, true) {
		t.Errorf("ops = %+v, shared extra not closed for down-left", rec.ops)
	}
}

func TestJoystickButtonsIndependent(t *testing.T) {
	j, mock, rec := newTestJoystick(t)
	w := LeftStickWiring

	mock.press(testStickPins.Button1)
	j.Poll()
	if !rec.has(w.Button1, true) {
		t.Errorf("ops = %+v, button 1 not closed", rec.ops)
	}
	if !rec.has(w.Button2, false) {
		t.Errorf("ops = %+v, button 2 not rewritten open", rec.ops)
	}

	rec.clear()
	mock.press(testStickPins.Button2)
	j.Poll()
	if !rec.has(w.Button1, true) || !rec.has(w.Button2, true) {
		t.Errorf("ops = %+v, want both buttons closed", rec.ops)
	}
}

func TestJoystickContradictoryPatternIdles(t *testing.T) {
	j, mock, rec := newTestJoystick(t)
	w := LeftStickWiring

	mock.press(testStickPins.Up)
	j.Poll()
	rec.clear()

	// Up and down together cannot come from a working stick; fail safe
	// to no direction at all.
	mock.press(testStickPins.Down)
	j.Poll()

	for _, cleared := range []SwitchAddress{
		w.Up, w.Down, w.Left, w.Right,
		w.UpLeftExtra, w.UpRightDownLeftExtra, w.DownRightExtra,
	} {
		if !rec.has(cleared, false) {
			t.Errorf("switch %#x not opened for contradictory pattern", cleared)
		}
	}
	for _, op := range rec.ops {
		if op.closed && op.addr != w.Button1 && op.addr != w.Button2 {
			t.Errorf("direction switch %#x closed for contradictory pattern", op.addr)
		}
	}
}

func TestJoystickReleaseToIdle(t *testing.T) {
	j, mock, rec := newTestJoystick(t)
	w := LeftStickWiring

	mock.press(testStickPins.Right)
	j.Poll()
	rec.clear()

	mock.release(testStickPins.Right)
	if !j.Poll() {
		t.Fatal("Poll missed the release transition")
	}
	if !rec.has(w.Right, false) {
		t.Errorf("ops = %+v, right switch not opened on release", rec.ops)
	}
	for _, op := range rec.ops {
		if op.closed {
			t.Errorf("switch %#x closed while returning to idle", op.addr)
		}
	}
}
