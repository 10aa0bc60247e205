package render

// Control identifies a clickable element
type Control int

const (
	ControlNone Control = iota
	ControlToggle
	ControlReset
	ControlMute
	ControlInput
	ControlTestStart
	ControlTestTick
	ControlTestEnd
)

// Rect is a screen region in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether cell x, y lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout records where the last frame placed each control
type Layout struct {
	Controls map[Control]Rect
}

// Hit returns the control under cell x, y
func (l Layout) Hit(x, y int) Control {
	for c, r := range l.Controls {
		if r.Contains(x, y) {
			return c
		}
	}
	return ControlNone
}
