package countdown

import "strings"

// Cue identifies one of the three timer sounds
type Cue int

const (
	CueStart Cue = iota
	CueTick
	CueEnd
)

// AllCues lists every cue in channel order
var AllCues = []Cue{CueStart, CueTick, CueEnd}

func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueTick:
		return "tick"
	case CueEnd:
		return "end"
	default:
		return "unknown"
	}
}

// ParseCue maps a cue name (case-insensitive) back to its Cue
func ParseCue(name string) (Cue, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "start":
		return CueStart, true
	case "tick":
		return CueTick, true
	case "end":
		return CueEnd, true
	}
	return 0, false
}
