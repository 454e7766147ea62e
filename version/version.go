package version

import (
	"fmt"
	"strings"
)

// State is the lifecycle state of a version.
type State int

const (
	Fixed State = iota
	Editing
)

func (s State) String() string {
	switch s {
	case Fixed:
		return "Fixed"
	case Editing:
		return "Editing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ParseState converts "Fixed" or "Editing" (any case) to a State.
func ParseState(s string) (State, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fixed":
		return Fixed, nil
	case "editing":
		return Editing, nil
	}
	return 0, fmt.Errorf("unknown version state %q", s)
}

// Version is one immutable revision of a file's content.
//
// Dates are compared as strings, so they should be zero-padded
// (YYYY-MM-DD) for ordering to make sense.
type Version struct {
	number  int
	state   State
	date    string
	label   string
	content string
}

// New creates a version. label is the file name shown next to the
// version; it is not checked against the file that ends up holding it.
func New(number int, state State, date, label, content string) Version {
	return Version{
		number:  number,
		state:   state,
		date:    date,
		label:   label,
		content: content,
	}
}

func (v Version) Number() int     { return v.number }
func (v Version) State() State    { return v.state }
func (v Version) Date() string    { return v.date }
func (v Version) Label() string   { return v.label }
func (v Version) Content() string { return v.content }
