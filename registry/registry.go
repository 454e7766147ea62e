package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alimasry/go-version-registry/version"
)

var (
	ErrFileExists    = errors.New("file already exists")
	ErrFileNotFound  = errors.New("file not found")
	ErrEmptyRegistry = errors.New("registry has no files")
)

// LastFilePolicy decides which file AddVersionToLastFile appends to.
type LastFilePolicy int

const (
	// SortedLast picks the file whose name sorts greatest.
	SortedLast LastFilePolicy = iota
	// InsertedLast picks the most recently added file.
	InsertedLast
)

func (p LastFilePolicy) String() string {
	switch p {
	case SortedLast:
		return "sorted"
	case InsertedLast:
		return "inserted"
	default:
		return fmt.Sprintf("LastFilePolicy(%d)", int(p))
	}
}

// ParsePolicy maps "sorted" or "inserted" to a LastFilePolicy.
func ParsePolicy(s string) (LastFilePolicy, error) {
	switch strings.ToLower(s) {
	case "sorted", "":
		return SortedLast, nil
	case "inserted":
		return InsertedLast, nil
	}
	return 0, fmt.Errorf("unknown last-file policy %q", s)
}

// Registry tracks named files and answers cross-file version queries.
// Query results are ordered by file name, then by insertion order within
// each file.
type Registry interface {
	AddFile(name string) error
	AddVersionToLastFile(number int, state version.State, date, label, content string) error
	AddVersionByFileName(name string, number int, state version.State, date, content string) error
	BuildConfigurationByDate(date string) []version.Version
	BuildConfigurationByVersion(number int) []version.Version
	BuildConfigurationByState(state version.State) []version.Version
	Files() []string
	Versions(name string) ([]version.Version, error)
}
