package version

// File is a named, append-only history of versions.
type File struct {
	name     string
	versions []Version
}

// NewFile creates an empty file.
func NewFile(name string) *File {
	return &File{name: name}
}

// AddVersion appends a new version to the end of the history.
func (f *File) AddVersion(number int, state State, date, label, content string) {
	f.versions = append(f.versions, New(number, state, date, label, content))
}

// Versions returns a copy of the history in insertion order.
func (f *File) Versions() []Version {
	out := make([]Version, len(f.versions))
	copy(out, f.versions)
	return out
}

func (f *File) Name() string { return f.name }

// Len returns the number of stored versions.
func (f *File) Len() int { return len(f.versions) }
