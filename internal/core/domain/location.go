package domain

import "strings"

// PersistableLocation is the parsed form of a persistable URI: a symbolic
// root plus the relative path beneath it. The path carries no leading slash
// and may be empty, denoting the root itself. Values are immutable; the
// zero value is not valid.
type PersistableLocation struct {
	Root SymbolicRoot
	Path string
}

// ParsePersistable splits a URI of the form "<marker>:<relative-path>" into
// a PersistableLocation. It reports ok=false when the scheme is not one of
// the four marker tokens; foreign schemes are rejected, never coerced.
func ParsePersistable(uri string) (PersistableLocation, bool) {
	scheme, rest, found := strings.Cut(uri, ":")
	if !found {
		return PersistableLocation{}, false
	}
	root, ok := RootForMarker(scheme)
	if !ok {
		return PersistableLocation{}, false
	}
	return PersistableLocation{Root: root, Path: rest}, true
}

// String renders the location back to its URI form, "<marker>:<path>".
func (p PersistableLocation) String() string {
	return p.Root.Marker() + ":" + p.Path
}

// IsFileURI reports whether uri is an absolute file URI. The check is
// purely syntactic; the path is not dereferenced.
func IsFileURI(uri string) bool {
	return strings.HasPrefix(uri, "file://")
}
