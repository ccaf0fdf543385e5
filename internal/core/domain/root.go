package domain

// SymbolicRoot names one of the standard storage locations whose absolute
// filesystem position is assigned by the platform and may differ between
// process runs. The value is the marker token used as the scheme of a
// persistable URI.
type SymbolicRoot string

const (
	// BundleResource is the read-only location of build-time-installed resources.
	BundleResource SymbolicRoot = "app-bundleResource"
	// Documents is the user-visible documents directory.
	Documents SymbolicRoot = "app-documents"
	// ApplicationSupport is the per-install application support directory.
	ApplicationSupport SymbolicRoot = "app-appSupport"
	// Caches is the purgeable caches directory.
	Caches SymbolicRoot = "app-caches"
)

// Roots lists every symbolic root in the order used when detecting which
// root an absolute URI falls under. The order matters only when one root's
// absolute location nests inside another's; the first match wins.
func Roots() []SymbolicRoot {
	return []SymbolicRoot{BundleResource, ApplicationSupport, Caches, Documents}
}

// Marker returns the scheme token identifying this root in persistable URIs.
func (r SymbolicRoot) Marker() string {
	return string(r)
}

// IsValid reports whether r is one of the four known symbolic roots.
func (r SymbolicRoot) IsValid() bool {
	switch r {
	case BundleResource, Documents, ApplicationSupport, Caches:
		return true
	}
	return false
}

// String returns a human-readable name for the root.
func (r SymbolicRoot) String() string {
	switch r {
	case BundleResource:
		return "bundle resources"
	case Documents:
		return "documents"
	case ApplicationSupport:
		return "application support"
	case Caches:
		return "caches"
	}
	return "unknown"
}

// RootForMarker maps a marker token back to its symbolic root.
// Unknown tokens report ok=false; callers must reject them, not guess.
func RootForMarker(marker string) (SymbolicRoot, bool) {
	r := SymbolicRoot(marker)
	if r.IsValid() {
		return r, true
	}
	return "", false
}
