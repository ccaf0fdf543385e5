package driving

// URIConverter maps between absolute file URIs, which are only valid for
// the current process run, and persistable URIs, which encode a symbolic
// root plus a relative path and survive sandbox relocation.
//
// Both conversions are pure functions of the input and the registry
// snapshot behind the implementation; no conversion history is retained.
// The ok result is the routine "cannot convert" signal; errors are reserved
// for registry failures and must be propagated.
type URIConverter interface {
	// IsPersistable reports whether the URI's scheme is one of the four
	// marker tokens. Purely syntactic; the registry is not consulted.
	IsPersistable(uri string) bool

	// ToAbsolute resolves a persistable URI against the current roots.
	// Already-absolute file URIs pass through unchanged. Any other input,
	// including unknown markers, reports ok=false.
	ToAbsolute(uri string) (abs string, ok bool, err error)

	// ToPersistable rewrites an absolute file URI under one of the four
	// roots into its persistable form. Already-persistable URIs pass
	// through unchanged. URIs outside every root report ok=false.
	ToPersistable(uri string) (persistable string, ok bool, err error)
}
