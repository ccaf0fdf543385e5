package services

import (
	"strings"

	"github.com/algal/PersistableURL/internal/core/domain"
	"github.com/algal/PersistableURL/internal/core/ports/driven"
	"github.com/algal/PersistableURL/internal/core/ports/driving"
	"github.com/algal/PersistableURL/internal/logger"
)

// Ensure ConverterService implements the interface.
var _ driving.URIConverter = (*ConverterService)(nil)

// ConverterService converts between absolute and persistable URIs against
// an injected directory registry. It is stateless; both directions are pure
// string transforms apart from the registry lookups.
type ConverterService struct {
	registry driven.DirectoryRegistry
}

// NewConverterService creates a new converter over the given registry.
func NewConverterService(registry driven.DirectoryRegistry) *ConverterService {
	return &ConverterService{registry: registry}
}

// IsPersistable reports whether the URI's scheme exactly matches one of the
// four marker tokens.
func (s *ConverterService) IsPersistable(uri string) bool {
	_, ok := domain.ParsePersistable(uri)
	return ok
}

// ToAbsolute resolves a persistable URI to an absolute file URI using the
// current registry snapshot. Absolute file URIs pass through unchanged, so
// the conversion is idempotent. Anything else (http URIs, unknown markers,
// bare paths) reports ok=false.
func (s *ConverterService) ToAbsolute(uri string) (string, bool, error) {
	loc, ok := domain.ParsePersistable(uri)
	if !ok {
		if domain.IsFileURI(uri) {
			return uri, true, nil
		}
		logger.Debug("not convertible to absolute: %q", uri)
		return "", false, nil
	}

	root, err := s.registry.RootFor(loc.Root)
	if err != nil {
		return "", false, err
	}
	if loc.Path == "" {
		return root, true, nil
	}
	if !strings.HasSuffix(root, "/") {
		root += "/"
	}
	return root + loc.Path, true, nil
}

// ToPersistable rewrites an absolute file URI into persistable form by
// testing it against the four current roots in fixed priority order; the
// first matching root wins. Persistable URIs pass through unchanged.
// URIs outside every known root report ok=false.
func (s *ConverterService) ToPersistable(uri string) (string, bool, error) {
	if s.IsPersistable(uri) {
		return uri, true, nil
	}

	for _, r := range domain.Roots() {
		root, err := s.registry.RootFor(r)
		if err != nil {
			return "", false, err
		}
		rel, ok := relativeTo(uri, root)
		if !ok {
			continue
		}
		logger.Debug("matched %s root for %q", r, uri)
		return domain.PersistableLocation{Root: r, Path: rel}.String(), true, nil
	}

	logger.Debug("no storage root matches %q", uri)
	return "", false, nil
}

// relativeTo returns uri's suffix beneath root when root's path segments
// are a whole-segment prefix of uri's. Requiring a separator after the last
// root segment keeps a root like ".../Caches" from claiming URIs under
// ".../Caches2". The suffix is sliced out verbatim; "." and ".." segments
// are not normalized.
func relativeTo(uri, root string) (string, bool) {
	root = strings.TrimSuffix(root, "/")
	if uri == root || uri == root+"/" {
		return "", true
	}
	if !strings.HasPrefix(uri, root+"/") {
		return "", false
	}
	return uri[len(root)+1:], true
}
