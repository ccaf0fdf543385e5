package domain

import "time"

// Bookmark is a named persistable location. Because the stored URI defers
// root resolution to lookup time, a bookmark stays valid even when the
// platform relocates the sandbox between runs.
type Bookmark struct {
	// Name is the unique, user-chosen identifier.
	Name string
	// Location is the persistable URI ("<marker>:<relative-path>").
	Location string
	// CreatedAt records when the bookmark was first saved.
	CreatedAt time.Time
}
