package schema

import (
	"context"
	"maps"
	"regexp"
)

// Store keeps named schema documents.
type Store interface {
	// Get returns the schema stored under name or ErrSchemaNotFound.
	Get(ctx context.Context, name string) (map[string]string, error)
	// Put creates or replaces the schema stored under name.
	Put(ctx context.Context, name string, schema map[string]string) error
	// Delete removes name. Deleting a missing schema returns ErrSchemaNotFound.
	Delete(ctx context.Context, name string) error
	// List returns the stored names, sorted.
	List(ctx context.Context) ([]string, error)
}

var nameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]{0,127}$`)

// ValidName reports whether name can be used as a schema name.
// Names double as file names, so path separators and leading dots are rejected.
func ValidName(name string) bool {
	return nameRegex.MatchString(name)
}

func checkName(name string) error {
	if !ValidName(name) {
		return ErrInvalidName
	}
	return nil
}

func clone(schema map[string]string) map[string]string {
	if schema == nil {
		return map[string]string{}
	}
	return maps.Clone(schema)
}
