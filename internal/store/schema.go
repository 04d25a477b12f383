package store

import (
	"embed"
	"fmt"
)

//go:embed schema/*.json
var schemaFS embed.FS

// SchemaRegistry accepts JSON schemas for persisted keys
type SchemaRegistry interface {
	RegisterSchema(key string, schema string) error
}

// RegisterSchemas installs the schemas of the persisted collections so that
// malformed stored data is read as absent
func RegisterSchemas(r SchemaRegistry) error {
	for _, key := range []string{KeyTodos, KeySubjects} {
		data, err := schemaFS.ReadFile("schema/" + key + ".json")
		if err != nil {
			return fmt.Errorf("failed to read %s schema: %w", key, err)
		}
		if err := r.RegisterSchema(key, string(data)); err != nil {
			return err
		}
	}
	return nil
}
