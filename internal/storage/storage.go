// Package storage is a best-effort key/value cache for JSON-serializable
// values. It never reports failures to its callers: anything that goes wrong
// is logged and surfaces as an absent value.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrNotFound is returned by a Backend when a key holds no value
var ErrNotFound = errors.New("storage: key not found")

// Backend is a durable byte store keyed by name
type Backend interface {
	Read(key string) ([]byte, error)
	// Write stores every entry, atomically when the backend can
	Write(entries map[string][]byte) error
	Delete(key string) error
}

// Locals serializes values to JSON on top of a Backend
type Locals struct {
	backend Backend
	logger  *log.Logger
	schemas map[string]*jsonschema.Schema
}

// New creates a Locals. A nil backend gives a store where reads are always
// absent and writes are dropped.
func New(backend Backend, logger *log.Logger) *Locals {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Locals{
		backend: backend,
		logger:  logger.WithPrefix("storage"),
		schemas: make(map[string]*jsonschema.Schema),
	}
}

// Available reports whether a backend is attached
func (l *Locals) Available() bool {
	return l.backend != nil
}

// RegisterSchema compiles a JSON schema that stored values for key must
// satisfy. Values that do not are treated as absent.
func (l *Locals) RegisterSchema(key string, schema string) error {
	url := "https://wille.local/schemas/" + key + ".json"
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, strings.NewReader(schema)); err != nil {
		return fmt.Errorf("failed to add schema for %q: %w", key, err)
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return fmt.Errorf("failed to compile schema for %q: %w", key, err)
	}
	l.schemas[key] = compiled
	return nil
}

// Get decodes the value stored under key into v. It returns false when the
// value is absent or cannot be read, leaving v untouched.
func (l *Locals) Get(key string, v any) bool {
	if l.backend == nil {
		return false
	}

	data, err := l.backend.Read(key)
	if errors.Is(err, ErrNotFound) {
		return false
	}
	if err != nil {
		l.logger.Warn("read failed", "key", key, "err", err)
		return false
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return false
	}

	if schema, ok := l.schemas[key]; ok {
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			l.logger.Warn("stored value is not JSON", "key", key, "err", err)
			return false
		}
		if err := schema.Validate(doc); err != nil {
			l.logger.Warn("stored value does not match schema", "key", key, "err", err)
			return false
		}
	}

	if err := json.Unmarshal(data, v); err != nil {
		l.logger.Warn("decode failed", "key", key, "err", err)
		return false
	}
	return true
}

// Set stores v under key
func (l *Locals) Set(key string, v any) {
	l.SetMany(map[string]any{key: v})
}

// SetMany stores every value in one backend write
func (l *Locals) SetMany(values map[string]any) {
	if l.backend == nil || len(values) == 0 {
		return
	}

	entries := make(map[string][]byte, len(values))
	for key, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			l.logger.Warn("encode failed", "key", key, "err", err)
			return
		}
		entries[key] = data
	}

	if err := l.backend.Write(entries); err != nil {
		l.logger.Warn("write failed", "keys", len(entries), "err", err)
		return
	}
	l.logger.Debug("wrote", "keys", len(entries))
}

// Remove deletes the value stored under key
func (l *Locals) Remove(key string) {
	if l.backend == nil {
		return
	}
	if err := l.backend.Delete(key); err != nil && !errors.Is(err, ErrNotFound) {
		l.logger.Warn("delete failed", "key", key, "err", err)
	}
}
