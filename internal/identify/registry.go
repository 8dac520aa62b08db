// Package identify recovers the role name behind a previously rendered
// instruction message. Two signals, in fixed precedence: the exact
// "You are <name>" header a persona rendering leaves in the first line,
// then a fixed-offset window of the first line looked up against the
// identification keys persisted at creation time. The offsets are a
// contract with already-persisted roles; changing them silently breaks
// identification for existing data.
package identify

import (
	"strings"

	"github.com/ppiankov/rolecall/internal/role"
)

// Fallback window bounds into the first message line. Offset 8 skips a
// fixed-width transcript prefix ("system: "); 27 aligns the window with
// the identification keys derived at creation time.
const (
	windowStart = 8
	windowEnd   = 27
)

// Registry maps identification key phrases to role names. It is built
// once from a full store scan and read-only afterwards; a process that
// changes records must rebuild it.
type Registry struct {
	keys map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{keys: make(map[string]string)}
}

// Build scans every persisted record and folds its identification key
// into a fresh registry, in store scan order.
func Build(store *role.Store) (*Registry, error) {
	records, err := store.Scan()
	if err != nil {
		return nil, err
	}
	return FromRecords(records), nil
}

// FromRecords folds already-loaded records into a fresh registry, in
// the given order.
func FromRecords(records []role.Record) *Registry {
	r := NewRegistry()
	for _, rec := range records {
		r.Add(rec.Key.Phrase, rec.RegistryName())
	}
	return r
}

// Add inserts a key phrase → name mapping. Empty phrases are skipped.
// Key phrases are not guaranteed unique across user-created roles;
// later insertions shadow earlier ones (last-loaded-wins).
func (r *Registry) Add(phrase, name string) {
	if phrase == "" {
		return
	}
	r.keys[phrase] = name
}

// Len returns the number of mapped key phrases.
func (r *Registry) Len() int {
	return len(r.keys)
}

// Resolve maps a rendered message back to a role name. Returns
// ok=false when the message is empty or matches no known role — a
// legitimate "not a recognized role instruction" outcome, never an
// error.
func (r *Registry) Resolve(message string) (string, bool) {
	if message == "" {
		return "", false
	}

	line := firstLine(message)

	// Primary signal: the persona header names the role outright.
	if i := strings.Index(line, role.PersonaPrefix); i >= 0 {
		return strings.TrimSpace(line[i+len(role.PersonaPrefix):]), true
	}

	// Fallback: fixed window aligned with creation-time keys.
	if name, ok := r.keys[window(line)]; ok {
		return name, true
	}

	return "", false
}

func firstLine(message string) string {
	line, _, _ := strings.Cut(message, "\n")
	return strings.TrimSuffix(line, "\r")
}

// window slices line to [windowStart:windowEnd] in characters, clamped
// to the line's length.
func window(line string) string {
	runes := []rune(line)
	if len(runes) <= windowStart {
		return ""
	}
	end := windowEnd
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[windowStart:end])
}
