package role

import (
	"encoding/json"
	"fmt"
)

// keyLength is how many characters of the raw description become the
// identification key. Persisted roles depend on this value; changing it
// breaks reverse lookup for existing records.
const keyLength = 20

// IdentKey is a record's identification key. On disk it is usually a
// bare string (the key phrase), but older records carry a structured
// {phrase, name} object whose name overrides the record name when the
// key is folded into a registry. Both forms load transparently.
type IdentKey struct {
	Phrase string
	Name   string
}

// identKeyObject is the structured on-disk form.
type identKeyObject struct {
	Phrase string `json:"phrase"`
	Name   string `json:"name"`
}

// MarshalJSON emits the bare-string form unless a name override is set.
func (k IdentKey) MarshalJSON() ([]byte, error) {
	if k.Name == "" {
		return json.Marshal(k.Phrase)
	}
	return json.Marshal(identKeyObject{Phrase: k.Phrase, Name: k.Name})
}

// UnmarshalJSON accepts either a bare string or a {phrase, name} object.
func (k *IdentKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		k.Phrase = s
		k.Name = ""
		return nil
	}
	var obj identKeyObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("identification key is neither string nor object: %w", err)
	}
	k.Phrase = obj.Phrase
	k.Name = obj.Name
	return nil
}

// Record is a persisted role. Immutable after creation: the body is
// already rendered and the identification key is already derived.
type Record struct {
	// Name is the storage key. One record per name, case-sensitive.
	Name string `json:"name"`
	// Body is the rendered instruction text sent to the model.
	Body string `json:"role"`
	// Key allows reverse lookup from a rendered message back to Name.
	Key IdentKey `json:"message_to_role"`
}

// RegistryName returns the name a registry should map this record's key
// phrase to. The structured key form carries its own name.
func (r Record) RegistryName() string {
	if r.Key.Name != "" {
		return r.Key.Name
	}
	return r.Name
}

// Claims reports whether a message's text claims this record's
// self-describing prefix.
func (r Record) Claims(message string) bool {
	if message == "" {
		return false
	}
	return containsPersonaPrefix(message, r.Name)
}
