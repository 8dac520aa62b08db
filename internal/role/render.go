package role

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMissingVariable means a {placeholder} token had no substitution
// value at render time.
var ErrMissingVariable = errors.New("missing template variable")

// PersonaPrefix is the self-describing header rendered in front of
// persona descriptions. Identification checks for it verbatim, so the
// exact text is load-bearing.
const PersonaPrefix = "You are "

// Vars maps placeholder names to substitution values.
type Vars map[string]string

var placeholderRe = regexp.MustCompile(`\{(\w+)\}`)

// Substitute replaces every {placeholder} token in text from vars.
// A placeholder with no matching entry is a rendering error. A nil
// vars set disables substitution entirely, even if placeholder-like
// tokens are present.
func Substitute(text string, vars Vars) (string, error) {
	if vars == nil {
		return text, nil
	}

	var missing string
	out := placeholderRe.ReplaceAllStringFunc(text, func(tok string) string {
		name := tok[1 : len(tok)-1]
		val, ok := vars[name]
		if !ok {
			if missing == "" {
				missing = name
			}
			return tok
		}
		return val
	})
	if missing != "" {
		return "", fmt.Errorf("%w: {%s}", ErrMissingVariable, missing)
	}
	return out, nil
}

// Render produces the stored body for a description. Message-style
// content passes through unchanged; persona descriptions get the
// "You are <name>" header that identification later keys on.
func Render(name, description string, persona bool) string {
	if !persona {
		return description
	}
	return PersonaPrefix + name + "\n" + description
}

// DeriveKey returns the identification key for a raw description: its
// first 20 characters. Shorter descriptions yield shorter keys; an
// empty description yields an empty key, which registries skip.
func DeriveKey(raw string) string {
	runes := []rune(raw)
	if len(runes) > keyLength {
		runes = runes[:keyLength]
	}
	return string(runes)
}

// New builds a record from a raw description. Variables are substituted
// first, the identification key is derived from the substituted text,
// and the body is rendered last — so the key stays aligned with the
// text that actually reaches the model.
func New(name, description string, vars Vars, persona bool) (Record, error) {
	raw, err := Substitute(description, vars)
	if err != nil {
		return Record{}, err
	}
	return Record{
		Name: name,
		Body: Render(name, raw, persona),
		Key:  IdentKey{Phrase: DeriveKey(raw)},
	}, nil
}

func containsPersonaPrefix(message, name string) bool {
	return strings.Contains(message, PersonaPrefix+name)
}
