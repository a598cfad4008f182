// Package mxp implements the MUD eXtension Protocol: the tag/entity
// lexer, the line-mode trust gate, and the user-defined element and
// entity stores (spec.md §4.5).
package mxp

import (
	"strconv"
	"strings"
)

// Entity is a named textual substitution (spec.md §3 "Entity table").
type Entity struct {
	Value     string
	Published bool
	Private   bool
}

// IsValidEntityName reports whether name is a legal MXP entity/element
// identifier: ASCII alphanumeric plus "_-.", first character
// alphabetic. Grounded on original_source's mxp/entity/validation.rs.
func IsValidEntityName(name string) bool {
	if name == "" || !isAlpha(name[0]) {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !isAlphaNumeric(c) && c != '_' && c != '-' && c != '.' {
			return false
		}
	}
	return true
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || (c >= '0' && c <= '9')
}

// htmlEntities pre-seeds the entity table per spec.md §3.
var htmlEntities = map[string]string{
	"lt": "<", "gt": ">", "amp": "&", "quot": "\"", "apos": "'",
}

// EntityTable maps entity names to their resolved state.
type EntityTable struct {
	entries map[string]Entity
}

// NewEntityTable returns a table pre-seeded with the HTML named
// entities.
func NewEntityTable() *EntityTable {
	t := &EntityTable{entries: make(map[string]Entity, len(htmlEntities))}
	for name, value := range htmlEntities {
		t.entries[name] = Entity{Value: value, Published: true}
	}
	return t
}

// Resolve looks up "&name;" (name without the surrounding "&"/";") or a
// numeric "#NNN" reference. Returns ok=false for unknown entities so
// the caller can fall back to the literal text (spec.md §4.5, §8).
func (t *EntityTable) Resolve(name string) (string, bool) {
	if strings.HasPrefix(name, "#") {
		n, err := strconv.Atoi(name[1:])
		if err != nil || n < 0 || n > 0x10FFFF {
			return "", false
		}
		return string(rune(n)), true
	}
	e, ok := t.entries[name]
	if !ok {
		return "", false
	}
	return e.Value, true
}

// Define applies an "<!ENTITY name "value" ...>" directive. Returns the
// resulting Entity and whether it is to be surfaced as an
// EntityFragment (the PUBLISH flag; always false for a delete).
func (t *EntityTable) Define(name, value string, private, publish, add, remove, deleteIt bool) (Entity, bool) {
	if deleteIt {
		delete(t.entries, name)
		return Entity{}, false
	}
	cur, existed := t.entries[name]
	switch {
	case add && existed:
		cur.Value = joinSet(cur.Value, value, true)
	case remove && existed:
		cur.Value = joinSet(cur.Value, value, false)
	default:
		cur.Value = value
	}
	cur.Private = private
	if publish {
		cur.Published = true
	}
	t.entries[name] = cur
	return cur, publish
}

// joinSet adds or removes pipe-separated members of a set-valued
// entity (spec.md §4.5 "ADD/REMOVE treat the value as a pipe-separated
// set").
func joinSet(existing, delta string, add bool) string {
	members := map[string]bool{}
	var order []string
	if existing != "" {
		for _, m := range strings.Split(existing, "|") {
			if !members[m] {
				members[m] = true
				order = append(order, m)
			}
		}
	}
	for _, m := range strings.Split(delta, "|") {
		if m == "" {
			continue
		}
		if add {
			if !members[m] {
				members[m] = true
				order = append(order, m)
			}
		} else {
			delete(members, m)
		}
	}
	if !add {
		filtered := order[:0]
		for _, m := range order {
			if members[m] {
				filtered = append(filtered, m)
			}
		}
		order = filtered
	}
	return strings.Join(order, "|")
}

// Reset clears every non-persistent (non-Published) entity, as
// "<RESET>" requires (spec.md §4.5).
func (t *EntityTable) Reset() {
	for name, e := range t.entries {
		if !e.Published {
			delete(t.entries, name)
		}
	}
}
