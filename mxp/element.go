package mxp

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// NamedParam is a named parameter with a default value, from an
// element's ATT="..." list (spec.md §4.5).
type NamedParam struct {
	Name    string
	Default string
}

// Element is a user-defined MXP tag (spec.md §3 "Element table").
type Element struct {
	Name       string
	Positional []string // positional parameter names, in order
	Named      []NamedParam
	Body       string // template; "&p1;" etc. splice argument values
	Open       bool   // open tags leave style applied until close; empty tags don't
	Empty      bool
	TagNumber  int // reserved line-mode tag number (TAG=n), 0 if unset
	Flag       string
}

// elementCacheCap bounds the per-element expansion cache: a single
// screen refresh can invoke the same status-bar element dozens of
// times with the same arguments (spec.md domain stack, SPEC_FULL.md §8).
const elementCacheCap = 64

// ElementTable maps tag names (case-insensitive) to their definitions,
// with an LRU cache of recently expanded bodies.
type ElementTable struct {
	defs  map[string]*Element
	cache *lru.Cache[string, string]
}

// NewElementTable returns an empty element table.
func NewElementTable() *ElementTable {
	cache, _ := lru.New[string, string](elementCacheCap)
	return &ElementTable{defs: make(map[string]*Element), cache: cache}
}

// Define adds or replaces a user element, or removes it when deleteIt
// is set ("<!ELEMENT name ... DELETE>").
func (t *ElementTable) Define(el Element, deleteIt bool) {
	key := strings.ToUpper(el.Name)
	if deleteIt {
		delete(t.defs, key)
		return
	}
	t.defs[key] = &el
	t.cache.Purge()
}

// Lookup finds a user-defined element by name, case-insensitively.
func (t *ElementTable) Lookup(name string) (*Element, bool) {
	el, ok := t.defs[strings.ToUpper(name)]
	return el, ok
}

// Expand splices positional and named argument values into an
// element's body template, caching the result per (name, args) so a
// repeated invocation (a redrawn status line, say) skips re-scanning
// the template.
func (t *ElementTable) Expand(el *Element, positional []string, named map[string]string) string {
	cacheKey := strings.ToUpper(el.Name) + "\x00" + strings.Join(positional, "\x01")
	for _, np := range el.Named {
		cacheKey += "\x00" + np.Name + "=" + named[np.Name]
	}
	if cached, ok := t.cache.Get(cacheKey); ok {
		return cached
	}

	args := make(map[string]string, len(el.Positional)+len(el.Named))
	for i, name := range el.Positional {
		if i < len(positional) {
			args[name] = positional[i]
		}
	}
	for _, np := range el.Named {
		if v, ok := named[np.Name]; ok {
			args[np.Name] = v
		} else {
			args[np.Name] = np.Default
		}
	}
	// Positional arguments are also addressable as &1; &2; ...
	for i, v := range positional {
		args[itoa(i+1)] = v
	}

	expanded := substituteParams(el.Body, args)
	t.cache.Add(cacheKey, expanded)
	return expanded
}

// substituteParams replaces "&name;" occurrences in body with args[name],
// leaving unknown references untouched (they'll surface later as
// unknown entities if re-lexed).
func substituteParams(body string, args map[string]string) string {
	var out strings.Builder
	i := 0
	for i < len(body) {
		if body[i] != '&' {
			out.WriteByte(body[i])
			i++
			continue
		}
		end := strings.IndexByte(body[i+1:], ';')
		if end < 0 {
			out.WriteByte(body[i])
			i++
			continue
		}
		name := body[i+1 : i+1+end]
		if v, ok := args[name]; ok {
			out.WriteString(v)
			i += end + 2
			continue
		}
		out.WriteByte(body[i])
		i++
	}
	return out.String()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[pos:])
}
