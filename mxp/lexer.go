package mxp

import "strings"

// Tag is a parsed "<name attr=value ...>" or "</name>" tag body (the
// text between the angle brackets, already separated from surrounding
// text by the phase state machine's quote-aware scan).
type Tag struct {
	Name       string
	Close      bool
	Positional []string
	Named      map[string]string
}

// scanWords splits s on whitespace, treating single- and double-quoted
// runs as atomic (spec.md §4.5: quoting rules, including "\"" inside
// "'" and vice versa).
func scanWords(s string) []string {
	var words []string
	i, n := 0, len(s)
	for i < n {
		for i < n && isSpace(s[i]) {
			i++
		}
		if i >= n {
			break
		}
		start := i
		for i < n && !isSpace(s[i]) {
			switch s[i] {
			case '\'':
				i++
				for i < n && s[i] != '\'' {
					i++
				}
				if i < n {
					i++
				}
			case '"':
				i++
				for i < n && s[i] != '"' {
					i++
				}
				if i < n {
					i++
				}
			default:
				i++
			}
		}
		words = append(words, s[start:i])
	}
	return words
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }

// splitAttr splits a single attribute token into name/value. Bare
// tokens (no unquoted "=") return hasName=false and value=the
// unquoted token.
func splitAttr(word string) (name, value string, hasName bool) {
	for i := 0; i < len(word); i++ {
		switch word[i] {
		case '=':
			return word[:i], unquote(word[i+1:]), true
		case '\'', '"':
			return "", unquote(word), false
		}
	}
	return "", unquote(word), false
}

func unquote(s string) string {
	if len(s) >= 2 {
		if s[0] == '\'' && s[len(s)-1] == '\'' {
			return s[1 : len(s)-1]
		}
		if s[0] == '"' && s[len(s)-1] == '"' {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// ParseTag parses the interior of a tag (without the surrounding "<"
// and ">"; a leading "/" marks a close tag).
func ParseTag(body string) Tag {
	close := false
	if strings.HasPrefix(body, "/") {
		close = true
		body = body[1:]
	}
	words := scanWords(body)
	t := Tag{Close: close, Named: map[string]string{}}
	if len(words) == 0 {
		return t
	}
	t.Name = strings.ToUpper(words[0])
	for _, w := range words[1:] {
		if k, v, hasName := splitAttr(w); hasName {
			t.Named[strings.ToUpper(k)] = v
		} else {
			t.Positional = append(t.Positional, v)
		}
	}
	return t
}

// EntityDef is a parsed "<!ENTITY name "value" ...>" directive.
type EntityDef struct {
	Name                             string
	Value                            string
	Desc                             string
	Private, Publish, Delete, Remove bool
	Add                              bool
}

// ParseEntityDef parses the text following "ENTITY " in a directive
// body.
func ParseEntityDef(body string) EntityDef {
	words := scanWords(body)
	var d EntityDef
	if len(words) == 0 {
		return d
	}
	d.Name = words[0]
	for _, w := range words[1:] {
		key, val, hasName := splitAttr(w)
		if hasName {
			if strings.ToUpper(key) == "DESC" {
				d.Desc = val
			}
			continue
		}
		switch strings.ToUpper(val) {
		case "PRIVATE":
			d.Private = true
		case "PUBLISH":
			d.Publish = true
		case "DELETE":
			d.Delete = true
		case "REMOVE":
			d.Remove = true
		case "ADD":
			d.Add = true
		default:
			if d.Value == "" {
				d.Value = val
			}
		}
	}
	return d
}

// ElementDef is a parsed "<!ELEMENT name "body" ATT=... ...>" directive.
type ElementDef struct {
	Name                string
	Body                string
	Att                 string
	Tag                 string
	Flag                string
	Open, Empty, Delete bool
}

// ParseElementDef parses the text following "ELEMENT " in a directive
// body.
func ParseElementDef(body string) ElementDef {
	words := scanWords(body)
	var d ElementDef
	if len(words) == 0 {
		return d
	}
	d.Name = words[0]
	for _, w := range words[1:] {
		key, val, hasName := splitAttr(w)
		if hasName {
			switch strings.ToUpper(key) {
			case "ATT":
				d.Att = val
			case "TAG":
				d.Tag = val
			case "FLAG":
				d.Flag = val
			}
			continue
		}
		switch strings.ToUpper(val) {
		case "OPEN":
			d.Open = true
		case "EMPTY":
			d.Empty = true
		case "DELETE":
			d.Delete = true
		default:
			if d.Body == "" {
				d.Body = val
			}
		}
	}
	return d
}

// ToElement converts a parsed definition to the stored Element shape.
func (d ElementDef) ToElement() Element {
	el := Element{Name: d.Name, Body: d.Body, Open: d.Open, Empty: d.Empty, Flag: d.Flag}
	for _, tok := range strings.Fields(d.Att) {
		if eq := strings.IndexByte(tok, '='); eq >= 0 {
			el.Named = append(el.Named, NamedParam{Name: tok[:eq], Default: tok[eq+1:]})
		} else {
			el.Positional = append(el.Positional, tok)
		}
	}
	for i := 0; i < len(d.Tag); i++ {
		if d.Tag[i] < '0' || d.Tag[i] > '9' {
			return el
		}
	}
	for _, c := range d.Tag {
		el.TagNumber = el.TagNumber*10 + int(c-'0')
	}
	return el
}
