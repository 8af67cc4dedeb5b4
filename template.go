package sqltpl

import "strings"

type markerKind byte

const (
	markerNone  markerKind = 0
	markerValue markerKind = '?'
	markerInt   markerKind = 'd'
	markerFloat markerKind = 'f'
	markerArray markerKind = 'a'
	markerIdent markerKind = '#'
)

// segment is a run of literal text or a single placeholder.
type segment struct {
	text   string
	marker markerKind
}

// template is the compiled form of a query template. Compiled templates are
// immutable and safe to share between goroutines.
type template struct {
	source   string
	segments []segment
	markers  int
}

// parseTemplate splits a query template into literal and placeholder
// segments. Any text is a valid template: a ? followed by anything other
// than d, f, a or # is an untyped placeholder and the next character stays
// literal. Braces are kept inside literal segments and resolved after
// substitution.
func parseTemplate(source string) *template {
	t := &template{source: source}

	rest := source
	for {
		i := strings.IndexByte(rest, '?')
		if i < 0 {
			break
		}
		if i > 0 {
			t.segments = append(t.segments, segment{text: rest[:i]})
		}

		marker := markerValue
		next := i + 1
		if next < len(rest) {
			switch rest[next] {
			case 'd':
				marker = markerInt
				next++
			case 'f':
				marker = markerFloat
				next++
			case 'a':
				marker = markerArray
				next++
			case '#':
				marker = markerIdent
				next++
			}
		}
		t.segments = append(t.segments, segment{marker: marker})
		t.markers++
		rest = rest[next:]
	}
	if rest != "" {
		t.segments = append(t.segments, segment{text: rest})
	}

	return t
}
