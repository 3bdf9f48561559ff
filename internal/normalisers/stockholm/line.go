package stockholm

import (
	"strings"
	"unicode"
)

// HeaderToken must appear somewhere in every Stockholm document.
const HeaderToken = "# STOCKHOLM"

const (
	referencePrefix = "#=GC RF"
	structurePrefix = "#=GC SS_cons"

	// Annotation rows carry "#=GC", the feature tag, then at least one payload token.
	minAnnotationFields = 3
)

type lineKind int

const (
	lineIgnored lineKind = iota
	lineHeader
	lineSequence
	lineReference
	lineStructure
)

func (k lineKind) String() string {
	switch k {
	case lineHeader:
		return "header"
	case lineSequence:
		return "sequence"
	case lineReference:
		return "reference"
	case lineStructure:
		return "structure"
	default:
		return "ignored"
	}
}

// line is one classified physical line.
type line struct {
	kind lineKind

	// name is set for sequence rows only.
	name string

	// payload is the sequence fragment or the concatenated annotation tokens.
	payload string
}

// classifyLine recognises the record type of a single physical line.
func classifyLine(raw string) line {
	s := strings.TrimSpace(raw)

	switch {
	case s == "":
		return line{kind: lineIgnored}
	case strings.HasPrefix(s, HeaderToken):
		return line{kind: lineHeader}
	case hasAnnotationPrefix(s, referencePrefix):
		return annotationLine(lineReference, s)
	case hasAnnotationPrefix(s, structurePrefix):
		return annotationLine(lineStructure, s)
	case s[0] == '#':
		return line{kind: lineIgnored}
	}

	fields := strings.Fields(s)
	if len(fields) != 2 {
		return line{kind: lineIgnored}
	}
	return line{kind: lineSequence, name: fields[0], payload: fields[1]}
}

// hasAnnotationPrefix reports whether s starts with prefix followed by whitespace.
func hasAnnotationPrefix(s, prefix string) bool {
	if len(s) <= len(prefix) || !strings.HasPrefix(s, prefix) {
		return false
	}
	return unicode.IsSpace(rune(s[len(prefix)]))
}

// annotationLine joins every token after "#=GC <tag>" with no separator.
// Rows without payload tokens are ignored.
func annotationLine(kind lineKind, s string) line {
	fields := strings.Fields(s)
	if len(fields) < minAnnotationFields {
		return line{kind: lineIgnored}
	}
	return line{kind: kind, payload: strings.Join(fields[2:], "")}
}
