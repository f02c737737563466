// Package jsmodule renders CommonJS data modules from an in-memory tree of
// JavaScript literal syntax, and evaluates such modules back into Go values.
//
// Building a tree instead of formatting strings keeps quoting in one place:
// a question containing `"` or a glyph containing a backtick renders as a
// valid literal.
package jsmodule

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"strings"
	"unicode"
)

const indentUnit = "  "

// Node is a JavaScript literal.
type Node interface {
	render(b *bytes.Buffer, depth int) error
}

// Quote selects how a String is delimited.
type Quote int

const (
	// QuoteDouble renders "text".
	QuoteDouble Quote = iota
	// QuoteTemplate renders `text`.
	QuoteTemplate
)

// String is a string literal.
type String struct {
	Value string
	Quote Quote
}

// Str returns a double-quoted string literal.
func Str(v string) String { return String{Value: v} }

// Template returns a template literal with no substitutions.
func Template(v string) String { return String{Value: v, Quote: QuoteTemplate} }

// Number is an integer literal.
type Number int64

// Bool is a boolean literal.
type Bool bool

// Field is one key of an object literal.
type Field struct {
	Key   string
	Value Node
}

// Object is an object literal. Multi-line objects put every field on its own
// line followed by a comma; inline objects render as { a: 1, b: 2 }.
type Object struct {
	Fields []Field
	Inline bool
}

// Array is an array literal with one element per line.
type Array []Node

// JSON embeds any JSON-encodable value, indented two spaces per level.
type JSON struct {
	Value any
}

// Module is a data module assigning Value to exports.Name.
type Module struct {
	// Header lines are rendered as // comments followed by a blank line.
	Header []string
	Name   string
	Value  Node
}

// Render writes the module source to w.
func (m Module) Render(w io.Writer) error {
	b, err := m.Bytes()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// Bytes returns the module source.
func (m Module) Bytes() ([]byte, error) {
	var b bytes.Buffer
	for _, line := range m.Header {
		b.WriteString("// ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if len(m.Header) > 0 {
		b.WriteByte('\n')
	}
	b.WriteString("exports.")
	b.WriteString(m.Name)
	b.WriteString(" = ")
	if err := m.Value.render(&b, 0); err != nil {
		return nil, err
	}
	b.WriteString(";\n")
	return b.Bytes(), nil
}

func (s String) render(b *bytes.Buffer, _ int) error {
	delim := byte('"')
	if s.Quote == QuoteTemplate {
		delim = '`'
	}
	b.WriteByte(delim)
	writeEscaped(b, s.Value, delim)
	b.WriteByte(delim)
	return nil
}

func (n Number) render(b *bytes.Buffer, _ int) error {
	b.WriteString(strconv.FormatInt(int64(n), 10))
	return nil
}

func (v Bool) render(b *bytes.Buffer, _ int) error {
	b.WriteString(strconv.FormatBool(bool(v)))
	return nil
}

func (o Object) render(b *bytes.Buffer, depth int) error {
	if len(o.Fields) == 0 {
		b.WriteString("{}")
		return nil
	}

	if o.Inline {
		b.WriteString("{ ")
		for i, f := range o.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			writeKey(b, f.Key)
			b.WriteString(": ")
			if err := f.Value.render(b, depth); err != nil {
				return err
			}
		}
		b.WriteString(" }")
		return nil
	}

	b.WriteString("{\n")
	for _, f := range o.Fields {
		writeIndent(b, depth+1)
		writeKey(b, f.Key)
		b.WriteString(": ")
		if err := f.Value.render(b, depth+1); err != nil {
			return err
		}
		b.WriteString(",\n")
	}
	writeIndent(b, depth)
	b.WriteByte('}')
	return nil
}

func (a Array) render(b *bytes.Buffer, depth int) error {
	if len(a) == 0 {
		b.WriteString("[]")
		return nil
	}

	b.WriteString("[\n")
	for i, el := range a {
		if i > 0 {
			b.WriteString(",\n")
		}
		writeIndent(b, depth+1)
		if err := el.render(b, depth+1); err != nil {
			return err
		}
	}
	b.WriteByte('\n')
	writeIndent(b, depth)
	b.WriteByte(']')
	return nil
}

func (j JSON) render(b *bytes.Buffer, depth int) error {
	var out bytes.Buffer
	enc := json.NewEncoder(&out)
	enc.SetEscapeHTML(false)
	enc.SetIndent(strings.Repeat(indentUnit, depth), indentUnit)
	if err := enc.Encode(j.Value); err != nil {
		return err
	}
	b.Write(bytes.TrimSuffix(out.Bytes(), []byte("\n")))
	return nil
}

func writeIndent(b *bytes.Buffer, depth int) {
	for range depth {
		b.WriteString(indentUnit)
	}
}

// writeKey writes k bare when it is an identifier and quoted otherwise.
func writeKey(b *bytes.Buffer, k string) {
	if isIdentifier(k) {
		b.WriteString(k)
		return
	}
	Str(k).render(b, 0) //nolint:errcheck // strings never fail to render
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

func writeEscaped(b *bytes.Buffer, s string, delim byte) {
	for i, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case rune(delim):
			b.WriteByte('\\')
			b.WriteByte(delim)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u2028', '\u2029':
			b.WriteString(`\u`)
			b.WriteString(strconv.FormatInt(int64(r), 16))
		case '$':
			if delim == '`' && strings.HasPrefix(s[i:], "${") {
				b.WriteString(`\$`)
				continue
			}
			b.WriteRune(r)
		default:
			if r < 0x20 {
				b.WriteString(`\u00`)
				b.WriteString(hex2(byte(r)))
				continue
			}
			b.WriteRune(r)
		}
	}
}

func hex2(c byte) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[c>>4], digits[c&0xf]})
}
