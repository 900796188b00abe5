package typespec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/saylorsolutions/multilevelcli/internal/assert"
	"github.com/saylorsolutions/multilevelcli/internal/set"
)

var (
	ErrMalformed    = errors.New("malformed literal")
	ErrInvalidValue = errors.New("invalid value")
	ErrUnknownField = errors.New("unknown field")
)

// ParseError is returned for any literal that can't be parsed against its [Type].
// It wraps one of the sentinel errors in this package, so [errors.Is] can classify the failure,
// and it carries the byte offset within the literal text where the problem was found.
type ParseError struct {
	pos     int
	detail  string
	wrapped error
}

func errAt(pos int, sentinel error, format string, args ...any) error {
	return &ParseError{pos: pos, detail: fmt.Sprintf(format, args...), wrapped: sentinel}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", e.wrapped.Error(), e.pos, e.detail)
}

func (e *ParseError) Is(err error) bool {
	_, ok := err.(*ParseError)
	return ok
}

func (e *ParseError) Unwrap() error {
	return e.wrapped
}

// Pos returns the byte offset within the literal text where parsing failed.
func (e *ParseError) Pos() int {
	return e.pos
}

// Parse reads the literal text against the descriptor and produces a typed value.
//
// Scalars produce whatever their kind's coercion returns, arrays produce []any in literal
// order, and structs produce map[string]any. Struct field order within the literal doesn't
// matter, and structs may be sparse: a declared field may appear at most once, and fields
// absent from the literal are simply absent from the map.
//
// Nesting depth is bounded only by the input; the parser recurses as deep as the literal goes.
func Parse(t *Type, text string) (any, error) {
	assert.True("parse type is not nil", t != nil)
	s := &scanner{text: text}
	v, err := s.value(t)
	if err != nil {
		return nil, err
	}
	s.skipSpace()
	if !s.eof() {
		return nil, errAt(s.pos, ErrMalformed, "unexpected trailing text %q", s.text[s.pos:])
	}
	return v, nil
}

type scanner struct {
	text string
	pos  int
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.text)
}

func (s *scanner) peek() byte {
	return s.text[s.pos]
}

func (s *scanner) skipSpace() {
	for !s.eof() && (s.peek() == ' ' || s.peek() == '\t') {
		s.pos++
	}
}

func (s *scanner) value(t *Type) (any, error) {
	s.skipSpace()
	switch t.shape {
	case shapeArray:
		return s.array(t)
	case shapeStruct:
		return s.structure(t)
	default:
		return s.scalar(t)
	}
}

func (s *scanner) scalar(t *Type) (any, error) {
	start := s.pos
	raw, err := s.scalarText()
	if err != nil {
		return nil, err
	}
	v, cerr := t.coerce(unquote(raw))
	if cerr != nil {
		return nil, errAt(start, ErrInvalidValue, "%q is not a valid %s: %v", strings.TrimSpace(raw), t.scalar, cerr)
	}
	return v, nil
}

// scalarText reads raw scalar text up to the enclosing delimiter, honoring quotes and escapes
// so values like 'this, is me' can contain delimiter characters. A quote only opens at the
// start of the scalar; a quote character mid-value, like the apostrophe in O'Brien, is taken
// literally.
func (s *scanner) scalarText() (string, error) {
	var (
		buf    strings.Builder
		quote  byte
		escape bool
	)
	for !s.eof() {
		c := s.peek()
		switch {
		case escape:
			buf.WriteByte(c)
			escape = false
		case c == '\\':
			escape = true
		case quote != 0:
			if c == quote {
				quote = 0
			}
			buf.WriteByte(c)
		case (c == '\'' || c == '"') && buf.Len() == 0:
			quote = c
			buf.WriteByte(c)
		case c == ',' || c == ']' || c == '}':
			return buf.String(), nil
		default:
			buf.WriteByte(c)
		}
		s.pos++
	}
	if quote != 0 {
		return "", errAt(s.pos, ErrMalformed, "unterminated %q quote", string(quote))
	}
	return buf.String(), nil
}

func unquote(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) >= 2 {
		first, last := raw[0], raw[len(raw)-1]
		if first == last && (first == '\'' || first == '"') {
			return raw[1 : len(raw)-1]
		}
	}
	return raw
}

func (s *scanner) array(t *Type) (any, error) {
	if s.eof() || s.peek() != '[' {
		return nil, errAt(s.pos, ErrInvalidValue, "value of type %s must conform to '[v1,v2,...]'", t.Describe())
	}
	open := s.pos
	s.pos++
	vals := []any{}
	s.skipSpace()
	if !s.eof() && s.peek() == ']' {
		s.pos++
		return vals, nil
	}
	for {
		s.skipSpace()
		if s.eof() {
			return nil, errAt(open, ErrMalformed, "unterminated '[' delimiter")
		}
		v, err := s.value(t.elem)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
		s.skipSpace()
		if s.eof() {
			return nil, errAt(open, ErrMalformed, "unterminated '[' delimiter")
		}
		c := s.peek()
		s.pos++
		if c == ']' {
			return vals, nil
		}
		if c != ',' {
			return nil, errAt(s.pos-1, ErrMalformed, "expected ',' or ']', found %q", string(c))
		}
	}
}

func (s *scanner) structure(t *Type) (any, error) {
	if s.eof() || s.peek() != '{' {
		return nil, errAt(s.pos, ErrInvalidValue, "value of type %s must conform to '{k1=v1,k2=v2,...}'", t.Describe())
	}
	open := s.pos
	s.pos++
	seen := set.New[string]()
	vals := make(map[string]any, len(t.fields))
	s.skipSpace()
	closed := false
	if !s.eof() && s.peek() == '}' {
		s.pos++
		closed = true
	}
	for !closed {
		s.skipSpace()
		if s.eof() {
			return nil, errAt(open, ErrMalformed, "unterminated '{' delimiter")
		}
		key, err := s.fieldKey()
		if err != nil {
			return nil, err
		}
		ft, ok := t.byName[key]
		if !ok {
			return nil, errAt(s.pos, ErrUnknownField, "field %q is not part of %s", key, t.Describe())
		}
		if seen.Has(key) {
			return nil, errAt(s.pos, ErrDuplicateField, "field %q appears more than once", key)
		}
		seen.Add(key)
		v, err := s.value(ft)
		if err != nil {
			return nil, err
		}
		vals[key] = v
		s.skipSpace()
		if s.eof() {
			return nil, errAt(open, ErrMalformed, "unterminated '{' delimiter")
		}
		c := s.peek()
		s.pos++
		if c == '}' {
			closed = true
		} else if c != ',' {
			return nil, errAt(s.pos-1, ErrMalformed, "expected ',' or '}', found %q", string(c))
		}
	}
	return vals, nil
}

// fieldKey reads a struct field name up to its '=' or ':' separator.
func (s *scanner) fieldKey() (string, error) {
	s.skipSpace()
	start := s.pos
	for !s.eof() {
		c := s.peek()
		if c == '=' || c == ':' {
			key := strings.TrimSpace(s.text[start:s.pos])
			s.pos++
			if len(key) == 0 {
				return "", errAt(start, ErrMalformed, "empty field name")
			}
			return key, nil
		}
		if c == ',' || c == '}' || c == '{' || c == '[' {
			break
		}
		s.pos++
	}
	return "", errAt(start, ErrMalformed, "field %q has no '=' or ':' separator", strings.TrimSpace(s.text[start:s.pos]))
}
