package typespec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/saylorsolutions/multilevelcli/internal/assert"
)

var (
	ErrUnknownKind    = errors.New("unknown scalar kind")
	ErrDuplicateField = errors.New("duplicate field")
)

// Coercion converts the trimmed, unquoted text of a scalar literal into a typed value.
type Coercion = func(text string) (any, error)

type shape int

const (
	shapeScalar shape = iota
	shapeArray
	shapeStruct
)

// Type describes the shape of a single argument or option value.
// A Type is built once with [Scalar], [Array], or [Struct] and is read-only afterward.
type Type struct {
	shape  shape
	scalar string
	coerce Coercion
	elem   *Type
	fields []Field
	byName map[string]*Type
}

// Field is a named member of a struct [Type].
type Field struct {
	Name string
	Type *Type
}

// Registry maps scalar kind names to their coercion functions.
// The zero value is not usable; create one with [NewRegistry].
type Registry struct {
	kinds map[string]Coercion
}

// NewRegistry returns a [Registry] seeded with the builtin scalar kinds:
// string, int (int64), float (float64), bool, and duration ([time.Duration]).
func NewRegistry() *Registry {
	return &Registry{kinds: map[string]Coercion{
		"string":   coerceString,
		"int":      coerceInt,
		"float":    coerceFloat,
		"bool":     coerceBool,
		"duration": coerceDuration,
	}}
}

// Register adds a scalar kind to the [Registry].
// Registering an empty kind name, a nil coercion, or a kind that already exists is an error.
func (r *Registry) Register(kind string, fn Coercion) error {
	if len(kind) == 0 || fn == nil {
		return errors.New("scalar kind requires a name and a coercion function")
	}
	if _, ok := r.kinds[kind]; ok {
		return fmt.Errorf("scalar kind %q is already registered", kind)
	}
	r.kinds[kind] = fn
	return nil
}

// Scalar returns a scalar [Type] for the named kind, or [ErrUnknownKind] if it was never registered.
func (r *Registry) Scalar(kind string) (*Type, error) {
	fn, ok := r.kinds[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return &Type{shape: shapeScalar, scalar: kind, coerce: fn}, nil
}

// DefaultRegistry backs the package-level [Scalar] function and the ready-made scalar types.
var DefaultRegistry = NewRegistry()

// Scalar returns a scalar [Type] for a kind registered with [DefaultRegistry].
func Scalar(kind string) (*Type, error) {
	return DefaultRegistry.Scalar(kind)
}

// MustScalar is a [Scalar] that panics instead of returning an error.
// The developer usually knows whether the kind exists, so this keeps tree definitions terse.
func MustScalar(kind string) *Type {
	t, err := Scalar(kind)
	if err != nil {
		panic(err)
	}
	return t
}

// Ready-made descriptors for the builtin scalar kinds.
var (
	String   = MustScalar("string")
	Int      = MustScalar("int")
	Float    = MustScalar("float")
	Bool     = MustScalar("bool")
	Duration = MustScalar("duration")
)

// Array returns an array [Type] with the given element type.
// Array lengths are unconstrained; '[]' is as valid as a thousand elements.
func Array(elem *Type) *Type {
	assert.True("array element type is not nil", elem != nil)
	return &Type{shape: shapeArray, elem: elem}
}

// Struct returns a struct [Type] with the given fields, preserving their declaration order.
// Duplicate field names are rejected with [ErrDuplicateField]; every duplicate is reported.
func Struct(fields ...Field) (*Type, error) {
	errs := assert.CollectErrors()
	byName := make(map[string]*Type, len(fields))
	ordered := make([]Field, 0, len(fields))
	for _, f := range fields {
		if len(f.Name) == 0 || f.Type == nil {
			errs.AddString("struct field %q requires a name and a type", f.Name)
			continue
		}
		if _, ok := byName[f.Name]; ok {
			errs.AddString("%w: %s", ErrDuplicateField, f.Name)
			continue
		}
		byName[f.Name] = f.Type
		ordered = append(ordered, f)
	}
	if err := errs.Result(); err != nil {
		return nil, err
	}
	return &Type{shape: shapeStruct, fields: ordered, byName: byName}, nil
}

// MustStruct is a [Struct] that panics instead of returning an error.
func MustStruct(fields ...Field) *Type {
	t, err := Struct(fields...)
	if err != nil {
		panic(err)
	}
	return t
}

// Describe renders a compact, human-readable form of the descriptor, like '[{name:string,age:int}]'.
func (t *Type) Describe() string {
	switch t.shape {
	case shapeArray:
		return "[" + t.elem.Describe() + "]"
	case shapeStruct:
		var buf strings.Builder
		buf.WriteByte('{')
		for i, f := range t.fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(f.Name)
			buf.WriteByte(':')
			buf.WriteString(f.Type.Describe())
		}
		buf.WriteByte('}')
		return buf.String()
	default:
		return t.scalar
	}
}

func coerceString(text string) (any, error) {
	return text, nil
}

func coerceInt(text string) (any, error) {
	return strconv.ParseInt(text, 10, 64)
}

func coerceFloat(text string) (any, error) {
	return strconv.ParseFloat(text, 64)
}

var (
	trueWords  = []string{"1", "yes", "true", "on"}
	falseWords = []string{"0", "no", "false", "off"}
)

func coerceBool(text string) (any, error) {
	lowered := strings.ToLower(text)
	for _, w := range trueWords {
		if lowered == w {
			return true, nil
		}
	}
	for _, w := range falseWords {
		if lowered == w {
			return false, nil
		}
	}
	return nil, fmt.Errorf("%q is not a recognized boolean word", text)
}

func coerceDuration(text string) (any, error) {
	return time.ParseDuration(text)
}
