package typespec

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register("", coerceString), "Empty kind names should be rejected")
	assert.Error(t, r.Register("custom", nil), "Nil coercions should be rejected")
	assert.NoError(t, r.Register("hex", func(text string) (any, error) {
		return strconv.ParseInt(text, 16, 64)
	}))
	assert.Error(t, r.Register("hex", coerceString), "Re-registering a kind should be rejected")

	hex, err := r.Scalar("hex")
	require.NoError(t, err)
	v, err := Parse(hex, "ff")
	require.NoError(t, err)
	assert.Equal(t, int64(255), v)
}

func TestScalar_UnknownKind(t *testing.T) {
	_, err := Scalar("nope")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestStruct_Validation(t *testing.T) {
	_, err := Struct(Field{Name: "a", Type: Int}, Field{Name: "a", Type: String})
	assert.ErrorIs(t, err, ErrDuplicateField)

	_, err = Struct(Field{Name: "", Type: Int})
	assert.Error(t, err)

	_, err = Struct(Field{Name: "a", Type: nil})
	assert.Error(t, err)

	st, err := Struct(Field{Name: "a", Type: Int}, Field{Name: "b", Type: String})
	require.NoError(t, err)
	assert.Equal(t, "{a:int,b:string}", st.Describe())
}

func TestType_Describe(t *testing.T) {
	assert.Equal(t, "int", Int.Describe())
	assert.Equal(t, "[string]", Array(String).Describe())

	person := MustStruct(
		Field{Name: "name", Type: String},
		Field{Name: "sizes", Type: Array(Int)},
	)
	assert.Equal(t, "[{name:string,sizes:[int]}]", Array(person).Describe())
}

func TestBuiltinCoercions(t *testing.T) {
	tests := []struct {
		spec     *Type
		text     string
		expected any
	}{
		{Int, "42", int64(42)},
		{Int, "-3", int64(-3)},
		{Float, "72.8", 72.8},
		{String, "joe", "joe"},
		{Bool, "true", true},
		{Bool, "ON", true},
		{Bool, "0", false},
		{Bool, "No", false},
		{Duration, "1m30s", 90 * time.Second},
	}
	for _, tc := range tests {
		v, err := Parse(tc.spec, tc.text)
		assert.NoError(t, err, "parsing %q as %s", tc.text, tc.spec.Describe())
		assert.Equal(t, tc.expected, v)
	}
}

func TestBuiltinCoercions_Invalid(t *testing.T) {
	for _, tc := range []struct {
		spec *Type
		text string
	}{
		{Int, "aa"},
		{Float, "12f"},
		{Bool, "maybe"},
		{Duration, "fast"},
	} {
		_, err := Parse(tc.spec, tc.text)
		assert.ErrorIs(t, err, ErrInvalidValue, "parsing %q as %s", tc.text, tc.spec.Describe())
	}
}
