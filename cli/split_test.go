package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saylorsolutions/multilevelcli/typespec"
)

func TestSplit(t *testing.T) {
	tests := map[string]struct {
		line     string
		expected []string
	}{
		"simple": {
			line:     "vms instances list --long",
			expected: []string{"vms", "instances", "list", "--long"},
		},
		"extra whitespace": {
			line:     "  vms \t instances  ",
			expected: []string{"vms", "instances"},
		},
		"empty": {
			line:     "",
			expected: nil,
		},
		"bracket group is one token": {
			line:     "info [6, 9] --cred x",
			expected: []string{"info", "[6, 9]", "--cred", "x"},
		},
		"brace group is one token": {
			line:     "add { user = me, id = 8 }",
			expected: []string{"add", "{ user = me, id = 8 }"},
		},
		"nested groups": {
			line:     "add [{name=Sara,age=34}, {name=Joe,age=33}]",
			expected: []string{"add", "[{name=Sara,age=34}, {name=Joe,age=33}]"},
		},
		"quoting outside groups": {
			line:     `user "Jack Smith" 28`,
			expected: []string{"user", `"Jack Smith"`, "28"},
		},
		"escape keeps next character": {
			line:     `user Jack\ Smith`,
			expected: []string{"user", `Jack\ Smith`},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			tokens, err := Split(tc.line)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, tokens)
		})
	}
}

func TestSplit_Unbalanced(t *testing.T) {
	for _, line := range []string{
		"info [1, 2",
		"add {user=me",
		`user "Jack`,
	} {
		_, err := Split(line)
		assert.ErrorIs(t, err, typespec.ErrMalformed, "line %q", line)
	}
}
