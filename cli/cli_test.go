package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saylorsolutions/multilevelcli/typespec"
)

func TestGroup_AddGroup(t *testing.T) {
	p := New("app", "")
	vms := MustGet(p.AddGroup("vms", "Virtual machines"))
	assert.Equal(t, "vms", vms.Path())

	_, err := p.AddGroup("vms", "")
	assert.ErrorIs(t, err, ErrDuplicateName)

	_, err = p.AddGroup("", "")
	assert.ErrorIs(t, err, ErrInvalidDefinition)

	nested := MustGet(vms.AddGroup("instances", ""))
	assert.Equal(t, "vms.instances", nested.Path())
}

func TestGroup_AddCommand(t *testing.T) {
	p := New("app", "")
	MustGet(p.AddGroup("vms", ""))

	_, err := p.AddCommand("vms", "")
	assert.ErrorIs(t, err, ErrDuplicateName, "Groups and commands share one sibling namespace")

	cmd := MustGet(p.AddCommand("list", ""))
	assert.Equal(t, "list", cmd.Path())

	_, err = p.AddGroup("list", "")
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestCommand_AddArgument(t *testing.T) {
	p := New("app", "")
	cmd := MustGet(p.AddCommand("new", ""))

	name := MustGet(cmd.AddArgument("name", nil, "Instance name"))
	assert.Same(t, typespec.String, name.Type(), "A nil type defaults to string")
	assert.Equal(t, 0, name.Position())

	capacity := MustGet(cmd.AddArgument("capacity", typespec.Int, ""))
	assert.Equal(t, 1, capacity.Position())

	_, err := cmd.AddArgument("name", typespec.Int, "")
	assert.ErrorIs(t, err, ErrDuplicateName)

	_, err = cmd.AddArgument("", typespec.Int, "")
	assert.ErrorIs(t, err, ErrInvalidDefinition)

	args := cmd.Arguments()
	require.Len(t, args, 2)
	assert.Equal(t, "name", args[0].Name())
	assert.Equal(t, "capacity", args[1].Name())
}

func TestAddOption_Validation(t *testing.T) {
	p := New("app", "")

	_, err := p.AddOption("", "", typespec.Int, "")
	assert.ErrorIs(t, err, ErrInvalidDefinition, "At least one name is required")

	_, err = p.AddOption("qq", "", nil, "")
	assert.ErrorIs(t, err, ErrInvalidDefinition, "Short names are a single character")

	q := MustGet(p.AddOption("q", "quiet", nil, "Suppress output"))
	assert.Equal(t, "quiet", q.Name(), "The long name is the namespace key when present")
	assert.Equal(t, "q", q.Short())
	assert.Nil(t, q.Type())

	shortOnly := MustGet(p.AddOption("v", "", nil, ""))
	assert.Equal(t, "v", shortOnly.Name())

	_, err = p.AddOption("q", "loud", nil, "")
	assert.ErrorIs(t, err, ErrDuplicateName)
	_, err = p.AddOption("x", "quiet", nil, "")
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestAddOption_AncestorCollision(t *testing.T) {
	p := New("app", "")
	MustGet(p.AddOption("q", "quiet", nil, ""))
	vms := MustGet(p.AddGroup("vms", ""))
	cmd := MustGet(vms.AddCommand("list", ""))

	_, err := vms.AddOption("", "quiet", nil, "")
	assert.ErrorIs(t, err, ErrDuplicateName, "An option may not shadow one visible from an ancestor")
	_, err = cmd.AddOption("q", "", nil, "")
	assert.ErrorIs(t, err, ErrDuplicateName)

	// Unrelated branches don't collide.
	other := MustGet(p.AddGroup("other", ""))
	_, err = other.AddOption("x", "extra", nil, "")
	assert.NoError(t, err)
	_, err = vms.AddOption("x", "extra", nil, "")
	assert.NoError(t, err)
}

func TestTreeNode_Path(t *testing.T) {
	p := New("app", "An app")
	assert.Equal(t, "", p.Path(), "The root contributes no path segment")
	assert.Equal(t, "app", p.Name())

	vms := MustGet(p.AddGroup("vms", ""))
	list := MustGet(vms.AddCommand("list", ""))
	assert.Equal(t, "vms.list", list.Path())
}
