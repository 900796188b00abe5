package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamespace_Ordering(t *testing.T) {
	ns := newNamespace()
	ns.set("b", 1)
	ns.set("a", 2)
	ns.set("c", 3)
	ns.set("a", 4)
	assert.Equal(t, []string{"b", "a", "c"}, ns.Keys(), "Overwriting keeps the key's original position")
	assert.Equal(t, 3, ns.Len())

	v, ok := ns.Get("a")
	require.True(t, ok)
	assert.Equal(t, 4, v)

	_, ok = ns.Get("missing")
	assert.False(t, ok)
}

func TestNamespace_Sub(t *testing.T) {
	ns := newNamespace()
	ns.set("treelevels", int64(7))
	ns.set("vms.instances.list.long", true)
	ns.set("vms.instances.list.count", int64(2))
	ns.set("vms.trim", false)

	sub := ns.Sub("vms.instances.list")
	assert.Equal(t, []string{"long", "count"}, sub.Keys())
	assert.Equal(t, true, MustGet(Value[bool](sub, "long")))

	assert.Equal(t, []string{"instances.list.long", "instances.list.count", "trim"}, ns.Sub("vms").Keys())
	assert.Zero(t, ns.Sub("nothing").Len())
}

func TestValue(t *testing.T) {
	ns := newNamespace()
	ns.set("count", int64(3))

	v, err := Value[int64](ns, "count")
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)

	_, err = Value[string](ns, "count")
	assert.Error(t, err, "A type mismatch should be reported, not panic")

	_, err = Value[int64](ns, "missing")
	assert.Error(t, err)
}

func TestMustGet(t *testing.T) {
	ns := newNamespace()
	ns.set("count", int64(3))
	assert.Equal(t, int64(3), MustGet(Value[int64](ns, "count")))
	assert.Panics(t, func() {
		MustGet(Value[string](ns, "count"))
	})
}
