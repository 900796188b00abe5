package cli

import (
	"fmt"
	"strings"
)

// Namespace is an ordered key-to-value mapping exposing parsed arguments and options.
// Level namespaces use bare member names as keys; the global namespace uses dotted paths
// like "vms.instances.list.long". A Namespace is built fresh per parse and should be
// treated as read-only.
type Namespace struct {
	keys []string
	vals map[string]any
}

func newNamespace() *Namespace {
	return &Namespace{vals: map[string]any{}}
}

// set records a value, keeping the key's original position when overwriting.
func (n *Namespace) set(key string, val any) {
	if _, ok := n.vals[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.vals[key] = val
}

// Get looks up a value by its exact key, dotted or not.
func (n *Namespace) Get(key string) (any, bool) {
	v, ok := n.vals[key]
	return v, ok
}

// Keys returns the namespace keys in insertion order.
func (n *Namespace) Keys() []string {
	out := make([]string, len(n.keys))
	copy(out, n.keys)
	return out
}

// Len returns the number of entries.
func (n *Namespace) Len() int {
	return len(n.keys)
}

// Sub derives a namespace from every key nested under the given dotted prefix, with the
// prefix stripped. Sub of "vms.instances" against a global namespace yields the keys
// beneath that group. The result is empty if nothing matches.
func (n *Namespace) Sub(prefix string) *Namespace {
	sub := newNamespace()
	prefix += "."
	for _, k := range n.keys {
		if strings.HasPrefix(k, prefix) {
			sub.set(k[len(prefix):], n.vals[k])
		}
	}
	return sub
}

// Value looks up a key and asserts its type in one motion.
// Pairs well with [MustGet] when the developer knows the key is present.
func Value[T any](n *Namespace, key string) (T, error) {
	var zero T
	v, ok := n.Get(key)
	if !ok {
		return zero, fmt.Errorf("no value for key %q", key)
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("value for key %q is %T, not %T", key, v, zero)
	}
	return typed, nil
}
