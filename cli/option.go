package cli

import (
	"fmt"

	"github.com/saylorsolutions/multilevelcli/internal/env"
	"github.com/saylorsolutions/multilevelcli/internal/set"
	"github.com/saylorsolutions/multilevelcli/typespec"
)

// Option is a named, non-positional parameter visible at its declaring level and every
// level beneath it. An Option without a type is a boolean flag defaulting to false.
type Option struct {
	short       string
	long        string
	name        string
	description string
	spec        *typespec.Type
	def         any
	envKey      string

	// level and prefix pin recorded values to the declaring node's namespace,
	// no matter how deep in the walk the option shows up.
	level  int
	prefix string
}

// Name returns the option's namespace key: the long name when present, else the short name.
func (o *Option) Name() string {
	return o.name
}

// Short returns the single-character name, or an empty string.
func (o *Option) Short() string {
	return o.short
}

// Long returns the word name, or an empty string.
func (o *Option) Long() string {
	return o.long
}

// Type returns the option's value descriptor, or nil for a boolean flag.
func (o *Option) Type() *typespec.Type {
	return o.spec
}

// Description returns the option's description text.
func (o *Option) Description() string {
	return o.description
}

// Default sets the value recorded for this option when the command line doesn't provide one.
// The value should match the option's declared type.
func (o *Option) Default(v any) *Option {
	o.def = v
	return o
}

// DefaultEnv names an environment variable consulted when the command line doesn't provide
// a value. The variable's text is parsed against the option's type (flags use the bool
// kind), and takes precedence over a value set with [Option.Default].
func (o *Option) DefaultEnv(key string) *Option {
	o.envKey = key
	return o
}

// defaultValue resolves the value seeding this option's namespace entry at level entry.
// Reports ok=false when the option has nothing to contribute.
func (o *Option) defaultValue() (v any, ok bool, err error) {
	if len(o.envKey) > 0 {
		if raw := env.Val(o.envKey, ""); len(raw) > 0 {
			spec := o.spec
			if spec == nil {
				spec = typespec.Bool
			}
			v, err := typespec.Parse(spec, raw)
			if err != nil {
				return nil, false, fmt.Errorf("environment variable %s: %w", o.envKey, err)
			}
			return v, true, nil
		}
	}
	if o.def != nil {
		return o.def, true, nil
	}
	if o.spec == nil {
		// flags always read as false until the marker shows up
		return false, true, nil
	}
	return nil, false, nil
}

type optionSet struct {
	ordered []*Option
	byShort map[string]*Option
	byLong  map[string]*Option
}

func newOptionSet() *optionSet {
	return &optionSet{
		byShort: map[string]*Option{},
		byLong:  map[string]*Option{},
	}
}

func (s *optionSet) find(name string, long bool) (*Option, bool) {
	if long {
		o, ok := s.byLong[name]
		return o, ok
	}
	o, ok := s.byShort[name]
	return o, ok
}

// AddOption declares an option on this node. At least one of short/long is required, and
// short must be a single character, else [ErrInvalidDefinition]. A nil type declares a
// boolean flag. Any name collision with an option already visible at this level, its own
// or an ancestor's, fails with [ErrDuplicateName].
func (n *treeNode) AddOption(short, long string, spec *typespec.Type, description string) (*Option, error) {
	if len(short) == 0 && len(long) == 0 {
		return nil, fmt.Errorf("%w: an option requires a short or long name", ErrInvalidDefinition)
	}
	if len([]rune(short)) > 1 {
		return nil, fmt.Errorf("%w: short option name %q must be a single character", ErrInvalidDefinition, short)
	}
	name := long
	if len(name) == 0 {
		name = short
	}
	visible := n.visibleOptionNames()
	for _, candidate := range []string{name, short, long} {
		if len(candidate) > 0 && visible.Has(candidate) {
			return nil, fmt.Errorf("%w: option %q is already visible at %q", ErrDuplicateName, candidate, nodeLabel(n))
		}
	}
	o := &Option{
		short:       short,
		long:        long,
		name:        name,
		description: description,
		spec:        spec,
		level:       n.level,
		prefix:      n.pathPrefix(),
	}
	n.opts.ordered = append(n.opts.ordered, o)
	if len(short) > 0 {
		n.opts.byShort[short] = o
	}
	if len(long) > 0 {
		n.opts.byLong[long] = o
	}
	return o, nil
}

func (n *treeNode) visibleOptionNames() set.Set[string] {
	names := set.New[string]()
	collect := func(s *optionSet) {
		for _, o := range s.ordered {
			names.Add(o.name)
			if len(o.short) > 0 {
				names.Add(o.short)
			}
			if len(o.long) > 0 {
				names.Add(o.long)
			}
		}
	}
	collect(n.opts)
	for g := n.parent; g != nil; g = g.parent {
		collect(g.opts)
	}
	return names
}

// findOption resolves an option name against the options visible at the given node:
// its own set first, then each ancestor's on the way to the root.
func findOption(start *treeNode, name string, long bool) (*Option, bool) {
	if o, ok := start.opts.find(name, long); ok {
		return o, true
	}
	for g := start.parent; g != nil; g = g.parent {
		if o, ok := g.opts.find(name, long); ok {
			return o, true
		}
	}
	return nil, false
}

// Argument is a named, positional, mandatory parameter of a [Command].
// Arguments are immutable once declared.
type Argument struct {
	name        string
	spec        *typespec.Type
	description string
	position    int
}

// Name returns the argument's namespace key.
func (a *Argument) Name() string {
	return a.name
}

// Type returns the argument's value descriptor.
func (a *Argument) Type() *typespec.Type {
	return a.spec
}

// Description returns the argument's description text.
func (a *Argument) Description() string {
	return a.description
}

// Position returns the argument's fixed ordinal within its command, assigned at declaration.
func (a *Argument) Position() int {
	return a.position
}
