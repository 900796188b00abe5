package cli

// Result is the immutable output of a parse: the selected command and group, the parsed
// namespaces, the user context, and any leftover tokens from a partial parse.
//
// Check [Result.Signal] first; when it reports anything but [SignalNone], only the node
// accessors are meaningful.
type Result struct {
	command  *Command
	group    *Group
	signal   Signal
	args     *Namespace
	levels   []*Namespace
	global   *Namespace
	leftover []string
}

// Signal reports how resolution finished.
func (r *Result) Signal() Signal {
	return r.signal
}

// Command returns the selected command, or nil when resolution stopped at a group.
func (r *Result) Command() *Command {
	return r.command
}

// Group returns the deepest group traversed. Never nil; at minimum it is the root.
func (r *Result) Group() *Group {
	return r.group
}

// Args returns the command's arguments namespace, keyed by argument name in declaration order.
func (r *Result) Args() *Namespace {
	return r.args
}

// Options returns the options namespace of the deepest traversed level.
func (r *Result) Options() *Namespace {
	return r.levels[len(r.levels)-1]
}

// Level returns the options namespace of the given level, root being level 0.
func (r *Result) Level(level int) *Namespace {
	return r.levels[level]
}

// Levels returns the number of traversed levels.
func (r *Result) Levels() int {
	return len(r.levels)
}

// Global returns the merged namespace keyed by dotted path, like "vms.instances.list.long".
func (r *Result) Global() *Namespace {
	return r.global
}

// Context returns the user context bound to the selected command, or nil.
func (r *Result) Context() any {
	if r.command == nil {
		return nil
	}
	return r.command.ctx
}

// Leftover returns the unconsumed suffix of the input.
// It is only ever populated by a partial parse.
func (r *Result) Leftover() []string {
	out := make([]string, len(r.leftover))
	copy(out, r.leftover)
	return out
}
