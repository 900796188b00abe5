package cli

import (
	"fmt"
	"log/slog"

	"github.com/saylorsolutions/multilevelcli/typespec"
)

// treeNode carries what groups and commands have in common: a name, a place in the tree,
// level-scoped options, and handler overrides.
type treeNode struct {
	name        string
	description string
	parent      *Group
	level       int
	opts        *optionSet
	defaultFn   Handler
	helpFn      Handler
}

// Name returns the node's own name.
func (n *treeNode) Name() string {
	return n.name
}

// Description returns the node's description text.
func (n *treeNode) Description() string {
	return n.description
}

// Path returns the dotted path from the root to this node, like "vms.instances.list".
// The root contributes no segment, so the root's path is empty.
func (n *treeNode) Path() string {
	if n.parent == nil {
		return ""
	}
	prefix := n.parent.Path()
	if len(prefix) == 0 {
		return n.name
	}
	return prefix + "." + n.name
}

func (n *treeNode) pathPrefix() string {
	path := n.Path()
	if len(path) == 0 {
		return ""
	}
	return path + "."
}

// SetHelpHandler overrides the handler invoked when a help token is seen at or below this node.
func (n *treeNode) SetHelpHandler(h Handler) {
	n.helpFn = h
}

// Group is a named level of the command tree, aggregating sub-groups, commands, and options.
// Sibling groups and commands share one name space.
type Group struct {
	treeNode
	groups   map[string]*Group
	commands map[string]*Command
}

func newGroup(name, description string, parent *Group, level int) *Group {
	return &Group{
		treeNode: treeNode{name: name, description: description, parent: parent, level: level, opts: newOptionSet()},
		groups:   map[string]*Group{},
		commands: map[string]*Command{},
	}
}

// SetDefaultHandler overrides the handler invoked when input ends at or below this group
// without selecting a command. Groups without their own handler inherit the nearest
// ancestor's. Only groups take one: selecting a command is the opposite of "no command",
// so a command-level default handler could never fire.
func (g *Group) SetDefaultHandler(h Handler) {
	g.defaultFn = h
}

func (g *Group) checkChildName(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidDefinition)
	}
	if _, ok := g.groups[name]; ok {
		return fmt.Errorf("%w: %q is already a group under %q", ErrDuplicateName, name, nodeLabel(g))
	}
	if _, ok := g.commands[name]; ok {
		return fmt.Errorf("%w: %q is already a command under %q", ErrDuplicateName, name, nodeLabel(g))
	}
	return nil
}

// AddGroup adds a sub-group to this [Group].
// The name must be unique among this level's groups and commands combined, else [ErrDuplicateName].
func (g *Group) AddGroup(name, description string) (*Group, error) {
	if err := g.checkChildName(name); err != nil {
		return nil, err
	}
	child := newGroup(name, description, g, g.level+1)
	g.groups[name] = child
	return child, nil
}

// AddCommand adds a command to this [Group].
// The name must be unique among this level's groups and commands combined, else [ErrDuplicateName].
func (g *Group) AddCommand(name, description string) (*Command, error) {
	if err := g.checkChildName(name); err != nil {
		return nil, err
	}
	cmd := &Command{
		treeNode: treeNode{name: name, description: description, parent: g, level: g.level + 1, opts: newOptionSet()},
	}
	g.commands[name] = cmd
	return cmd, nil
}

// Command is a leaf of the command tree, accepting ordered positional arguments and its own options.
type Command struct {
	treeNode
	args []*Argument
	ctx  any
}

// AddArgument appends a mandatory positional argument to this [Command], in declaration order.
// A nil type means [typespec.String]. Duplicate argument names fail with [ErrDuplicateName].
func (c *Command) AddArgument(name string, spec *typespec.Type, description string) (*Argument, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("%w: argument name must not be empty", ErrInvalidDefinition)
	}
	for _, a := range c.args {
		if a.name == name {
			return nil, fmt.Errorf("%w: argument %q is already declared on %q", ErrDuplicateName, name, nodeLabel(c))
		}
	}
	if spec == nil {
		spec = typespec.String
	}
	arg := &Argument{name: name, spec: spec, description: description, position: len(c.args)}
	c.args = append(c.args, arg)
	return arg, nil
}

// Bind attaches an opaque user context to this [Command], retrievable from [Result.Context]
// when the command is resolved.
func (c *Command) Bind(ctx any) *Command {
	c.ctx = ctx
	return c
}

// Arguments returns the command's declared arguments in declaration order.
func (c *Command) Arguments() []*Argument {
	out := make([]*Argument, len(c.args))
	copy(out, c.args)
	return out
}

// Parser is the root of a command tree.
//
// Build the tree completely before the first Parse call; the tree is read-only during
// parsing and concurrent Parse calls against a frozen tree are safe.
type Parser struct {
	*Group
	printer *Printer
	logger  *slog.Logger
}

// New creates a [Parser] whose root [Group] carries the program name.
// The root starts with [DefaultNoCommandHandler] and [DefaultHelpHandler] installed, so
// every node has a nearest-defined handler of each kind.
func New(name, description string) *Parser {
	root := newGroup(name, description, nil, 0)
	root.defaultFn = DefaultNoCommandHandler
	root.helpFn = DefaultHelpHandler
	return &Parser{Group: root, printer: NewPrinter()}
}

// SetLogger attaches a logger used to trace resolution steps at debug level.
// Without one the parser stays silent.
func (p *Parser) SetLogger(logger *slog.Logger) {
	p.logger = logger
}

// Printer returns the cached [Printer] for this [Parser].
func (p *Parser) Printer() *Printer {
	if p.printer == nil {
		p.printer = NewPrinter()
	}
	return p.printer
}

// nodeLabel names a node for error text: its dotted path, or its bare name at the root.
func nodeLabel(n Node) string {
	if path := n.Path(); len(path) > 0 {
		return path
	}
	return n.Name()
}
