package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/saylorsolutions/multilevelcli/internal/assert"
	"github.com/saylorsolutions/multilevelcli/typespec"
)

// Parse resolves the token sequence against the tree in strict mode.
// Any input that can't be consumed is an error.
func (p *Parser) Parse(tokens []string) (*Result, error) {
	return p.parse(tokens, false)
}

// ParsePartial resolves the token sequence in partial mode: an unknown option, unknown
// command, or surplus positional token at a valid resolution boundary stops consumption
// and lands in [Result.Leftover] instead of failing. Malformed literals and missing
// arguments are still hard errors, since they indicate broken input for an
// already-identified parameter rather than genuinely extra input.
func (p *Parser) ParsePartial(tokens []string) (*Result, error) {
	return p.parse(tokens, true)
}

// ParseLine splits a whole command line with [Split] and parses it in strict mode.
func (p *Parser) ParseLine(line string) (*Result, error) {
	tokens, err := Split(line)
	if err != nil {
		return nil, err
	}
	return p.parse(tokens, false)
}

func (p *Parser) parse(tokens []string, partial bool) (*Result, error) {
	r := &resolver{
		parser:  p,
		tokens:  tokens,
		partial: partial,
		res: &Result{
			args:   newNamespace(),
			global: newNamespace(),
		},
	}
	if err := r.run(); err != nil {
		return nil, err
	}
	return r.res, nil
}

// resolver walks raw tokens through the tree for a single parse call.
type resolver struct {
	parser  *Parser
	tokens  []string
	partial bool
	res     *Result
}

func (r *resolver) run() error {
	g := r.parser.Group
	if err := r.enter(&g.treeNode); err != nil {
		return err
	}
	r.res.group = g
	i := 0
	for {
		// Consume level-scoped options. An option-marked token is always tried as an
		// option before anything else, at every level.
		for i < len(r.tokens) {
			t := r.tokens[i]
			if isHelpToken(t) {
				r.signalHelp(g, &g.treeNode)
				return nil
			}
			if !isOptionMarked(t) {
				break
			}
			n, err := r.option(&g.treeNode, i)
			if err != nil {
				if r.partial && errors.Is(err, ErrUnknownOption) {
					r.res.leftover = slices.Clone(r.tokens[i:])
					r.invokeDefault(g, &g.treeNode)
					return nil
				}
				return err
			}
			i += n
		}
		if i >= len(r.tokens) {
			r.invokeDefault(g, &g.treeNode)
			return nil
		}
		t := r.tokens[i]
		if child, ok := g.groups[t]; ok {
			r.trace("descending into group", "group", nodeLabel(child))
			if err := r.enter(&child.treeNode); err != nil {
				return err
			}
			r.res.group = child
			g = child
			i++
			continue
		}
		if cmd, ok := g.commands[t]; ok {
			r.trace("selected command", "command", nodeLabel(cmd))
			return r.command(cmd, i+1)
		}
		if r.partial {
			r.res.leftover = slices.Clone(r.tokens[i:])
			r.invokeDefault(g, &g.treeNode)
			return nil
		}
		return parseErrorf(i, t, ErrUnknownCommand, "no group or command named %q under %q", t, nodeLabel(g))
	}
}

func (r *resolver) command(c *Command, i int) error {
	if err := r.enter(&c.treeNode); err != nil {
		return err
	}
	r.res.command = c
	argIdx := 0
	for i < len(r.tokens) {
		t := r.tokens[i]
		if isHelpToken(t) {
			r.signalHelp(c, &c.treeNode)
			return nil
		}
		if isOptionMarked(t) {
			n, err := r.option(&c.treeNode, i)
			if err != nil {
				if r.partial && errors.Is(err, ErrUnknownOption) {
					r.res.leftover = slices.Clone(r.tokens[i:])
					break
				}
				return err
			}
			i += n
			continue
		}
		if argIdx >= len(c.args) {
			if r.partial {
				r.res.leftover = slices.Clone(r.tokens[i:])
				break
			}
			return parseErrorf(i, t, ErrTooManyArguments, "command %q accepts %d argument(s)", nodeLabel(c), len(c.args))
		}
		arg := c.args[argIdx]
		text, n, err := joinLiteral(r.tokens[i:])
		if err != nil {
			return &ParseError{index: i, token: t, wrapped: fmt.Errorf("argument %q: %w", arg.name, err)}
		}
		v, err := typespec.Parse(arg.spec, text)
		if err != nil {
			return &ParseError{index: i, token: text, wrapped: fmt.Errorf("argument %q: %w", arg.name, err)}
		}
		r.trace("consumed argument", "argument", arg.name, "value", v)
		r.res.args.set(arg.name, v)
		r.res.global.set(c.pathPrefix()+arg.name, v)
		argIdx++
		i += n
	}
	if argIdx < len(c.args) {
		return parseErrorf(i, "", ErrMissingArgument,
			"command %q requires %d argument(s), %d provided", nodeLabel(c), len(c.args), argIdx)
	}
	return nil
}

// option consumes one option-marked token, plus its value tokens when the option is
// value-bearing, resolving the name against the node's own options and then each
// ancestor's. Returns the number of tokens consumed.
func (r *resolver) option(start *treeNode, i int) (int, error) {
	t := r.tokens[i]
	long := strings.HasPrefix(t, "--")
	name := strings.TrimPrefix(strings.TrimPrefix(t, "-"), "-")
	o, ok := findOption(start, name, long)
	if !ok {
		return 0, parseErrorf(i, t, ErrUnknownOption, "option %q is not visible at %q", t, nodeLabel(start))
	}
	if o.spec == nil {
		r.trace("consumed flag", "option", o.name)
		r.record(o, true)
		return 1, nil
	}
	rest := r.tokens[i+1:]
	if len(rest) == 0 {
		return 0, parseErrorf(i, t, ErrMissingArgument, "option %q requires a %s value", t, o.spec.Describe())
	}
	text, n, err := joinLiteral(rest)
	if err != nil {
		return 0, &ParseError{index: i + 1, token: rest[0], wrapped: fmt.Errorf("option %q: %w", t, err)}
	}
	v, err := typespec.Parse(o.spec, text)
	if err != nil {
		return 0, &ParseError{index: i + 1, token: text, wrapped: fmt.Errorf("option %q: %w", t, err)}
	}
	r.trace("consumed option", "option", o.name, "value", v)
	r.record(o, v)
	return 1 + n, nil
}

// enter opens the namespace for a newly traversed level and seeds it with the level's
// declared option defaults. Explicit values recorded later overwrite in place.
func (r *resolver) enter(n *treeNode) error {
	assert.True("contiguous namespace levels", n.level == len(r.res.levels))
	ns := newNamespace()
	r.res.levels = append(r.res.levels, ns)
	for _, o := range n.opts.ordered {
		v, ok, err := o.defaultValue()
		if err != nil {
			return fmt.Errorf("default for option %q at %q: %w", o.name, nodeLabel(n), err)
		}
		if !ok {
			continue
		}
		ns.set(o.name, v)
		r.res.global.set(o.prefix+o.name, v)
	}
	return nil
}

// record stores an explicit option value in the declaring level's namespace and the
// global namespace, regardless of where in the walk the option appeared.
func (r *resolver) record(o *Option, v any) {
	assert.True("declaring level already entered", o.level < len(r.res.levels))
	r.res.levels[o.level].set(o.name, v)
	r.res.global.set(o.prefix+o.name, v)
}

func (r *resolver) signalHelp(n Node, tn *treeNode) {
	r.trace("help requested", "node", nodeLabel(n))
	r.applyAction(nearestHelp(tn)(n))
}

func (r *resolver) invokeDefault(n Node, tn *treeNode) {
	if r.res.command != nil {
		return
	}
	r.trace("no command selected", "node", nodeLabel(n))
	r.applyAction(nearestDefault(tn)(n))
}

func (r *resolver) applyAction(a Action) {
	switch a {
	case ActionExit:
		r.res.signal = SignalExit
	case ActionNoCommand:
		r.res.signal = SignalNoCommand
	case ActionHelp:
		r.res.signal = SignalHelp
	default:
		r.res.signal = SignalNone
	}
}

func (r *resolver) trace(msg string, args ...any) {
	if r.parser.logger != nil {
		r.parser.logger.Debug(msg, args...)
	}
}

func nearestHelp(n *treeNode) Handler {
	for t := n; ; {
		if t.helpFn != nil {
			return t.helpFn
		}
		if t.parent == nil {
			return DefaultHelpHandler
		}
		t = &t.parent.treeNode
	}
}

func nearestDefault(n *treeNode) Handler {
	for t := n; ; {
		if t.defaultFn != nil {
			return t.defaultFn
		}
		if t.parent == nil {
			return DefaultNoCommandHandler
		}
		t = &t.parent.treeNode
	}
}

func isHelpToken(t string) bool {
	return slices.Contains(HelpTokens, t)
}

func isOptionMarked(t string) bool {
	return len(t) > 1 && t[0] == '-'
}

// joinLiteral reassembles a literal value that may span several raw tokens. Tokens are
// joined with a single space for as long as bracket/brace nesting (or quoting) stays
// open. Scalars never open nesting, so they always consume exactly one token. A quote
// only opens right after a value boundary; a quote character mid-value, like the
// apostrophe in O'Brien, is taken literally.
func joinLiteral(tokens []string) (string, int, error) {
	var (
		buf    strings.Builder
		depth  int
		quote  byte
		escape bool
	)
	prev := byte(' ')
	consumed := 0
	for consumed < len(tokens) {
		if consumed > 0 {
			buf.WriteByte(' ')
			prev = ' '
		}
		t := tokens[consumed]
		for j := 0; j < len(t); j++ {
			c := t[j]
			switch {
			case escape:
				escape = false
			case c == '\\':
				escape = true
			case quote != 0:
				if c == quote {
					quote = 0
				}
			case (c == '\'' || c == '"') && quoteAnchor(prev):
				quote = c
			case c == '[' || c == '{':
				depth++
			case (c == ']' || c == '}') && depth > 0:
				depth--
			}
			prev = c
		}
		buf.WriteString(t)
		consumed++
		if depth == 0 && quote == 0 {
			break
		}
	}
	if depth > 0 || quote != 0 {
		return "", consumed, fmt.Errorf("%w: literal %q is missing closing delimiters", typespec.ErrMalformed, buf.String())
	}
	return buf.String(), consumed, nil
}

// quoteAnchor reports whether a quote character following prev starts a quoted value,
// rather than sitting inside one.
func quoteAnchor(prev byte) bool {
	switch prev {
	case '[', '{', ',', '=', ':', ' ', '\t':
		return true
	}
	return false
}
