package cli

// Node is a resolved location in the command tree, either a [*Group] or a [*Command].
type Node interface {
	Name() string
	Path() string
	Description() string
}

// Action is returned from a [Handler] to tell the resolver how the parse should finish.
type Action int

const (
	ActionContinue  Action = iota // produce a normal Result
	ActionExit                    // the caller should stop; the Result reports SignalExit
	ActionNoCommand               // report that no command was selected
	ActionHelp                    // report that help was requested
)

// Handler is a capability value stored once per tree node and resolved at use-time by
// nearest-ancestor override. Default handlers run when input ends without selecting a
// command; help handlers run when one of [HelpTokens] is seen. A Handler may perform
// arbitrary side effects (printing usage through a [Printer], most commonly) before
// returning an [Action].
type Handler func(node Node) Action

// Signal distinguishes control-flow outcomes from ordinary parses.
// Callers should switch on [Result.Signal] before reading namespaces.
type Signal int

const (
	SignalNone      Signal = iota // a command was resolved normally
	SignalExit                    // a handler requested that the caller stop
	SignalNoCommand               // input ended without selecting a command
	SignalHelp                    // a help token short-circuited resolution
)

var (
	// HelpTokens is a slice of tokens that short-circuit resolution to the nearest help handler, at any level.
	HelpTokens = []string{"-h", "--help"}

	// DefaultHelpHandler is the process-wide fallback used when no node on the path defines a help handler.
	DefaultHelpHandler Handler = func(Node) Action { return ActionHelp }

	// DefaultNoCommandHandler is the root fallback for input that never selects a command.
	DefaultNoCommandHandler Handler = func(Node) Action { return ActionNoCommand }
)
