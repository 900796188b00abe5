/*
Package cli resolves command lines structured as nested command trees: a root group holding
sub-groups, commands, and options at every level.

There are a few reasonable (IMHO) policies for how this operates.

  - The tree is build-then-freeze. Define groups, commands, arguments, and options up front;
    once parsing starts, the tree must not be mutated. Concurrent Parse calls against a frozen
    tree are safe, concurrent mutation during a parse is not.
  - Parsing never prints and never exits. Every failure comes back as an error carrying the
    offending token index, and "no command" / "help requested" come back as [Result] signals
    that the caller must handle. Exit codes and usage text belong to the caller.
  - Options are level-scoped. An option declared on a group is visible to everything beneath
    it, and may not be redefined below. Wherever it appears on the command line, its value is
    recorded in the namespace of the level that declared it.
  - Option and argument values are typed by [typespec.Type] descriptors, so a single value can
    be a nested array/struct literal spanning several raw tokens.

# Invocation

A command line always follows this form:

	CLI_NAME [OPTIONS...] [GROUP...] [OPTIONS...] COMMAND [OPTIONS... ARGS...]

Options belong to the group or command named immediately before them. Positional arguments are
mandatory and consumed in declaration order.

# Partial parsing

[Parser.ParsePartial] keeps unrecognized trailing input as [Result.Leftover] instead of failing.
Broken input for an already-identified argument or option, a malformed literal or too few
arguments, is still a hard error; "couldn't parse" is not "extra input".

# Namespaces

A successful parse produces one ordered namespace per traversed level, an arguments namespace
for the command, and a flat global namespace keyed by dotted path, so the value of a 'long'
option on command 'list' under groups 'vms' and 'instances' lives at 'vms.instances.list.long'.
*/
package cli
