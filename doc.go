/*
Package multilevelcli provides parsing for command lines shaped as nested command trees:
a root group holding sub-groups, commands, and options at every level, where argument and
option values may be arbitrarily nested array/struct literals.

The interesting packages are below this one.

  - [github.com/saylorsolutions/multilevelcli/typespec] declares value types (scalar, array, struct)
    and parses bracket/brace literals against them.
  - [github.com/saylorsolutions/multilevelcli/cli] builds the command tree and resolves token
    sequences into per-level and dotted-path namespaces.

This module parses and returns results. It never prints usage, never exits the process, and
never executes anything on your behalf.
*/
package multilevelcli
