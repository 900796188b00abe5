/*
Package assert provides runtime assertion support for invariants the parser relies on, plus an error Collector for definition-time validation.

Assertions panic when violated, since a violation means a bug in this module rather than bad user input.
To turn off assertion evaluation build with the 'noassert' flag.
*/
package assert
