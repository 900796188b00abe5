package cli

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// Printer is the output sink for user-supplied handlers. User-visible output goes to
// STDERR by default; the core itself never prints.
type Printer struct {
	out io.Writer
}

func NewPrinter() *Printer {
	return &Printer{out: os.Stderr}
}

func (p *Printer) Redirect(writer io.Writer) {
	p.out = writer
}

func (p *Printer) Print(msg ...any) {
	_, _ = fmt.Fprint(p.out, msg...)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(msg ...any) {
	_, _ = fmt.Fprintln(p.out, msg...)
}

// Tree writes an indented outline of the group/command tree rooted at g.
// Commands and sub-groups are sorted alphabetically for stable output.
func (p *Printer) Tree(g *Group) {
	p.tree(g, 0)
}

func (p *Printer) tree(g *Group, tab int) {
	indent := strings.Repeat("\t", tab)
	p.Printf("%s[%s]%s\n", indent, g.Name(), describeSuffix(g.Description()))
	for _, name := range sortedKeys(g.commands) {
		p.Printf("%s\t%s%s\n", indent, name, describeSuffix(g.commands[name].Description()))
	}
	for _, name := range sortedKeys(g.groups) {
		p.tree(g.groups[name], tab+1)
	}
}

func describeSuffix(description string) string {
	if len(description) == 0 {
		return ""
	}
	return " - " + description
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
