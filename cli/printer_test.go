package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter_Tree(t *testing.T) {
	p := New("democli", "An example CLI")
	vms := MustGet(p.AddGroup("vms", "Virtual machine management"))
	instances := MustGet(vms.AddGroup("instances", "Instance management"))
	MustGet(instances.AddCommand("list", "List instances"))
	MustGet(instances.AddCommand("new", "Create an instance"))
	MustGet(p.AddCommand("user", ""))

	var buf strings.Builder
	p.Printer().Redirect(&buf)
	p.Printer().Tree(p.Group)

	expected := strings.Join([]string{
		"[democli] - An example CLI",
		"\tuser",
		"\t[vms] - Virtual machine management",
		"\t\t[instances] - Instance management",
		"\t\t\tlist - List instances",
		"\t\t\tnew - Create an instance",
		"",
	}, "\n")
	assert.Equal(t, expected, buf.String())
}

func TestPrinter_Redirect(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter()
	p.Redirect(&buf)
	p.Printf("%d usage lines\n", 3)
	p.Println("done")
	assert.Equal(t, "3 usage lines\ndone\n", buf.String())
}
