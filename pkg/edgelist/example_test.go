package edgelist_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/matzehuels/cyclecheck/pkg/cycle"
	"github.com/matzehuels/cyclecheck/pkg/edgelist"
)

func ExampleRead() {
	input := `
# adjacency dump
{ {0,1}, {1,2}, {2,0} }
`
	l, err := edgelist.Read(strings.NewReader(input), edgelist.FormatText)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("edges:", len(l.Edges))
	fmt.Println("cycle:", cycle.HasCycle(l.Edges))
	// Output:
	// edges: 3
	// cycle: true
}

func ExampleRead_toml() {
	input := `
name = "path"
edges = [[0, 4], [4, 7]]
`
	l, err := edgelist.Read(strings.NewReader(input), edgelist.FormatTOML)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(l.Name, l.Edges)
	// Output:
	// path [{0 4} {4 7}]
}

func ExampleWriteText() {
	l := &edgelist.List{
		Name:  "square",
		Edges: []edgelist.Edge{{Source: 0, Destination: 1}, {Source: 1, Destination: 2}},
	}
	if err := edgelist.WriteText(os.Stdout, l); err != nil {
		fmt.Println("Error:", err)
	}
	// Output:
	// # square
	// 0 1
	// 1 2
}
