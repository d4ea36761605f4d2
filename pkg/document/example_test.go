package document_test

import (
	"fmt"

	"github.com/matzehuels/stackbox/pkg/document"
)

func ExampleParse() {
	doc, err := document.Parse([]byte(`
width = 120
height = 60

[root]
mode = "hstack"

[[root.children]]
id = "icon"
w = 16
h = 16
pad = 2

[[root.children]]
id = "label"
w = 40
h = 20
auto_expand = true
align = "center"
`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	tree, err := doc.Build()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	root := tree.Root()
	for _, id := range root.Children() {
		r, _ := root.ChildRect(id)
		fmt.Println(id, r)
	}
	// Output:
	// icon (2,2)-(18,18)
	// label (20,0)-(120,20)
}
