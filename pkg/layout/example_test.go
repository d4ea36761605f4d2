package layout_test

import (
	"fmt"
	"image"

	"github.com/matzehuels/stackbox/pkg/layout"
)

func ExampleContainer_VStack() {
	// Three growing rows share a 100px high container
	root := layout.New(100, 100).Root()
	for _, id := range []layout.ChildID{"header", "body", "footer"} {
		_ = root.VStack(id, layout.VStackItem{W: 10, H: 10, AutoExpand: true, Align: layout.HExpand})
	}
	root.UpdateLayout()

	for _, id := range root.Children() {
		r, _ := root.ChildRect(id)
		fmt.Println(id, r)
	}
	// Output:
	// header (0,0)-(100,33)
	// body (0,33)-(100,66)
	// footer (0,66)-(100,100)
}

func ExampleContainer_RecalcLayout() {
	// A toolbar row nested in a vertical dialog
	tree := layout.New(200, 100)
	root := tree.Root()
	row, _ := root.AddVStackContainer("toolbar", layout.VStackItem{Pad: 2})
	_ = row.HStack("open", layout.HStackItem{W: 24, H: 24})
	_ = row.HStack("save", layout.HStackItem{W: 24, H: 24, Pad: 1})
	_ = root.VStack("canvas", layout.VStackItem{W: 100, H: 50, AutoExpand: true})

	root.RecalcLayout()

	item, _ := root.VStackParam("toolbar")
	fmt.Println("toolbar:", item.W, "x", item.H)
	fmt.Println("minimum:", root.CheckLayout())
	// Output:
	// toolbar: 50 x 26
	// minimum: (100,80)
}

func ExampleContainer_Place() {
	root := layout.New(200, 100).Root()
	_ = root.Place("anchor", layout.PlaceItem{X: 10, Y: 10, W: 20, H: 20})
	_ = root.Place("badge", layout.PlaceItem{
		X: 5, Y: -4, W: 8, H: 8,
		PosRef: "anchor", Pos: layout.PlaceOffset,
	})
	_ = root.Place("half", layout.PlaceItem{
		X: 0.5, W: 0.5, H: 1,
		Pos: layout.PlaceRelative, Span: layout.PlaceRelative,
	})
	root.UpdateLayout()

	for _, id := range root.Children() {
		r, _ := root.ChildRect(id)
		fmt.Println(id, r)
	}
	// Output:
	// anchor (10,10)-(30,30)
	// badge (15,6)-(23,14)
	// half (100,0)-(200,100)
}

func ExampleContainer_Dispatch() {
	root := layout.New(100, 100, layout.WithMetrics(layout.Metrics{VScrollWidth: 10, HScrollHeight: 10})).Root()
	_ = root.VStack("list", layout.VStackItem{W: 80, H: 400})
	root.UpdateLayout()

	root.Dispatch(layout.WheelEvent{Axis: layout.Vertical, Delta: -3 * layout.WheelDelta})
	fmt.Println("after wheel:", root.ScrollPos())
	root.Dispatch(layout.ScrollEvent{Axis: layout.Vertical, Command: layout.ScrollBottom})
	fmt.Println("at bottom:", root.ScrollPos())
	r, _ := root.ChildScreenRect("list")
	fmt.Println("on screen:", r)
	// Output:
	// after wheel: (0,30)
	// at bottom: (0,300)
	// on screen: (0,-300)-(80,100)
}

func ExampleFitWindow() {
	fit := layout.FitWindow(image.Pt(640, 1200), image.Pt(1920, 1040), layout.DefaultMetrics)
	fmt.Println(fit.Size, fit.HBar, fit.VBar)
	// Output:
	// (657,1040) false true
}
