package layout

import (
	"image"
	"testing"
)

type vchild struct {
	id   ChildID
	item VStackItem
}

func TestVStackLayout(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		children []vchild
		want     map[ChildID]image.Rectangle
		view     image.Point
	}{
		{
			name: "expand children absorb remainder in last",
			w:    100, h: 100,
			children: []vchild{
				{"a", VStackItem{W: 10, H: 10, AutoExpand: true}},
				{"b", VStackItem{W: 10, H: 10, AutoExpand: true}},
				{"c", VStackItem{W: 10, H: 10, AutoExpand: true}},
			},
			want: map[ChildID]image.Rectangle{
				"a": rect(0, 0, 10, 33),
				"b": rect(0, 33, 10, 66),
				"c": rect(0, 66, 10, 100),
			},
			view: image.Pt(10, 100),
		},
		{
			name: "filler pad and split",
			w:    100, h: 100,
			children: []vchild{
				{"a", VStackItem{W: 20, H: 10, Pad: 2, Filler: 5}},
				{"b", VStackItem{W: 30, H: 10, Filler: 50, Split: 3, Height: SizeFixed}},
			},
			want: map[ChildID]image.Rectangle{
				"a": rect(2, 2, 22, 17),
				"b": rect(0, 19, 30, 29),
			},
			view: image.Pt(30, 32),
		},
		{
			name: "fixed child takes no free space",
			w:    50, h: 100,
			children: []vchild{
				{"fixed", VStackItem{W: 10, H: 20, Height: SizeFixed}},
				{"grow", VStackItem{W: 10, H: 20, AutoExpand: true}},
			},
			want: map[ChildID]image.Rectangle{
				"fixed": rect(0, 0, 10, 20),
				"grow":  rect(0, 20, 10, 100),
			},
			view: image.Pt(10, 100),
		},
		{
			name: "free space clamped to zero",
			w:    50, h: 10,
			children: []vchild{
				{"a", VStackItem{W: 10, H: 20, AutoExpand: true}},
				{"b", VStackItem{W: 10, H: 10, AutoExpand: true}},
			},
			want: map[ChildID]image.Rectangle{
				"a": rect(0, 0, 10, 20),
				"b": rect(0, 20, 10, 30),
			},
			view: image.Pt(10, 30),
		},
		{
			name: "cross alignment",
			w:    100, h: 100,
			children: []vchild{
				{"wide", VStackItem{W: 80, H: 10}},
				{"right", VStackItem{W: 20, H: 10, Pad: 1, Align: HRight}},
				{"center", VStackItem{W: 20, H: 10, Align: HCenter}},
				{"fill", VStackItem{W: 20, H: 10, Pad: 5, Align: HFill}},
			},
			want: map[ChildID]image.Rectangle{
				"wide":   rect(0, 0, 80, 10),
				"right":  rect(59, 11, 79, 21),
				"center": rect(30, 22, 50, 32),
				"fill":   rect(5, 37, 75, 47),
			},
			view: image.Pt(80, 52),
		},
		{
			name: "expand widens view to content",
			w:    100, h: 100,
			children: []vchild{
				{"wide", VStackItem{W: 80, H: 10}},
				{"expand", VStackItem{W: 20, H: 10, Align: HExpand}},
			},
			want: map[ChildID]image.Rectangle{
				"wide":   rect(0, 0, 80, 10),
				"expand": rect(0, 10, 100, 20),
			},
			view: image.Pt(100, 20),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, _ := newTestTree(t, tt.w, tt.h)
			root := tree.Root()
			for _, ch := range tt.children {
				if err := root.VStack(ch.id, ch.item); err != nil {
					t.Fatalf("VStack(%q) error: %v", ch.id, err)
				}
			}
			root.UpdateLayout()
			for id, want := range tt.want {
				if got := mustRect(t, root, id); got != want {
					t.Errorf("ChildRect(%q) = %v, want %v", id, got, want)
				}
			}
			if got := root.FieldSize(); got != tt.view {
				t.Errorf("FieldSize() = %v, want %v", got, tt.view)
			}
		})
	}
}

func TestRemainderFillsContent(t *testing.T) {
	tree, _ := newTestTree(t, 100, 100)
	root := tree.Root()
	for _, id := range []ChildID{"a", "b", "c"} {
		if err := root.VStack(id, VStackItem{W: 10, H: 10, AutoExpand: true}); err != nil {
			t.Fatal(err)
		}
	}
	root.UpdateLayout()

	sum := 0
	wantShares := []int{23, 23, 24}
	for i, id := range root.Children() {
		h := mustRect(t, root, id).Dy()
		if got := h - 10; got != wantShares[i] {
			t.Errorf("share of %q = %d, want %d", id, got, wantShares[i])
		}
		sum += h
	}
	if sum != 100 {
		t.Errorf("sum of heights = %d, want 100", sum)
	}
}

func TestCenterNeverNegative(t *testing.T) {
	tests := []struct {
		name string
		item VStackItem
		want int
	}{
		{"wider than content", VStackItem{W: 121, H: 10, Align: HCenter}, 0},
		{"wider than content with pad", VStackItem{W: 120, H: 10, Pad: 3, Align: HCenter}, 3},
		{"narrow", VStackItem{W: 1, H: 10, Align: HCenter}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, _ := newTestTree(t, 50, 50)
			root := tree.Root()
			if err := root.VStack("c", tt.item); err != nil {
				t.Fatal(err)
			}
			root.UpdateLayout()
			if got := mustRect(t, root, "c").Min.X; got != tt.want {
				t.Errorf("x = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHStackLayout(t *testing.T) {
	tree, _ := newTestTree(t, 100, 50)
	root := tree.Root()
	items := []struct {
		id   ChildID
		item HStackItem
	}{
		{"a", HStackItem{W: 10, H: 40}},
		{"b", HStackItem{W: 10, H: 10, Align: VCenter}},
		{"c", HStackItem{W: 10, H: 10, AutoExpand: true}},
		{"d", HStackItem{W: 10, H: 10, AutoExpand: true, Align: VBottom}},
	}
	for _, it := range items {
		if err := root.HStack(it.id, it.item); err != nil {
			t.Fatal(err)
		}
	}
	root.UpdateLayout()

	// free = 100 - 40 = 60, shared 30 + 30
	want := map[ChildID]image.Rectangle{
		"a": rect(0, 0, 10, 40),
		"b": rect(10, 15, 20, 25),
		"c": rect(20, 0, 60, 10),
		"d": rect(60, 30, 100, 40),
	}
	for id, w := range want {
		if got := mustRect(t, root, id); got != w {
			t.Errorf("ChildRect(%q) = %v, want %v", id, got, w)
		}
	}
	if got, w := root.CheckLayout(), image.Pt(40, 40); got != w {
		t.Errorf("CheckLayout() = %v, want %v", got, w)
	}
}

func TestCheckLayoutIsPure(t *testing.T) {
	tree, rs := newTestTree(t, 100, 100)
	root := tree.Root()
	_ = root.VStack("a", VStackItem{W: 10, H: 10, AutoExpand: true})
	_ = root.VStack("b", VStackItem{W: 30, H: 500, Pad: 2})
	root.UpdateLayout()
	root.Scroll(Vertical, ScrollThumbTrack, 40)

	before := mustRect(t, root, "a")
	placed := len(rs["root"].rects)
	pos := root.ScrollPos()

	first := root.CheckLayout()
	for range 3 {
		if got := root.CheckLayout(); got != first {
			t.Errorf("CheckLayout() = %v, want %v", got, first)
		}
	}
	if want := image.Pt(34, 514); first != want {
		t.Errorf("CheckLayout() = %v, want %v", first, want)
	}
	if got := mustRect(t, root, "a"); got != before {
		t.Errorf("ChildRect(a) changed to %v, want %v", got, before)
	}
	if got := root.ScrollPos(); got != pos {
		t.Errorf("ScrollPos() changed to %v, want %v", got, pos)
	}
	if got := len(rs["root"].rects); got != placed {
		t.Errorf("placed %d children, want %d", got, placed)
	}
}
