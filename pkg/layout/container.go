package layout

import (
	"fmt"
	"image"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackbox/pkg/errors"
	"github.com/matzehuels/stackbox/pkg/observability"
)

// Container owns an ordered list of children and arranges them with a
// single layout mode.
type Container struct {
	id      ChildID
	tree    *Tree
	surface Surface
	handler Handler
	log     *log.Logger

	mode          Mode
	width, height int

	order   []ChildID
	records map[ChildID]Record
	placed  map[ChildID]image.Rectangle

	// nested holds the children that are containers themselves, in
	// creation order.
	nested     []ChildID
	nestedByID map[ChildID]*Container

	scrollH, scrollV ScrollInfo
	hbar, vbar       bool

	frozen    bool
	arranging bool
	pending   []func()
}

func newContainer(t *Tree, id ChildID, w, h int, parent Surface) *Container {
	c := &Container{
		id:         id,
		tree:       t,
		log:        t.cfg.logger.With("container", id),
		width:      max(0, w),
		height:     max(0, h),
		records:    make(map[ChildID]Record),
		placed:     make(map[ChildID]image.Rectangle),
		nestedByID: make(map[ChildID]*Container),
	}
	c.surface = t.cfg.surface(id, parent)
	if c.surface == nil {
		c.surface = nopSurface{}
	}
	return c
}

// ID returns the container's identifier.
func (c *Container) ID() ChildID { return c.id }

// Tree returns the tree the container belongs to.
func (c *Container) Tree() *Tree { return c.tree }

// Mode returns the layout mode, ModeNone until the first child is registered.
func (c *Container) Mode() Mode { return c.mode }

// Surface returns the host surface realizing this container.
func (c *Container) Surface() Surface { return c.surface }

// ContentSize returns the drawing area set by the host.
func (c *Container) ContentSize() image.Point { return image.Pt(c.width, c.height) }

// Children returns the child identifiers in layout order.
func (c *Container) Children() []ChildID { return slices.Clone(c.order) }

// Record returns the record of a child.
func (c *Container) Record(id ChildID) (Record, bool) {
	r, ok := c.records[id]
	return r, ok
}

// Nested returns the child container registered under id.
func (c *Container) Nested(id ChildID) (*Container, bool) {
	n, ok := c.nestedByID[id]
	return n, ok
}

// SetHandler installs (or with nil, removes) the container's event router.
func (c *Container) SetHandler(h Handler) { c.handler = h }

// Parent returns the enclosing container, or nil for the root.
func (c *Container) Parent() *Container { return c.tree.parentOf(c.id) }

// =============================================================================
// Registration
// =============================================================================

// VStack appends a child to a vertical stack. It fails with INVALID_MODE if
// the container already uses another mode; the container is left unchanged.
func (c *Container) VStack(id ChildID, item VStackItem) error { return c.register(id, item) }

// HStack appends a child to a horizontal stack.
func (c *Container) HStack(id ChildID, item HStackItem) error { return c.register(id, item) }

// Place appends an absolutely placed child.
func (c *Container) Place(id ChildID, item PlaceItem) error { return c.register(id, item) }

func (c *Container) register(id ChildID, r Record) error {
	if c.arranging {
		c.later(func() {
			if err := c.register(id, r); err != nil {
				c.log.Warn("deferred registration failed", "child", id, "err", err)
			}
		})
		return nil
	}
	want := r.mode()
	if c.mode != ModeNone && c.mode != want {
		return errors.New(errors.ErrCodeInvalidMode, "container %s is a %s, cannot add %s child %s", c.id, c.mode, want, id)
	}
	if _, dup := c.records[id]; dup {
		return errors.New(errors.ErrCodeDuplicateChild, "container %s already has child %s", c.id, id)
	}
	c.mode = want
	c.records[id] = r
	c.order = append(c.order, id)
	return nil
}

// =============================================================================
// Parameters
// =============================================================================

// VStackParam returns the record of a VStack child. Asking for an unknown
// child, or for a child of another mode, is a programming error.
func (c *Container) VStackParam(id ChildID) (VStackItem, bool) {
	it, ok := c.records[id].(VStackItem)
	c.assert(ok, "no vstack child", "child", id)
	return it, ok
}

// HStackParam returns the record of an HStack child.
func (c *Container) HStackParam(id ChildID) (HStackItem, bool) {
	it, ok := c.records[id].(HStackItem)
	c.assert(ok, "no hstack child", "child", id)
	return it, ok
}

// PlaceParam returns the record of a Place child.
func (c *Container) PlaceParam(id ChildID) (PlaceItem, bool) {
	it, ok := c.records[id].(PlaceItem)
	c.assert(ok, "no place child", "child", id)
	return it, ok
}

// SetVStackParam replaces the record of a VStack child and updates the layout.
func (c *Container) SetVStackParam(id ChildID, item VStackItem) error { return c.setParam(id, item) }

// SetHStackParam replaces the record of an HStack child and updates the layout.
func (c *Container) SetHStackParam(id ChildID, item HStackItem) error { return c.setParam(id, item) }

// SetPlaceParam replaces the record of a Place child and updates the layout.
func (c *Container) SetPlaceParam(id ChildID, item PlaceItem) error { return c.setParam(id, item) }

func (c *Container) setParam(id ChildID, r Record) error {
	if c.arranging {
		c.later(func() { _ = c.setParam(id, r) })
		return nil
	}
	old, ok := c.records[id]
	if !c.assert(ok, "set parameters of unknown child", "child", id) {
		return errors.New(errors.ErrCodeUnknownChild, "container %s has no child %s", c.id, id)
	}
	if old.mode() != r.mode() {
		c.assert(false, "record variant does not match mode", "child", id, "mode", c.mode)
		return errors.New(errors.ErrCodeInvalidMode, "container %s is a %s, got %s record for %s", c.id, c.mode, r.mode(), id)
	}
	c.records[id] = r
	c.UpdateLayout()
	return nil
}

// RemoveChild deletes a child from the order and the record map, destroys
// its element and, for a nested container, its whole subtree. Removing an
// unknown child is a programming error and otherwise a no-op.
func (c *Container) RemoveChild(id ChildID) {
	if c.arranging {
		c.later(func() { c.RemoveChild(id) })
		return
	}
	_, known := c.records[id]
	nested, isNested := c.nestedByID[id]
	if !c.assert(known || isNested, "remove unknown child", "child", id) {
		return
	}
	if i := slices.Index(c.order, id); i >= 0 {
		c.order = slices.Delete(c.order, i, i+1)
	}
	delete(c.records, id)
	delete(c.placed, id)
	if isNested {
		if i := slices.Index(c.nested, id); i >= 0 {
			c.nested = slices.Delete(c.nested, i, i+1)
		}
		delete(c.nestedByID, id)
		c.tree.forget(nested)
	}
	if known {
		c.surface.Remove(id)
	}
}

// =============================================================================
// Queries
// =============================================================================

// ChildRect returns the rectangle of a child relative to the container's
// content origin. The result does not depend on the scroll position.
func (c *Container) ChildRect(id ChildID) (image.Rectangle, bool) {
	if _, ok := c.records[id]; !ok {
		return image.Rectangle{}, false
	}
	return c.placed[id], true
}

// ChildScreenRect returns the rectangle of a child as currently shown on the
// container's surface, i.e. shifted by the scroll position.
func (c *Container) ChildScreenRect(id ChildID) (image.Rectangle, bool) {
	r, ok := c.ChildRect(id)
	if !ok {
		return r, false
	}
	return r.Sub(c.ScrollPos()), true
}

// FieldSize returns the size of the scrollable field, i.e. the arranged
// view size of the last UpdateLayout.
func (c *Container) FieldSize() image.Point {
	return image.Pt(c.scrollH.Max+1, c.scrollV.Max+1)
}

// ScrollPos returns the horizontal and vertical scroll positions.
func (c *Container) ScrollPos() image.Point {
	return image.Pt(c.scrollH.Pos, c.scrollV.Pos)
}

// Scrollbars returns the current scroll state of both axes.
func (c *Container) Scrollbars() (h, v ScrollInfo) { return c.scrollH, c.scrollV }

// ScrollbarsVisible reports which scroll bars the last negotiation showed.
func (c *Container) ScrollbarsVisible() (h, v bool) { return c.hbar, c.vbar }

// =============================================================================
// Internals
// =============================================================================

func (c *Container) later(fn func()) { c.pending = append(c.pending, fn) }

func (c *Container) flush() {
	for len(c.pending) > 0 {
		fn := c.pending[0]
		c.pending = c.pending[1:]
		fn()
	}
}

// assert reports a programming error. Release builds log it and continue;
// builds tagged stackboxdebug panic.
func (c *Container) assert(ok bool, msg string, keyvals ...any) bool {
	if ok {
		return true
	}
	c.log.Warn("layout assertion failed: "+msg, keyvals...)
	observability.Layout().OnAssert(string(c.id), msg)
	if debugAssertions {
		panic(fmt.Sprintf("layout: %s: %s %v", c.id, msg, keyvals))
	}
	return false
}

// emit records the rectangle of a child in content coordinates and hands it
// to the surface at the current scroll position. A nested container is
// resized, which arranges its own children.
func (c *Container) emit(id ChildID, r image.Rectangle) {
	r.Max.X = max(r.Max.X, r.Min.X)
	r.Max.Y = max(r.Max.Y, r.Min.Y)
	c.placed[id] = r
	c.surface.Place(id, r.Sub(c.ScrollPos()))
	if n, ok := c.nestedByID[id]; ok {
		n.Dispatch(ResizeEvent{Width: r.Dx(), Height: r.Dy()})
	}
}
