package layout

import (
	"image"

	"github.com/matzehuels/stackbox/pkg/errors"
)

// Tree is a root container and every container nested below it. It keeps
// the child-to-parent table used for event bubbling; ownership runs from
// parent to child only.
type Tree struct {
	cfg    config
	root   *Container
	nodes  map[ChildID]*Container
	parent map[ChildID]ChildID
}

// New creates a tree whose root container has the given content size.
func New(width, height int, opts ...Option) *Tree {
	cfg := newConfig(opts...)
	t := &Tree{
		cfg:    cfg,
		nodes:  make(map[ChildID]*Container),
		parent: make(map[ChildID]ChildID),
	}
	t.root = newContainer(t, cfg.rootID, width, height, nil)
	t.root.handler = cfg.handler
	t.nodes[cfg.rootID] = t.root
	return t
}

// Root returns the root container.
func (t *Tree) Root() *Container { return t.root }

// Metrics returns the scaled scroll bar metrics used for negotiation.
func (t *Tree) Metrics() Metrics { return t.cfg.metrics }

// Lookup returns the container with the given id.
func (t *Tree) Lookup(id ChildID) (*Container, bool) {
	c, ok := t.nodes[id]
	return c, ok
}

// Len returns the number of containers in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Walk visits the containers depth first, parents before children, in
// creation order. Returning false from fn skips the container's subtree.
func (t *Tree) Walk(fn func(c *Container, depth int) bool) {
	var visit func(c *Container, depth int)
	visit = func(c *Container, depth int) {
		if !fn(c, depth) {
			return
		}
		for _, id := range c.nested {
			visit(c.nestedByID[id], depth+1)
		}
	}
	visit(t.root, 0)
}

func (t *Tree) parentOf(id ChildID) *Container {
	p, ok := t.parent[id]
	if !ok {
		return nil
	}
	return t.nodes[p]
}

func (t *Tree) forget(c *Container) {
	for _, id := range c.nested {
		t.forget(c.nestedByID[id])
	}
	delete(t.nodes, c.id)
	delete(t.parent, c.id)
}

// =============================================================================
// Nested containers
// =============================================================================

// NewChild creates a container nested in c. The child is known to c as a
// nested container but takes part in c's layout only once a record is
// registered under the same id. Container ids are unique within the tree.
func (c *Container) NewChild(id ChildID) (*Container, error) {
	if err := errors.ValidateID(string(id)); err != nil {
		return nil, err
	}
	if _, dup := c.tree.nodes[id]; dup {
		return nil, errors.New(errors.ErrCodeDuplicateChild, "container %s already exists", id)
	}
	n := newContainer(c.tree, id, 0, 0, c.surface)
	c.tree.nodes[id] = n
	c.tree.parent[id] = c.id
	c.nested = append(c.nested, id)
	c.nestedByID[id] = n
	return n, nil
}

// AddVStackContainer creates a nested container and registers it as a
// VStack child of c.
func (c *Container) AddVStackContainer(id ChildID, item VStackItem) (*Container, error) {
	return c.addContainer(id, item)
}

// AddHStackContainer creates a nested container and registers it as an
// HStack child of c.
func (c *Container) AddHStackContainer(id ChildID, item HStackItem) (*Container, error) {
	return c.addContainer(id, item)
}

// AddPlaceContainer creates a nested container and registers it as a Place
// child of c.
func (c *Container) AddPlaceContainer(id ChildID, item PlaceItem) (*Container, error) {
	return c.addContainer(id, item)
}

func (c *Container) addContainer(id ChildID, r Record) (*Container, error) {
	if c.mode != ModeNone && c.mode != r.mode() {
		return nil, errors.New(errors.ErrCodeInvalidMode, "container %s is a %s, cannot add %s child %s", c.id, c.mode, r.mode(), id)
	}
	if _, dup := c.records[id]; dup {
		return nil, errors.New(errors.ErrCodeDuplicateChild, "container %s already has child %s", c.id, id)
	}
	n, err := c.NewChild(id)
	if err != nil {
		return nil, err
	}
	if err := c.register(id, r); err != nil {
		c.RemoveChild(id)
		return nil, err
	}
	return n, nil
}

// =============================================================================
// Size propagation
// =============================================================================

// RecalcLayout propagates minimum sizes bottom-up: every nested container is
// recalculated first and its natural size is written into the record of its
// slot in c. The scroll positions restart at zero. If any slot was updated
// the container is arranged again. While stopped it does nothing.
func (c *Container) RecalcLayout() {
	if c.frozen {
		return
	}
	c.scrollH.Pos, c.scrollV.Pos = 0, 0
	adopted := false
	for _, id := range c.nested {
		n := c.nestedByID[id]
		n.RecalcLayout()
		r, ok := c.records[id]
		if !ok {
			continue
		}
		size := n.CheckLayout()
		c.records[id] = withSize(r, size.X, size.Y)
		adopted = true
	}
	if adopted {
		c.UpdateLayout()
	}
}

// RecalcLayoutStop freezes (true) or releases (false) RecalcLayout on c.
func (c *Container) RecalcLayoutStop(stop bool) { c.frozen = stop }

// CheckLayout returns the minimum size of the container's content without
// placing anything or touching the scroll state.
func (c *Container) CheckLayout() image.Point { return c.arrange(true) }

// =============================================================================
// Events
// =============================================================================

// Dispatch delivers a host event. The container's handler sees it first; an
// event it does not consume gets the default handling. A wheel event on an
// axis without range bubbles to the nearest ancestor that can scroll. The
// result reports whether some container consumed the event.
func (c *Container) Dispatch(ev Event) bool {
	if c.handler != nil && c.handler.Handle(c, ev) {
		return true
	}
	switch ev := ev.(type) {
	case ResizeEvent:
		c.width, c.height = max(0, ev.Width), max(0, ev.Height)
		c.UpdateLayout()
		return true
	case ScrollEvent:
		c.Scroll(ev.Axis, ev.Command, ev.Pos)
		return true
	case WheelEvent:
		if c.wheel(ev) {
			return true
		}
		if p := c.Parent(); p != nil {
			return p.Dispatch(ev)
		}
	}
	return false
}
