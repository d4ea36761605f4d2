package termhost

import (
	"fmt"
	"image"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/stackbox/pkg/document"
	"github.com/matzehuels/stackbox/pkg/layout"
	"github.com/matzehuels/stackbox/pkg/render"
)

// DefaultCell is the pixel size of one terminal cell.
var DefaultCell = image.Pt(8, 16)

// Measurer measures labels in whole cells of the given size.
func Measurer(cell image.Point) document.Measurer {
	return document.CellMeasurer{CellWidth: cell.X, CellHeight: cell.Y}
}

// Option configures a [Model].
type Option func(*Model)

// WithCellSize sets the pixel size of one terminal cell.
func WithCellSize(cell image.Point) Option {
	return func(m *Model) {
		if cell.X > 0 && cell.Y > 0 {
			m.cell = cell
		}
	}
}

// WithoutStatusLine hides the status line below the layout.
func WithoutStatusLine() Option { return func(m *Model) { m.status = false } }

// Model is the Bubble Tea model hosting a container tree.
type Model struct {
	tree   *layout.Tree
	labels map[layout.ChildID]string
	damage *Damage
	cell   image.Point
	status bool

	cols, rows int
	snap       render.Snapshot
	focus      layout.ChildID
	frame      string
}

// New creates a model for tree. damage may be nil, in which case every
// event repaints.
func New(tree *layout.Tree, labels map[layout.ChildID]string, damage *Damage, opts ...Option) Model {
	m := Model{
		tree:   tree,
		labels: labels,
		damage: damage,
		cell:   DefaultCell,
		status: true,
		focus:  tree.Root().ID(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Run starts a full-screen program with mouse support and blocks until the
// user quits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Snapshot returns the last painted arrangement.
func (m Model) Snapshot() render.Snapshot { return m.snap }

// Focus returns the container receiving keyboard scroll commands.
func (m Model) Focus() layout.ChildID { return m.focus }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, max(1, msg.Height-m.statusLines())
		m.tree.Root().Dispatch(layout.ResizeEvent{Width: m.cols * m.cell.X, Height: m.rows * m.cell.Y})
	case tea.MouseMsg:
		if !m.wheel(msg) {
			return m, nil
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.focus = m.nextFocus()
		default:
			if !m.key(msg.String()) {
				return m, nil
			}
		}
	default:
		return m, nil
	}
	m.repaint()
	return m, nil
}

func (m Model) View() string {
	if m.cols == 0 {
		return ""
	}
	if !m.status {
		return m.frame
	}
	return m.frame + "\n" + m.statusLine()
}

func (m *Model) repaint() {
	if m.damage != nil && !m.damage.Dirty() && m.frame != "" {
		return
	}
	m.snap = render.Take(m.tree, render.WithLabels(m.labels))
	m.frame = paint(m.snap, m.cell, m.cols, m.rows).render()
	if m.damage != nil {
		m.damage.Clear()
	}
}

func (m Model) statusLines() int {
	if m.status {
		return 1
	}
	return 0
}

// wheel routes a wheel rotation to the container under the cursor. Shift
// turns a vertical rotation into a horizontal one.
func (m Model) wheel(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress {
		return false
	}
	var ev layout.WheelEvent
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		ev = layout.WheelEvent{Axis: layout.Vertical, Delta: layout.WheelDelta}
	case tea.MouseButtonWheelDown:
		ev = layout.WheelEvent{Axis: layout.Vertical, Delta: -layout.WheelDelta}
	case tea.MouseButtonWheelLeft:
		ev = layout.WheelEvent{Axis: layout.Horizontal, Delta: -layout.WheelDelta}
	case tea.MouseButtonWheelRight:
		ev = layout.WheelEvent{Axis: layout.Horizontal, Delta: layout.WheelDelta}
	default:
		return false
	}
	if msg.Shift && ev.Axis == layout.Vertical {
		ev = layout.WheelEvent{Axis: layout.Horizontal, Delta: -ev.Delta}
	}
	p := image.Pt(msg.X*m.cell.X+m.cell.X/2, msg.Y*m.cell.Y+m.cell.Y/2)
	c, ok := m.tree.Lookup(m.snap.ContainerAt(p))
	if !ok {
		return false
	}
	return c.Dispatch(ev)
}

// key translates a navigation key into a scroll command on the focused
// container. Arrows move by one cell.
func (m Model) key(k string) bool {
	c := m.focused()
	pos := c.ScrollPos()
	var ev layout.ScrollEvent
	switch k {
	case "up", "k":
		ev = layout.ScrollEvent{Axis: layout.Vertical, Command: layout.ScrollThumbTrack, Pos: pos.Y - m.cell.Y}
	case "down", "j":
		ev = layout.ScrollEvent{Axis: layout.Vertical, Command: layout.ScrollThumbTrack, Pos: pos.Y + m.cell.Y}
	case "left", "h":
		ev = layout.ScrollEvent{Axis: layout.Horizontal, Command: layout.ScrollThumbTrack, Pos: pos.X - m.cell.X}
	case "right", "l":
		ev = layout.ScrollEvent{Axis: layout.Horizontal, Command: layout.ScrollThumbTrack, Pos: pos.X + m.cell.X}
	case "pgup":
		ev = layout.ScrollEvent{Axis: layout.Vertical, Command: layout.ScrollPageUp}
	case "pgdown", " ":
		ev = layout.ScrollEvent{Axis: layout.Vertical, Command: layout.ScrollPageDown}
	case "home", "g":
		ev = layout.ScrollEvent{Axis: layout.Vertical, Command: layout.ScrollTop}
	case "end", "G":
		ev = layout.ScrollEvent{Axis: layout.Vertical, Command: layout.ScrollBottom}
	default:
		return false
	}
	return c.Dispatch(ev)
}

func (m Model) focused() *layout.Container {
	if c, ok := m.tree.Lookup(m.focus); ok {
		return c
	}
	return m.tree.Root()
}

// nextFocus cycles through the containers that show scroll bars, falling
// back to the root.
func (m Model) nextFocus() layout.ChildID {
	var ids []layout.ChildID
	for _, vp := range m.snap.Viewports {
		if len(vp.Scrollbars) > 0 {
			ids = append(ids, vp.ID)
		}
	}
	if len(ids) == 0 {
		return m.tree.Root().ID()
	}
	for i, id := range ids {
		if id == m.focus {
			return ids[(i+1)%len(ids)]
		}
	}
	return ids[0]
}

func (m Model) statusLine() string {
	c := m.focused()
	pos, field, size := c.ScrollPos(), c.FieldSize(), c.ContentSize()
	info := fmt.Sprintf(" %s  scroll %d,%d  field %dx%d  view %dx%d ",
		c.ID(), pos.X, pos.Y, field.X, field.Y, size.X, size.Y)
	return styleStatus.Render(info) + styleHelp.Render("  tab focus · arrows scroll · pgup/pgdn · home/end · q quit")
}
