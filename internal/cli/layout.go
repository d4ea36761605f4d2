package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackbox/pkg/layout"
	"github.com/matzehuels/stackbox/pkg/pipeline"
	"github.com/matzehuels/stackbox/pkg/render"
	"github.com/matzehuels/stackbox/pkg/render/sink"
)

// layoutOpts holds the command-line flags for the layout command.
type layoutOpts struct {
	width   int     // root width in pixels (0 keeps the document's)
	height  int     // root height in pixels (0 keeps the document's)
	scale   float64 // DPI scale factor for scroll bars
	json    bool    // print the snapshot as JSON
	hidden  bool    // include frames scrolled out of view
	refresh bool    // skip cache reads
	cache   cacheFlags
}

// layoutCommand creates the layout command, which arranges a document at a
// given size and lists the resulting frames.
func (c *CLI) layoutCommand() *cobra.Command {
	opts := layoutOpts{scale: 1}

	cmd := &cobra.Command{
		Use:   "layout [file]",
		Short: "Arrange a layout document and list its frames",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 0, "root width (default: document width)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "root height (default: document height)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "DPI scale factor for scroll bars")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the arrangement as JSON")
	cmd.Flags().BoolVar(&opts.hidden, "hidden", false, "include frames scrolled out of view")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results")
	opts.cache.register(cmd)

	return cmd
}

func (c *CLI) runLayout(cmd *cobra.Command, path string, opts layoutOpts) error {
	ctx := cmd.Context()

	src, err := readSource(cmd, path)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.cache)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := runnerOptions(opts.width, opts.height, opts.scale)
	popts.Refresh = opts.refresh
	snap, hit, err := runner.LayoutWithCacheInfo(ctx, src, popts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.json {
		jopts := []sink.JSONOption{sink.WithJSONSource(filepath.Base(path))}
		if opts.hidden {
			jopts = append(jopts, sink.WithJSONHidden())
		}
		data, err := sink.RenderJSON(snap, jopts...)
		if err != nil {
			return err
		}
		return writeTo(out, data)
	}

	printSuccess("Arranged %s at %dx%d", filepath.Base(path), snap.Width, snap.Height)
	printStats(len(snap.Frames), len(snap.Viewports), hit)
	if len(snap.Viewports) > 0 && len(snap.Viewports[0].Scrollbars) > 0 {
		printWarning("Root content does not fit; scroll bars shown")
	}
	fmt.Fprintln(out, frameTable(snap, opts.hidden))
	return nil
}

// frameTable renders the frames of snap as a table, one row per frame,
// indented by depth.
func frameTable(snap render.Snapshot, hidden bool) string {
	frames := snap.Frames
	if !hidden {
		frames = snap.Visible()
	}

	rows := make([][]string, 0, len(frames))
	for _, f := range frames {
		kind := "element"
		if f.Container {
			if vp, ok := viewport(snap, f.ID); ok {
				kind = vp.Mode
			}
		}
		rows = append(rows, []string{
			strings.Repeat("  ", f.Depth) + string(f.ID),
			kind,
			formatRect(f.Rect),
			formatRect(f.Clip),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Child", "Kind", "Rect", "Visible").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row < len(frames) && !frames[row].Visible() {
				return base.Foreground(colorDim)
			}
			if col == 1 && row < len(frames) && frames[row].Container {
				return base.Foreground(colorCyan)
			}
			return base
		})

	return t.Render()
}

func viewport(snap render.Snapshot, id layout.ChildID) (render.Viewport, bool) {
	for _, vp := range snap.Viewports {
		if vp.ID == id {
			return vp, true
		}
	}
	return render.Viewport{}, false
}

func formatRect(r render.Rect) string {
	if r.Empty() {
		return "-"
	}
	return fmt.Sprintf("%d,%d %dx%d", r.X, r.Y, r.W, r.H)
}

// runnerOptions builds pipeline options for a root size and scale.
func runnerOptions(width, height int, scale float64) pipeline.Options {
	return pipeline.Options{Width: width, Height: height, Scale: scale}
}

// writeTo writes data to w followed by a newline unless data ends in one.
func writeTo(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}
