package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackbox/pkg/cache"
	"github.com/matzehuels/stackbox/pkg/layout"
	"github.com/matzehuels/stackbox/pkg/pipeline"
	"github.com/matzehuels/stackbox/pkg/termhost"
)

// viewOpts holds the command-line flags for the view command.
type viewOpts struct {
	cell     string  // pixel size of a terminal cell as WxH
	scale    float64 // DPI scale factor for scroll bars
	noStatus bool    // hide the status line
}

// viewCommand creates the view command, which hosts a document in the
// terminal. The root container follows the terminal size; the mouse wheel
// and the keyboard scroll the containers.
func (c *CLI) viewCommand() *cobra.Command {
	opts := viewOpts{cell: "8x16", scale: 1}

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Scroll through a layout document in the terminal",
		Long: `Host a layout document in the terminal.

Keys:
  arrows, hjkl     scroll the focused container
  pgup, pgdn       scroll by a page
  home, end        jump to the top or bottom
  tab              focus the next scrollable container
  q                quit

The mouse wheel scrolls the container under the cursor; hold shift to
scroll horizontally.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.cell, "cell", opts.cell, "pixel size of a terminal cell as WxH")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "DPI scale factor for scroll bars")
	cmd.Flags().BoolVar(&opts.noStatus, "no-status", false, "hide the status line")

	return cmd
}

func (c *CLI) runView(cmd *cobra.Command, path string, opts viewOpts) error {
	cell, err := parseSize(opts.cell)
	if err != nil {
		return err
	}

	src, err := readSource(cmd, path)
	if err != nil {
		return err
	}

	damage := termhost.NewDamage()
	runner := pipeline.NewRunner(cache.NewNullCache(), nil, c.Logger)
	defer runner.Close()

	tree, labels, err := runner.Tree(src, pipeline.Options{
		Scale:         opts.scale,
		Measurer:      termhost.Measurer(cell),
		LayoutOptions: []layout.Option{layout.WithSurfaces(damage.Surfaces())},
	})
	if err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Debug("hosting document", "containers", tree.Len())

	mopts := []termhost.Option{termhost.WithCellSize(cell)}
	if opts.noStatus {
		mopts = append(mopts, termhost.WithoutStatusLine())
	}
	return termhost.Run(termhost.New(tree, labels, damage, mopts...))
}
