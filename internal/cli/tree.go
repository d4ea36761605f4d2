package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackbox/pkg/pipeline"
	"github.com/matzehuels/stackbox/pkg/render/treeviz"
)

// treeOpts holds the command-line flags for the tree command.
type treeOpts struct {
	output   string // output file, stdout when empty
	dot      bool   // write DOT instead of SVG
	detailed bool   // show sizes and scroll state
	width    int
	height   int
}

// treeCommand creates the tree command, which draws the container tree of
// a document with Graphviz.
func (c *CLI) treeCommand() *cobra.Command {
	var opts treeOpts

	cmd := &cobra.Command{
		Use:   "tree [file]",
		Short: "Draw the container tree of a layout document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTree(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.dot, "dot", false, "write Graphviz DOT instead of SVG")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show sizes and scroll state")
	cmd.Flags().IntVar(&opts.width, "width", 0, "root width (default: document width)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "root height (default: document height)")

	return cmd
}

func (c *CLI) runTree(cmd *cobra.Command, path string, opts treeOpts) error {
	src, err := readSource(cmd, path)
	if err != nil {
		return err
	}

	doc, err := pipeline.Load(src)
	if err != nil {
		return err
	}
	popts := runnerOptions(opts.width, opts.height, 1)
	popts.Logger = c.Logger
	_, tree, err := pipeline.Arrange(doc, popts)
	if err != nil {
		return err
	}

	dot := treeviz.ToDOT(tree, treeviz.Options{Detailed: opts.detailed})
	data := []byte(dot)
	if !opts.dot {
		if data, err = treeviz.RenderSVG(dot); err != nil {
			return err
		}
	}

	if opts.output == "" {
		return writeTo(cmd.OutOrStdout(), data)
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return err
	}
	printSuccess("Drew %d containers", tree.Len())
	printFile(opts.output)
	return nil
}
