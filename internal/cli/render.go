package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackbox/pkg/errors"
	"github.com/matzehuels/stackbox/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file path, base path for multiple outputs, or "-" for stdout
	formats  []string // output formats: "svg", "json", "dot", "tree"
	width    int      // root width in pixels (0 keeps the document's)
	height   int      // root height in pixels (0 keeps the document's)
	scale    float64  // DPI scale factor for scroll bars
	palette  string   // SVG palette: "paper" or "blueprint"
	title    string   // SVG title
	noLabels bool     // omit element labels
	hidden   bool     // keep frames scrolled out of view in JSON
	detailed bool     // show sizes and scroll state in tree diagrams
	refresh  bool     // skip cache reads
	cache    cacheFlags
}

// renderCommand creates the render command for generating outputs.
//
// Default settings:
//   - format: svg
//   - palette: paper
//   - size: the document's own width and height
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{scale: 1, palette: pipeline.DefaultPalette}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render an arranged layout document",
		Long: `Arrange a layout document and render it.

Formats:
  svg   the arranged frames with scroll bars
  json  the arranged frames as data
  dot   the container tree in Graphviz DOT
  tree  the container tree drawn as SVG`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if err := pipeline.ValidatePalette(opts.palette); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format), base path (multiple), or - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, dot, tree (comma-separated)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "root width (default: document width)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "root height (default: document height)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "DPI scale factor for scroll bars")
	cmd.Flags().StringVar(&opts.palette, "palette", opts.palette, "SVG palette: paper (default), blueprint")
	cmd.Flags().StringVar(&opts.title, "title", "", "title embedded in the output")
	cmd.Flags().BoolVar(&opts.noLabels, "no-labels", false, "omit element labels")
	cmd.Flags().BoolVar(&opts.hidden, "hidden", false, "include frames scrolled out of view (json)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show sizes and scroll state (dot, tree)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results")
	opts.cache.register(cmd)

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if opts.output == "-" && len(opts.formats) > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "stdout output takes a single format, got %d", len(opts.formats))
	}

	src, err := readSource(cmd, input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.cache)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := runnerOptions(opts.width, opts.height, opts.scale)
	popts.Formats = opts.formats
	popts.Palette = opts.palette
	popts.Title = opts.title
	popts.NoLabels = opts.noLabels
	popts.ShowHidden = opts.hidden
	popts.Detailed = opts.detailed
	popts.Refresh = opts.refresh

	var spinner *Spinner
	if opts.output != "-" && logger.GetLevel() > log.DebugLevel {
		spinner = newSpinnerWithContext(ctx, "Rendering "+input+"...")
		spinner.Start()
	}
	result, err := runner.Execute(ctx, src, popts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	if opts.output == "-" {
		return writeTo(cmd.OutOrStdout(), result.Artifacts[opts.formats[0]])
	}

	paths := outputPaths(opts.output, input, opts.formats)
	printSuccess("Rendered %s at %dx%d", filepath.Base(input), result.Snapshot.Width, result.Snapshot.Height)
	printStats(result.Stats.Frames, result.Stats.Containers, result.CacheInfo.RenderHit)
	for _, format := range opts.formats {
		path := paths[format]
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		logger.Debugf("Generated %s: %d bytes", format, len(result.Artifacts[format]))
		printFile(path)
	}
	return nil
}

// fileExt maps a format to the extension of its output file.
func fileExt(format string) string {
	switch format {
	case pipeline.FormatTree:
		return "tree.svg"
	default:
		return format
	}
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .json, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		if input == "-" {
			return "stdin"
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPaths assigns an output file to every format. A single format
// written to an explicit output path uses that path as given.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + "." + fileExt(f)
	}
	return paths
}
