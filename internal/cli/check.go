package cli

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackbox/pkg/errors"
	"github.com/matzehuels/stackbox/pkg/layout"
)

// checkOpts holds the command-line flags for the check command.
type checkOpts struct {
	screen string  // work area as WxH for fitting a window
	scale  float64 // DPI scale factor for scroll bar metrics
	cache  cacheFlags
}

// checkCommand creates the check command, which reports the minimum size of
// a document's root content.
func (c *CLI) checkCommand() *cobra.Command {
	opts := checkOpts{scale: 1}

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Report the minimum size of a layout document",
		Long: `Compute the minimum size of a document's root content.

With --screen the command also sizes a top-level window for that content on
a work area of the given size, adding scroll bars for axes that overflow.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.screen, "screen", "", "work area as WxH (e.g. 1920x1040)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "DPI scale factor for scroll bars")
	opts.cache.register(cmd)

	return cmd
}

func (c *CLI) runCheck(cmd *cobra.Command, path string, opts checkOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	var work image.Point
	if opts.screen != "" {
		var err error
		if work, err = parseSize(opts.screen); err != nil {
			return err
		}
	}

	src, err := readSource(cmd, path)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.cache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	size, hit, err := runner.CheckWithCacheInfo(ctx, src, runnerOptions(0, 0, opts.scale))
	if err != nil {
		return err
	}
	prog.done("Checked document")

	printKeyValue("min size", formatSize(size))
	if opts.screen != "" {
		fit := layout.FitWindow(size, work, layout.DefaultMetrics.Scaled(opts.scale))
		printKeyValue("window", formatSize(fit.Size))
		printKeyValue("scroll bars", formatBars(fit.HBar, fit.VBar))
	}
	printStats(0, 0, hit)
	printNextStep("Render it", appName+" render "+path)
	return nil
}

// parseSize parses a "WxH" size.
func parseSize(s string) (image.Point, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return image.Point{}, errors.New(errors.ErrCodeInvalidInput, "invalid size %q (want WxH)", s)
	}
	x, errW := strconv.Atoi(strings.TrimSpace(w))
	y, errH := strconv.Atoi(strings.TrimSpace(h))
	if errW != nil || errH != nil || x < 0 || y < 0 {
		return image.Point{}, errors.New(errors.ErrCodeInvalidInput, "invalid size %q (want WxH)", s)
	}
	return image.Pt(x, y), nil
}

func formatSize(p image.Point) string {
	return fmt.Sprintf("%dx%d", p.X, p.Y)
}

func formatBars(h, v bool) string {
	switch {
	case h && v:
		return "horizontal, vertical"
	case h:
		return "horizontal"
	case v:
		return "vertical"
	}
	return "none"
}
