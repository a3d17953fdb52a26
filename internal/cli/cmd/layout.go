package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/docking"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/container"
	"github.com/bnema/dockyard/internal/logging"
)

const (
	defaultLayoutWidth  = 1280
	defaultLayoutHeight = 800
	layoutFilePerm      = 0o644
)

var (
	validateLenient bool
	validateJobs    int
	inspectWidth    float64
	inspectHeight   float64
	inspectGeometry bool
	inspectDraw     bool
	demoOutput      string
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Validate, inspect and generate layout files",
}

var layoutValidateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check layout files against the configured panel types",
	Long: `Restore every file into its own headless layout and check the tree invariants.

Files are checked concurrently. Unknown panel types are errors unless
--lenient is set, in which case only the structure is checked.

Examples:
  dockyard layout validate layout.json
  dockyard layout validate --lenient layouts/*.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLayoutValidate,
}

var layoutInspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Print the tree of a layout file",
	Long: `Restore a layout into a headless container of the given size and print
its tree: splitters with their positions, frames with their tabs, drawers
and floating frames.`,
	Args: cobra.ExactArgs(1),
	RunE: runLayoutInspect,
}

var layoutDemoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Write the demo layout as JSON",
	Args:  cobra.NoArgs,
	RunE:  runLayoutDemo,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.AddCommand(layoutValidateCmd, layoutInspectCmd, layoutDemoCmd)

	layoutValidateCmd.Flags().BoolVar(&validateLenient, "lenient", false, "register unknown panel types instead of failing")
	layoutValidateCmd.Flags().IntVarP(&validateJobs, "jobs", "j", runtime.NumCPU(), "files checked in parallel")

	layoutInspectCmd.Flags().Float64Var(&inspectWidth, "width", defaultLayoutWidth, "container width in pixels")
	layoutInspectCmd.Flags().Float64Var(&inspectHeight, "height", defaultLayoutHeight, "container height in pixels")
	layoutInspectCmd.Flags().BoolVarP(&inspectGeometry, "geometry", "g", false, "print node rectangles")
	layoutInspectCmd.Flags().BoolVar(&inspectDraw, "draw", false, "draw the layout with the preview cell size")

	layoutDemoCmd.Flags().StringVarP(&demoOutput, "output", "o", "", "output file (default stdout)")
}

// checkResult is the outcome of validating one layout file.
type checkResult struct {
	Path   string
	Panels int
	Err    error
}

// dockerFactory builds an independent docker for one file.
type dockerFactory func() *docking.Docker

// validateFiles checks every file on its own docker, at most jobs at a time.
// Results keep the order of paths.
func validateFiles(ctx context.Context, paths []string, jobs int, lenient bool, newDocker dockerFactory) []checkResult {
	results := make([]checkResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = checkResult{Path: path, Err: err}
				return nil
			}
			results[i] = validateFile(ctx, path, lenient, newDocker())
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func validateFile(ctx context.Context, path string, lenient bool, d *docking.Docker) checkResult {
	log := logging.FromContext(logging.WithLayoutFile(ctx, path))
	res := checkResult{Path: path}

	doc, err := readLayoutFile(path)
	if err != nil {
		res.Err = err
		return res
	}
	if lenient {
		if added := cli.RegisterDocumentTypes(d, doc); len(added) > 0 {
			log.Debug().Strs("panel_types", added).Msg("registered unknown panel types")
		}
	}
	if err := d.RestoreDocument(doc); err != nil {
		res.Err = err
		return res
	}
	if err := d.CheckInvariants(); err != nil {
		res.Err = err
		return res
	}
	res.Panels = len(d.FindPanels(""))
	log.Debug().Int("panels", res.Panels).Msg("layout valid")
	return res
}

func readLayoutFile(path string) (*entity.LayoutDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	var doc entity.LayoutDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", docking.ErrMalformedLayout, err)
	}
	return &doc, nil
}

func runLayoutValidate(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	results := validateFiles(app.Context(), args, validateJobs, validateLenient, func() *docking.Docker {
		return app.NewDocker(container.NewFixed(defaultLayoutWidth, defaultLayoutHeight), nil)
	})

	failed := printResults(cmd.OutOrStdout(), styles.NewLayoutRenderer(app.Theme), results)
	if failed > 0 {
		return fmt.Errorf("%d of %d layout(s) invalid", failed, len(results))
	}
	return nil
}

func printResults(w io.Writer, r *styles.LayoutRenderer, results []checkResult) int {
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
		fmt.Fprintln(w, r.RenderCheck(res.Path, res.Panels, res.Err))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  "+r.RenderSummary(len(results)-failed, failed))
	return failed
}

func runLayoutInspect(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	doc, err := readLayoutFile(args[0])
	if err != nil {
		return err
	}
	d := app.NewDocker(container.NewFixed(inspectWidth, inspectHeight), nil)
	cli.RegisterDocumentTypes(d, doc)
	if err := d.RestoreDocument(doc); err != nil {
		return err
	}

	renderer := styles.NewLayoutRenderer(app.Theme)
	renderer.Geometry = inspectGeometry
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderer.RenderTree(d))

	if inspectDraw {
		cellW, cellH := app.Config.Preview.CellWidth, app.Config.Preview.CellHeight
		canvas := styles.NewCanvas(app.Theme, int(inspectWidth/cellW), int(inspectHeight/cellH), cellW, cellH)
		canvas.Draw(d)
		fmt.Fprintln(out)
		fmt.Fprintln(out, canvas.String())
	}

	if err := d.CheckInvariants(); err != nil {
		return err
	}
	return nil
}

// demoLayout builds the demo layout and returns it indented.
func demoLayout(d *docking.Docker) ([]byte, error) {
	cli.RegisterPanelTypes(d, cli.DemoPanelTypes)
	if err := cli.BuildDemoLayout(d); err != nil {
		return nil, err
	}
	data, err := d.Save()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func runLayoutDemo(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	data, err := demoLayout(app.NewDocker(container.NewFixed(defaultLayoutWidth, defaultLayoutHeight), nil))
	if err != nil {
		return fmt.Errorf("build demo layout: %w", err)
	}

	if demoOutput == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(demoOutput, data, layoutFilePerm); err != nil {
		return fmt.Errorf("write demo layout: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote demo layout to %s\n", demoOutput)
	return nil
}
