// main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/buffos/go-tracker/internal/chartinfo"
	"github.com/buffos/go-tracker/internal/config"
	"github.com/buffos/go-tracker/internal/logger"
	"github.com/buffos/go-tracker/internal/render"
	"github.com/buffos/go-tracker/internal/scene"
)

var (
	outputPath string
	watch      bool
	scope      string
)

var supportedFormats = map[string]bool{"html": true, "svg": true, "png": true, "jpg": true, "jpeg": true}

// errorStyle prints chart diagnostics the way the chart itself shows them.
var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tracker <chart.json|chart.yaml> <format>",
		Short: "Render a tracker chart document",
		Long: `tracker lays out a line or bar chart from a chart document and writes it
as svg, html, png or jpg (jpeg).`,
		Args:          cobra.ExactArgs(2),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Render again whenever the chart document changes (needs -o)")
	rootCmd.Flags().StringVar(&scope, "scope", "", "Fixed element id scope (default: random per render)")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		stop()
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	chartPath := args[0]
	format := strings.ToLower(args[1])
	if !supportedFormats[format] {
		return fmt.Errorf("unsupported export format '%s'. Supported formats: html, svg, png, jpg/jpeg", format)
	}
	if watch && outputPath == "" {
		return errors.New("--watch needs an output file")
	}

	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return err
	}
	log := cfg.Logger()
	logger.SetGlobal(log)

	r := &chartRenderer{
		cfg:      cfg,
		log:      log.WithComponent("cli"),
		measurer: cfg.Measurer(log),
		scope:    scope,
	}
	if !watch {
		return r.renderFile(cmd.Context(), chartPath, format, outputPath)
	}
	return r.watchFile(cmd.Context(), chartPath, format, outputPath)
}

// chartRenderer turns chart documents into output files.
type chartRenderer struct {
	cfg      *config.Config
	log      *logger.Logger
	measurer scene.Measurer
	scope    string
}

// renderFile loads one chart document and writes it in format to outPath,
// or to stdout when outPath is empty. A chart that cannot be laid out is
// still written, showing its diagnostic, and the diagnostic is returned.
func (r *chartRenderer) renderFile(ctx context.Context, chartPath, format, outPath string) error {
	r.log.Info("reading chart", logger.Fields{"path": chartPath})
	info, err := chartinfo.LoadFile(chartPath)
	if err != nil {
		return err
	}

	sc, renderErr := r.draw(info)

	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("error creating output file '%s': %w", outPath, err)
		}
		defer f.Close()
		w = f
	}
	if err := r.export(ctx, sc, info, renderErr, format, w); err != nil {
		if outPath != "" {
			os.Remove(outPath)
		}
		return fmt.Errorf("error generating %s: %w", format, err)
	}
	r.log.Info("chart written", logger.Fields{"format": format, "output": outputName(outPath)})
	if renderErr != nil {
		return fmt.Errorf("chart %s: %w", chartPath, renderErr)
	}
	return nil
}

// draw lays out the chart on a fresh scene. On a layout diagnostic the
// scene shows the diagnostic instead of the chart.
func (r *chartRenderer) draw(info *chartinfo.RenderInfo) (*scene.Scene, error) {
	opts := []scene.Option{scene.WithMeasurer(r.measurer)}
	if r.scope != "" {
		opts = append(opts, scene.WithScope(r.scope))
	}
	sc := scene.New(opts...)
	err := render.Render(sc, info,
		render.WithTruncateExpand(r.cfg.TruncateExpand),
		render.WithLogger(r.log.WithComponent("render")),
	)
	if err != nil {
		render.RenderError(sc, err)
	}
	return sc, err
}

// export writes a drawn scene in format.
func (r *chartRenderer) export(ctx context.Context, sc *scene.Scene, info *chartinfo.RenderInfo, renderErr error, format string, w io.Writer) error {
	switch format {
	case "svg":
		return generateSVG(sc, renderErr, w)
	case "html":
		page, err := generateHTML(sc, chartTitle(info))
		if err != nil {
			return fmt.Errorf("HTML generation failed: %w", err)
		}
		_, err = io.WriteString(w, page)
		return err
	case "png", "jpg", "jpeg":
		var svg strings.Builder
		if err := generateSVG(sc, renderErr, &svg); err != nil {
			return fmt.Errorf("failed to generate intermediate SVG: %w", err)
		}
		return generateImage(ctx, svg.String(), format, w, imageOptions{
			Quality: r.cfg.JPEGQuality,
			Timeout: r.cfg.BrowserTimeout,
			Log:     r.log.WithComponent("image"),
		})
	default:
		return fmt.Errorf("internal error: unsupported format '%s'", format)
	}
}

// generateSVG writes the chart svg, or a standalone diagnostic document when
// the chart could not be drawn.
func generateSVG(sc *scene.Scene, renderErr error, w io.Writer) error {
	sizes := scene.WithFontSizes(sc.FontSizes())
	if renderErr != nil {
		return scene.WriteDiagnosticSVG(w, renderErr.Error(), sizes)
	}
	svgs := sc.Canvas.FindAll("svg")
	if len(svgs) == 0 {
		return errors.New("nothing was drawn for this output type")
	}
	return scene.WriteSVG(w, svgs[0], sizes)
}

// watchFile renders the chart, then renders it again after every change to
// the document until ctx is done. Diagnostics do not stop the watch.
func (r *chartRenderer) watchFile(ctx context.Context, chartPath, format, outPath string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed creating file watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file, so the directory is watched.
	abs, err := filepath.Abs(chartPath)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed watching %s: %w", chartPath, err)
	}

	rerender := func() {
		if err := r.renderFile(ctx, chartPath, format, outPath); err != nil {
			r.log.Warn("render failed", logger.Fields{"path": chartPath, "error": err.Error()})
		}
	}
	rerender()
	r.log.Info("watching for changes", logger.Fields{"path": chartPath})

	const settle = 100 * time.Millisecond
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			pending = time.After(settle)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.log.Warn("watch error", logger.Fields{"error": err.Error()})
		case <-pending:
			pending = nil
			rerender()
		}
	}
}

func chartTitle(info *chartinfo.RenderInfo) string {
	if c := info.ChartInfo(); c != nil && c.Title != "" {
		return c.Title
	}
	return "Tracker"
}

func outputName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}
