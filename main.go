package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"

	"LineGraph/internal/config"
	"LineGraph/internal/logging"
	"LineGraph/internal/series"
	"LineGraph/internal/snapshot"
)

func main() {
	var (
		configPath   string
		snapshotPath string
		dragX        float64
	)
	flag.StringVar(&configPath, "config", "linegraph.yaml", "Path to YAML config (optional)")
	flag.StringVar(&snapshotPath, "snapshot", "", "Render the graph to this PNG and exit")
	flag.Float64Var(&dragX, "drag", -1, "Guideline x position in pixels for -snapshot (negative for none)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		logging.Errorf("config: %v", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logging.Errorf("config: %v", err)
		os.Exit(1)
	}
	logging.SetLevel(cfg.LogLevel)
	logging.Infof("config loaded from %s (level=%s points=%d)", configPath, cfg.LogLevel, cfg.Data.Points)

	points, err := buildSeries(cfg)
	if err != nil {
		logging.Errorf("series: %v", err)
		os.Exit(1)
	}
	if !points.Ascending() {
		logging.Warnf("series timestamps are not ascending; selection labels may jump")
	}

	if snapshotPath != "" {
		if err := writeSnapshot(cfg, points, snapshotPath, dragX); err != nil {
			logging.Errorf("snapshot: %v", err)
			os.Exit(1)
		}
		logging.Infof("snapshot written to %s", snapshotPath)
		return
	}

	a := app.New()
	if cfg.Theme == "dark" {
		a.Settings().SetTheme(theme.DarkTheme())
	} else {
		a.Settings().SetTheme(theme.LightTheme())
	}
	w := a.NewWindow(cfg.Window.Title)
	w.SetContent(createGraphScreen(cfg, points))
	w.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	w.ShowAndRun()
	logging.Infof("Application exiting.")
}

func buildSeries(cfg *config.Config) (*series.Series, error) {
	start, err := cfg.StartTime()
	if err != nil {
		return nil, err
	}
	seed := cfg.Data.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logging.Debugf("generating %d points from %s every %s (seed=%d)", cfg.Data.Points, start.Format(time.RFC3339), cfg.Data.Step, seed)
	return series.Generate(cfg.Data.Points, start, cfg.Data.Step, rand.New(rand.NewSource(seed)))
}

func graphStyleFromConfig(cfg *config.Config) graphStyle {
	style := defaultGraphStyle()
	style.height = cfg.Graph.Height
	style.lineThickness = cfg.Graph.LineThickness
	style.verticalPadding = cfg.Graph.VerticalPadding
	return style
}

// createGraphScreen stacks the selected value above the graph. Before any
// selection the first point's value is shown.
func createGraphScreen(cfg *config.Config, points *series.Series) fyne.CanvasObject {
	valueText := canvas.NewText(formatValue(points.First().Value), theme.Color(theme.ColorNameForeground))
	valueText.TextSize = cfg.Graph.ValueFontSize
	valueText.Alignment = fyne.TextAlignCenter

	graph := newLineGraph(points, graphStyleFromConfig(cfg))
	graph.OnPointSelected = func(p series.Point) {
		valueText.Text = formatValue(p.Value)
		valueText.Refresh()
	}
	graph.OnGestureEnd = func() {
		logging.Debugf("gesture ended")
	}

	return container.NewVBox(container.NewPadded(valueText), graph)
}

func writeSnapshot(cfg *config.Config, points *series.Series, path string, dragX float64) error {
	opts := snapshot.DefaultOptions()
	opts.Width = cfg.Snapshot.Width
	opts.Height = cfg.Snapshot.Height
	opts.LineThickness = float64(cfg.Graph.LineThickness)
	opts.VerticalPadding = int(cfg.Graph.VerticalPadding)
	opts.DragX = dragX
	img, err := snapshot.Render(points, opts)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return snapshot.WritePNG(path, img)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
