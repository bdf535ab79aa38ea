// maxrects packs rectangular items into fixed-size containers with a greedy
// MaxRects best-fit heuristic and reports the result.
//
// Build:
//   go build -o maxrects ./cmd/maxrects
//
// Examples:
//   maxrects -items 100 -containers 2 -seed 42 -png layout.png
//   maxrects -input parts.csv -width 2440 -height 1220 -pdf report.pdf -xlsx result.xlsx
//   maxrects -config ~/.maxrects/config.json -v=2

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"k8s.io/klog/v2"

	"github.com/piwi3910/maxrects/internal/engine"
	"github.com/piwi3910/maxrects/internal/export"
	"github.com/piwi3910/maxrects/internal/generate"
	"github.com/piwi3910/maxrects/internal/importer"
	"github.com/piwi3910/maxrects/internal/model"
	"github.com/piwi3910/maxrects/internal/project"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		klog.ErrorS(err, "maxrects failed")
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}

// options holds the command line values that are not part of AppConfig.
type options struct {
	configPath string
	input      string
	saveConfig string
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("maxrects", flag.ContinueOnError)
	klog.InitFlags(fs)

	defaults := model.DefaultAppConfig()
	var (
		opts    options
		flagged model.AppConfig
	)
	fs.StringVar(&opts.configPath, "config", "", "JSON config file (missing file means defaults)")
	fs.StringVar(&opts.input, "input", "", "import items from a .csv, .xlsx or .dxf file instead of generating them")
	fs.StringVar(&opts.saveConfig, "save-config", "", "write the effective config to this path")
	fs.IntVar(&flagged.Items, "items", defaults.Items, "number of random items")
	fs.IntVar(&flagged.Containers, "containers", defaults.Containers, "number of containers")
	fs.IntVar(&flagged.ContainerWidth, "width", defaults.ContainerWidth, "container width")
	fs.IntVar(&flagged.ContainerHeight, "height", defaults.ContainerHeight, "container height")
	fs.IntVar(&flagged.MinItemSide, "min-side", defaults.MinItemSide, "smallest random item side")
	fs.IntVar(&flagged.MaxItemSide, "max-side", defaults.MaxItemSide, "largest random item side")
	fs.Int64Var(&flagged.Seed, "seed", defaults.Seed, "random seed (0 = time based)")
	fs.IntVar(&flagged.Pack.Workers, "workers", defaults.Pack.Workers, "search goroutines (0 = one per CPU)")
	fs.StringVar(&flagged.Outputs.PNG, "png", defaults.Outputs.PNG, "write a PNG layout")
	fs.StringVar(&flagged.Outputs.PDF, "pdf", "", "write a PDF report")
	fs.StringVar(&flagged.Outputs.Labels, "labels", "", "write a PDF of QR labels")
	fs.StringVar(&flagged.Outputs.DXF, "dxf", "", "write a DXF layout")
	fs.StringVar(&flagged.Outputs.Excel, "xlsx", "", "write an Excel workbook")
	fs.StringVar(&flagged.Outputs.Report, "json", "", "write a JSON run report")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg := defaults
	if opts.configPath != "" {
		loaded, err := project.LoadAppConfig(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	applyFlags(fs, &cfg, flagged)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if opts.saveConfig != "" {
		if err := project.SaveAppConfig(opts.saveConfig, cfg); err != nil {
			return err
		}
		klog.InfoS("Saved config", "path", opts.saveConfig)
	}

	containers := generate.Containers(cfg.Containers, cfg.ContainerWidth, cfg.ContainerHeight)

	var (
		items []model.Item
		seed  int64
	)
	if opts.input != "" {
		var err error
		items, err = importItems(opts.input)
		if err != nil {
			return err
		}
	} else {
		var rng *rand.Rand
		rng, seed = generate.NewRand(cfg.Seed, func() int64 { return time.Now().UnixNano() })
		items = generate.Items(rng, cfg.Items, cfg.MinItemSide, cfg.MaxItemSide)
		klog.V(1).InfoS("Generated items", "count", len(items), "seed", seed)
	}

	start := time.Now()
	result := engine.NewWithSettings(cfg.Pack, items, containers).Place()
	klog.V(1).InfoS("Packing finished", "placed", len(result.Placed), "missed", len(result.Unplaced), "elapsed", time.Since(start))

	for _, msg := range engine.FormatViolations(engine.Check(result, containers)) {
		klog.Warning(msg)
	}

	printResult(stdout, result, containers, cfg)

	return writeOutputs(cfg, seed, containers, result)
}

// applyFlags copies every flag the user set explicitly over cfg, so a config
// file only loses the values named on the command line.
func applyFlags(fs *flag.FlagSet, cfg *model.AppConfig, flagged model.AppConfig) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "items":
			cfg.Items = flagged.Items
		case "containers":
			cfg.Containers = flagged.Containers
		case "width":
			cfg.ContainerWidth = flagged.ContainerWidth
		case "height":
			cfg.ContainerHeight = flagged.ContainerHeight
		case "min-side":
			cfg.MinItemSide = flagged.MinItemSide
		case "max-side":
			cfg.MaxItemSide = flagged.MaxItemSide
		case "seed":
			cfg.Seed = flagged.Seed
		case "workers":
			cfg.Pack.Workers = flagged.Pack.Workers
		case "png":
			cfg.Outputs.PNG = flagged.Outputs.PNG
		case "pdf":
			cfg.Outputs.PDF = flagged.Outputs.PDF
		case "labels":
			cfg.Outputs.Labels = flagged.Outputs.Labels
		case "dxf":
			cfg.Outputs.DXF = flagged.Outputs.DXF
		case "xlsx":
			cfg.Outputs.Excel = flagged.Outputs.Excel
		case "json":
			cfg.Outputs.Report = flagged.Outputs.Report
		}
	})
}

var errNoItems = errors.New("no items imported")

// importItems loads items from a file, choosing the importer by extension.
func importItems(path string) ([]model.Item, error) {
	var res importer.ImportResult
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		res = importer.ImportCSV(path)
	case ".xlsx", ".xlsm":
		res = importer.ImportExcel(path)
	case ".dxf":
		res = importer.ImportDXF(path)
	default:
		return nil, fmt.Errorf("unsupported input file %s", path)
	}

	for _, w := range res.Warnings {
		klog.Warningf("%s: %s", path, w)
	}
	for _, e := range res.Errors {
		klog.Errorf("%s: %s", path, e)
	}
	if len(res.Items) == 0 {
		return nil, fmt.Errorf("%s: %w", path, errNoItems)
	}
	klog.InfoS("Imported items", "path", path, "count", len(res.Items), "errors", len(res.Errors))
	return res.Items, nil
}

func printResult(w io.Writer, result model.Result, containers []model.FreeRect, cfg model.AppConfig) {
	fmt.Fprintf(w, "Placed: %v\n", result.Placed)
	fmt.Fprintf(w, "Missed: %v\n", result.Unplaced)
	fmt.Fprintf(w, "Remaining regions: %v\n", result.Free)
	fmt.Fprintf(w, "Percentage Packed: %.2f%%\n", model.PackedPercentage(result.Placed, containers))

	offcuts := model.Offcuts(result.Free, cfg.MinOffcutDimension, cfg.MinOffcutArea)
	if len(offcuts) > 0 {
		fmt.Fprintf(w, "Reusable offcuts: %v\n", offcuts)
	}
}

// writeOutputs writes every output named in cfg.Outputs and stops at the
// first failure. Outputs with nothing to show are skipped with a warning.
func writeOutputs(cfg model.AppConfig, seed int64, containers []model.FreeRect, result model.Result) error {
	out := cfg.Outputs
	writers := []struct {
		kind  string
		path  string
		draws bool // renders the containers, so needs at least one
		write func(string) error
	}{
		{"PNG", out.PNG, true, func(p string) error { return export.RenderPNG(p, result.Placed, containers) }},
		{"PDF", out.PDF, true, func(p string) error { return export.ExportPDF(p, result, containers) }},
		{"labels", out.Labels, false, func(p string) error { return export.ExportLabels(p, result) }},
		{"DXF", out.DXF, true, func(p string) error { return export.ExportDXF(p, result, containers) }},
		{"Excel", out.Excel, false, func(p string) error { return export.ExportExcel(p, result, containers) }},
		{"report", out.Report, false, func(p string) error {
			return project.WriteReport(p, project.NewReport(cfg, seed, containers, result))
		}},
	}

	for _, w := range writers {
		if w.path == "" {
			continue
		}
		if w.draws && len(containers) == 0 {
			klog.Warningf("No containers, skipping %s output %s", w.kind, w.path)
			continue
		}
		if w.kind == "labels" && len(result.Placed) == 0 {
			klog.Warningf("Nothing placed, skipping labels output %s", w.path)
			continue
		}
		if err := w.write(w.path); err != nil {
			return fmt.Errorf("%s output: %w", w.kind, err)
		}
		klog.InfoS("Wrote output", "kind", w.kind, "path", w.path)
	}
	return nil
}
