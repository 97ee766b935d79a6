// Command ficus opens a figure session for a subplot grid, labels each
// subplot with its index and saves and/or shows the result. It is a quick
// way to check a layout, sharing map or display back-end.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/damca/ficus/internal/config"
	"github.com/damca/ficus/internal/figure"
	"github.com/damca/ficus/internal/version"
)

var (
	rows        = flag.Int("rows", 1, "Number of subplot rows")
	cols        = flag.Int("cols", 1, "Number of subplot columns")
	share       = flag.String("share", "", "Axis sharing: 'all' or 'i:sharex=j,sharey=k;...'")
	output      = flag.String("o", "", "Save the figure to this path (format from extension)")
	dpi         = flag.Int("dpi", 0, "Save resolution (0 uses the configured default)")
	show        = flag.Bool("show", false, "Show the figure and wait until it is closed")
	displayName = flag.String("display", "", "Display back-end: window, http or none")
	httpAddr    = flag.String("http-addr", "", "Listen address for the http display back-end")
	figSize     = flag.String("figsize", "", "Figure size in inches as 'width,height'")
	tight       = flag.String("tight", "", "Fit subplots into 'left,bottom,right,top' figure fractions")
	configPath  = flag.String("config", "", "Path to a JSON file of figure defaults")
	noMove      = flag.Bool("no-move", false, "Do not reposition the window before showing")
	showVersion = flag.Bool("version", false, "Print version information and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	defaults, err := loadDefaults(*configPath)
	if err != nil {
		log.Fatalf("Failed to load figure defaults: %v", err)
	}
	config.SetDefaults(defaults)

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	opts, err := buildOptions(cliFlags{
		Rows:     *rows,
		Cols:     *cols,
		Share:    *share,
		Output:   *output,
		DPI:      *dpi,
		Show:     *show,
		ShowSet:  set["show"],
		Display:  *displayName,
		HTTPAddr: *httpAddr,
		FigSize:  *figSize,
		Tight:    *tight,
		NoMove:   *noMove,
	}, defaults)
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}
	if opts.Filename == "" && !opts.Show {
		log.Print("Nothing to do: pass -o to save or -show to display the figure")
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("ficus %s: %dx%d grid, share=%s", version.Short(), opts.Rows, opts.Cols, opts.Share)
	if err := figure.With(ctx, opts, labelSubplots); err != nil {
		log.Fatalf("Figure failed: %v", err)
	}
}

// loadDefaults reads the optional config file and overlays FICUS_*
// environment variables.
func loadDefaults(path string) (*config.FigureDefaults, error) {
	cfg := &config.FigureDefaults{}
	if path != "" {
		var err error
		if cfg, err = config.LoadFigureDefaults(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(nil); err != nil {
		return nil, err
	}
	return cfg, nil
}
