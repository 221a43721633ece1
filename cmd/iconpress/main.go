// Command iconpress runs the icon processing pipeline from the command
// line: it loads a raster source, applies a pipeline spec (defaults or a
// JSON file), renders the requested target sizes and writes one PNG per
// size. Container formats (ICO/ICNS) are assembled by external tooling.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/iconpress/iconpress/internal/audit"
	"github.com/iconpress/iconpress/internal/export"
	"github.com/iconpress/iconpress/internal/pipeline"
	"github.com/iconpress/iconpress/internal/source"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("iconpress %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	var (
		inPath    = flag.String("in", "", "source image (PNG, JPEG or GIF)")
		outDir    = flag.String("out", ".", "output directory for rendered PNGs")
		specPath  = flag.String("spec", "", "JSON pipeline spec file (defaults used when empty)")
		sizesFlag = flag.String("sizes", "", "comma-separated target sizes (default: all standard sizes)")
		workers   = flag.Int("workers", 0, "render workers (0 = number of CPUs)")
		runAudit  = flag.Bool("audit", false, "print the quality audit for the processed image")
	)
	flag.Parse()

	if *inPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	spec := pipeline.DefaultSpec()
	if *specPath != "" {
		data, err := os.ReadFile(*specPath)
		if err != nil {
			log.Fatalf("read spec: %v", err)
		}
		if err := json.Unmarshal(data, &spec); err != nil {
			log.Fatalf("parse spec: %v", err)
		}
	}

	sizes := export.AllSizes()
	if *sizesFlag != "" {
		var err error
		sizes, err = parseSizes(*sizesFlag)
		if err != nil {
			log.Fatalf("parse sizes: %v", err)
		}
	}

	cache := source.NewCache()
	src, err := cache.Load(*inPath)
	if err != nil {
		log.Fatalf("load source: %v", err)
	}

	master, err := pipeline.Process(src, spec)
	if err != nil {
		log.Fatalf("process: %v", err)
	}

	if *runAudit {
		printAudit(master)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := export.RenderSizes(ctx, master, sizes, *workers)
	if err != nil {
		log.Fatalf("render: %v", err)
	}

	base := strings.TrimSuffix(filepath.Base(*inPath), filepath.Ext(*inPath))
	for _, res := range results {
		out := filepath.Join(*outDir, fmt.Sprintf("%s_%d.png", base, res.Size))
		if err := imaging.Save(res.Image, out); err != nil {
			log.Fatalf("save %s: %v", out, err)
		}
		fmt.Printf("wrote %s\n", out)
	}
}

func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid size %q", p)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func printAudit(master *image.NRGBA) {
	for _, issue := range audit.AuditImage(master) {
		if issue.FixAction != "" {
			fmt.Printf("[%s] %s: %s (fix: %s)\n", issue.Severity, issue.Check, issue.Message, issue.FixAction)
		} else {
			fmt.Printf("[%s] %s: %s\n", issue.Severity, issue.Check, issue.Message)
		}
	}
	m := audit.AnalyzeMetrics(master)
	fmt.Printf("sharpness=%.1f contrast=%.1f brightness=%.1f palette=%d\n",
		m.Sharpness, m.Contrast, m.Brightness, m.PaletteSize)
}
