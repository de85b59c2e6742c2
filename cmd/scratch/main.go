package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	gu "github.com/docker/go-units"

	"github.com/shorkiesoftware/D3D12-Examples/internal/batch"
	"github.com/shorkiesoftware/D3D12-Examples/internal/config"
	"github.com/shorkiesoftware/D3D12-Examples/internal/gpudata"
	"github.com/shorkiesoftware/D3D12-Examples/internal/scene"
	"github.com/shorkiesoftware/D3D12-Examples/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	frames := flag.Int("frames", 0, "Number of frames to render (default: 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	width := flag.Int("width", 0, "Output width (default: 1280)")
	height := flag.Int("height", 0, "Output height (default: 720)")
	supersample := flag.Int("supersample", 0, "Render scale before downsampling (default: 1)")
	format := flag.String("format", "", "Output format: webp or tga (default: webp)")
	texPath := flag.String("texture", "", "Texture applied to the triangle")
	baseDir := flag.String("base", "", "Base directory for relative paths (default: config dir or cwd)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		BaseDir:     *baseDir,
		OutputDir:   *outputDir,
		Format:      *format,
		Texture:     *texPath,
		Width:       *width,
		Height:      *height,
		Supersample: *supersample,
		Frames:      *frames,
		Workers:     *workers,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var tex *image.NRGBA
	if cfg.Texture != "" {
		var err error
		tex, err = texture.NewCache().Resolve(cfg.Texture)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	sc, err := scene.New(&cfg, tex)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building scene: %v\n", err)
		os.Exit(1)
	}

	// Print summary
	st := sc.Frame(0)
	u := st.Transforms()
	vb := gpudata.Vertices(sc.Triangle.Positions, sc.Triangle.Colors)
	pal, _ := gpudata.BonePalette(st.Skeleton, nil, nil)
	target := float64(cfg.Width * cfg.Height * 4 * cfg.Supersample * cfg.Supersample)

	fmt.Printf("Triangle scratch harness → %s\n", cfg.Format)
	fmt.Printf("Frames: %d, Workers: %d, Size: %dx%d (x%d)\n", cfg.Frames, cfg.Workers, cfg.Width, cfg.Height, cfg.Supersample)
	fmt.Printf("Buffers: uniforms %s, vertices %s, bones %s, target %s per worker\n",
		gu.BytesSize(float64(len(u.Data()))), gu.BytesSize(float64(vb.Sizeof())),
		gu.BytesSize(float64(pal.Sizeof())), gu.BytesSize(target))
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	// Run batch
	batchCfg := batch.FromConfig(&cfg)
	batchCfg.Progress = func(done, total int, rate float64) {
		fmt.Printf("  [%d/%d] %.1f frames/sec\n", done, total, rate)
	}
	results := batch.Run(batchCfg, sc, cfg.Frames)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Frame, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
