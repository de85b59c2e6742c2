// Package batch renders scene frames in parallel and writes them to disk.
package batch

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"

	"github.com/shorkiesoftware/D3D12-Examples/internal/config"
	"github.com/shorkiesoftware/D3D12-Examples/internal/postprocess"
	"github.com/shorkiesoftware/D3D12-Examples/internal/raster"
	"github.com/shorkiesoftware/D3D12-Examples/internal/scene"
)

// Config holds the settings shared by every worker of a batch run.
type Config struct {
	OutputDir   string
	Format      string
	Width       int
	Height      int
	Supersample int
	Workers     int
	Overlay     bool

	// Progress, when set, is called about every two seconds with the
	// number of finished frames.
	Progress func(done, total int, rate float64)
}

// FromConfig derives the batch settings from a resolved config.
func FromConfig(c *config.Config) Config {
	return Config{
		OutputDir:   c.OutputDir,
		Format:      c.Format,
		Width:       c.Width,
		Height:      c.Height,
		Supersample: c.Supersample,
		Workers:     c.Workers,
		Overlay:     !c.NoOverlay,
	}
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Time    float32
	Target  [3]float32
	Image   string // relative to OutputDir
	Pixels  int
	Success bool
	Error   string
}

// Run renders frames [0, frames) of sc using a worker pool.
func Run(cfg Config, sc *scene.Scene, frames int) []Result {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Supersample <= 0 {
		cfg.Supersample = 1
	}
	if frames < 0 {
		frames = 0
	}
	results := make([]Result, frames)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress != nil {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					if p := processed.Load(); p > 0 {
						cfg.Progress(int(p), frames, float64(p)/time.Since(start).Seconds())
					}
				}
			}
		}()
	}

	// Worker pool. Each worker owns its renderer; frame state comes from
	// sc.Frame, which returns private copies.
	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := raster.NewRenderer(cfg.Width*cfg.Supersample, cfg.Height*cfg.Supersample)
			for i := range frameChan {
				results[i] = processFrame(cfg, sc, r, i)
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := 0; i < frames; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

// FileName returns the output file name of frame i.
func FileName(i int, format string) string {
	return fmt.Sprintf("frame_%04d.%s", i, format)
}

func processFrame(cfg Config, sc *scene.Scene, r *raster.Renderer, i int) Result {
	st := sc.Frame(i)
	res := Result{
		Frame:  i,
		Time:   st.Frame.ElapsedTime,
		Target: [3]float32{st.Target.X, st.Target.Y, st.Target.Z},
		Image:  FileName(i, cfg.Format),
	}

	res.Pixels = sc.Draw(r, &st, cfg.Overlay, float32(cfg.Supersample))

	img := r.Image()
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}

	outPath := filepath.Join(cfg.OutputDir, res.Image)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		res.Error = err.Error()
		return res
	}
	if err := writeImage(outPath, cfg.Format, img); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Success = true
	return res
}

func writeImage(path, format string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, format, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Encode writes img to w as WebP or TGA.
func Encode(w io.Writer, format string, img image.Image) error {
	switch format {
	case config.FormatWebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("WebP encode: %w", err)
		}
	case config.FormatTGA:
		if err := tga.Encode(w, img); err != nil {
			return fmt.Errorf("TGA encode: %w", err)
		}
	default:
		return fmt.Errorf("batch: unknown format %q", format)
	}
	return nil
}
