package main

import (
	"flag"
	"fmt"
	"os"

	gu "github.com/docker/go-units"

	"github.com/shorkiesoftware/D3D12-Examples/internal/mathutil"
	"github.com/shorkiesoftware/D3D12-Examples/internal/raster"
	"github.com/shorkiesoftware/D3D12-Examples/internal/texture"
)

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: texinfo file.tga|file.png|file.jpg ...")
		os.Exit(2)
	}

	cache := texture.NewCache()
	failed := false
	for _, path := range flag.Args() {
		tex, err := cache.Resolve(path)
		if err != nil {
			fmt.Printf("%s: %v\n", path, err)
			failed = true
			continue
		}

		b := tex.Bounds()
		w, h := b.Dx(), b.Dy()
		fmt.Printf("%s: %dx%d, %s\n", path, w, h, gu.BytesSize(float64(len(tex.Pix))))

		// Check alpha values
		var minA, maxA uint8 = 255, 0
		sumA, skipped := 0, 0
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				a := tex.Pix[y*tex.Stride+x*4+3]
				sumA += int(a)
				if a < minA {
					minA = a
				}
				if a > maxA {
					maxA = a
				}
				if a < 8 {
					skipped++
				}
			}
		}
		total := w * h
		if total == 0 {
			continue
		}
		fmt.Printf("  Alpha: min=%d, max=%d, avg=%.0f, all_255=%v, discarded=%.1f%%\n",
			minA, maxA, float64(sumA)/float64(total), minA == 255, 100*float64(skipped)/float64(total))

		// Sample at the triangle's corner UVs
		for _, uv := range [...]mathutil.Vec2{{X: 0, Y: 1}, {X: 0.5, Y: 0}, {X: 1, Y: 1}} {
			r, g, bl, a := raster.SampleTexture(tex, uv)
			fmt.Printf("  UV(%.1f,%.1f): R=%d G=%d B=%d A=%d\n", uv.X, uv.Y, r, g, bl, a)
		}
	}
	if failed {
		os.Exit(1)
	}
}
