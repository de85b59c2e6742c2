package main

import (
	"flag"
	"fmt"
	"os"

	gu "github.com/docker/go-units"

	"github.com/shorkiesoftware/D3D12-Examples/internal/config"
	"github.com/shorkiesoftware/D3D12-Examples/internal/gpudata"
	"github.com/shorkiesoftware/D3D12-Examples/internal/mathutil"
	"github.com/shorkiesoftware/D3D12-Examples/internal/scene"
)

var boneNames = [scene.BoneCount]string{
	"root", "spine", "chest", "head", "l_shoulder", "l_hand", "r_shoulder", "r_elbow", "r_hand",
}

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	frame := flag.Int("frame", 0, "Frame to inspect")
	matrices := flag.Bool("matrices", false, "Print full world matrices")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{})

	sc, err := scene.New(&cfg, nil)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	st := sc.Frame(*frame)
	sk := st.Skeleton

	fmt.Printf("Frame %d, t=%.3fs, Bones: %d\n", st.Frame.Index, st.Frame.ElapsedTime, sk.Len())
	fmt.Printf("IK target: (%.3f, %.3f, %.3f)\n", st.Target.X, st.Target.Y, st.Target.Z)
	for i := range sk.GlobalPositions {
		m := &sk.GlobalPositions[i]
		p := mathutil.Position(m)
		q := sk.Orientations[i]
		fmt.Printf("  Bone[%d] %-10s parent=%d pos=(%.3f, %.3f, %.3f) rot=(%.3f, %.3f, %.3f, %.3f)\n",
			i, boneNames[i], sk.ParentIndices[i], p.X, p.Y, p.Z, q.X, q.Y, q.Z, q.W)
		if *matrices {
			for r := 0; r < 4; r++ {
				row := m.Row(r)
				fmt.Printf("      [%8.3f %8.3f %8.3f %8.3f]\n", row.X, row.Y, row.Z, row.W)
			}
		}
	}
	hand := mathutil.Position(&sk.GlobalPositions[scene.BoneRightHand])
	fmt.Printf("IK error: %.6f\n", hand.Sub(st.Target).Len())

	vb := gpudata.Vertices(sc.Triangle.Positions, sc.Triangle.Colors)
	ib := gpudata.Indices(sc.Triangle.Indices)
	pal, _ := gpudata.BonePalette(sk, nil, nil)
	fmt.Println("GPU buffers:")
	u := st.Transforms()
	fmt.Printf("  transforms   %s\n", gu.BytesSize(float64(len(u.Data()))))
	fmt.Printf("  vertices     %s (%d x %d floats)\n", gu.BytesSize(float64(vb.Sizeof())), len(vb)/gpudata.VertexStride, gpudata.VertexStride)
	fmt.Printf("  indices      %s\n", gu.BytesSize(float64(ib.Sizeof())))
	fmt.Printf("  bone palette %s\n", gu.BytesSize(float64(pal.Sizeof())))
}
