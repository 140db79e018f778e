package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/complexpatch/atlas"
	"github.com/kpfaulkner/complexpatch/pixel"
)

func main() {
	iterations := flag.Int("n", 100000, "number of patches to build per size")
	memProfile := flag.Bool("mem", false, "profile heap instead of cpu")
	flag.Parse()

	var p interface{ Stop() }
	if *memProfile {
		p = profile.Start(profile.MemProfileHeap, profile.ProfilePath("."))
	} else {
		p = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	}
	defer p.Stop()

	sizes := []pixel.PxSize2D{
		pixel.NewPxSize2D(16, 16),
		pixel.NewPxSize2D(64, 32),
		pixel.NewPxSize2D(512, 512),
		pixel.NewPxSize2D(4096, 128),
	}
	nineSlice := atlas.NewNineSliceInfo(pixel.NewUniformPxThicknessU(4), pixel.NewUniformPxThicknessU(2), atlas.NINE_SLICE_NONE)

	start := time.Now()
	for _, size := range sizes {
		sizeStart := time.Now()
		var indexCount int
		for count := 0; count < *iterations; count++ {
			cp, err := nineSlice.ToComplexPatch(size)
			if err != nil {
				log.Fatalf("boomage %v", err)
			}
			indexCount += cp.CalcMeshInfo().IndexCount
		}
		fmt.Printf("%s: %d patches took %d ms (%d indices)\n", size, *iterations, time.Since(sizeStart).Milliseconds(), indexCount)
	}
	fmt.Printf("total time %d ms\n", time.Since(start).Milliseconds())
}
