package main

import (
	"fmt"
	"reflect"

	"github.com/kpfaulkner/complexpatch/atlas"
	"github.com/kpfaulkner/complexpatch/patch"
)

// displays sizes of the patch structs to determine any padding wasteage
func memStats(input any) {

	rType := reflect.TypeOf(input)
	fmt.Printf("Size of %s : %d bytes\n", rType.Name(), rType.Size())

	if rType.Kind() == reflect.Struct {
		for i := 0; i < rType.NumField(); i++ {
			field := rType.Field(i)
			fmt.Printf("  Name %s\n", field.Name)
			fmt.Printf("    Offset of    : %d bytes\n", field.Offset)
			fmt.Printf("    Size of      : %d bytes\n", field.Type.Size())
			fmt.Printf("    Alignment of : %d bytes\n", field.Type.Align())
			fmt.Println()
		}
	}
}

func main() {
	memStats(patch.Slice{})
	memStats(patch.ContentSpan{})
	memStats(patch.Slices{})
	memStats(patch.ContentSpans{})
	memStats(patch.ComplexPatch{})
	memStats(patch.MeshInfo{})
	memStats(atlas.TextureInfo{})
	memStats(atlas.NineSliceInfo{})
}
