package codec_test

import (
	"fmt"

	"github.com/katalvlaran/micromouse/codec"
	"github.com/katalvlaran/micromouse/kruskal"
	"github.com/katalvlaran/micromouse/maze"
)

// ExampleMarshal stores a 5×5 maze in 15 bytes and restores it.
func ExampleMarshal() {
	src, _ := maze.New(5)
	_, _ = kruskal.Generate(src, kruskal.WithSeed(8))

	data, _ := codec.Marshal(src)
	fmt.Println(len(data), data[:8])

	dst, _ := maze.New(5)
	if err := codec.Unmarshal(data, dst); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dst.SameLayout(src))
	// Output:
	// 15 [0 0 0 5 0 0 0 5]
	// true
}
