package scan_test

import (
	"fmt"

	"github.com/coregx/accel"
	"github.com/coregx/accel/byteset"
	"github.com/coregx/accel/scan"
)

func ExampleSkip() {
	scheme, ok := accel.Compile(accel.Info{
		SingleStops: byteset.Of('<'),
	}, accel.DefaultConfig())
	if !ok {
		return
	}

	input := []byte("plain text before a <tag>")
	pos := scan.Skip(scheme, input, 0)
	fmt.Println(pos, string(input[pos]))
	// Output:
	// 20 <
}
