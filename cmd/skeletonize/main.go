// Command skeletonize is the CLI host for the thinning engine: it loads a
// raw n-D volume, builds a default ordering image, and runs
// skeletonize.Run end to end. CLI wiring lives entirely outside the core's
// package boundary (spec §1/§6).
package main

import "github.com/glehmann/skeletonize/cmd/skeletonize/cmd"

func main() {
	cmd.Execute()
}
