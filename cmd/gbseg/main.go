// Command gbseg segments images with the graph-based merge procedure and
// inspects saved label maps.
//
//	gbseg segment photo.jpg --out seg.png --k 300 --connectivity disc --radius 2
//	gbseg inspect seg.gbsl
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is the gbseg CLI version.
var Version = "0.1.0"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gbseg",
		Short:         "Graph-based image segmentation",
		Long:          `gbseg partitions an image into regions of similar pixels (Felzenszwalb-Huttenlocher) and renders the result.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSegmentCmd(), newInspectCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gbseg:", err)
		os.Exit(1)
	}
}
