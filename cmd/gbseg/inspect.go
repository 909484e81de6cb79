package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gbseg/imageio"
)

func newInspectCmd() *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "inspect <labels>",
		Short: "Print the dimensions and largest regions of a saved label map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			p, err := imageio.ReadLabels(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			fp := p.Fingerprint()
			fmt.Fprintf(out, "size:        %dx%d\n", p.Width(), p.Height())
			fmt.Fprintf(out, "regions:     %d\n", p.Len())
			fmt.Fprintf(out, "fingerprint: %s\n", hex.EncodeToString(fp[:]))

			regions := p.Regions()
			if top > 0 && top < len(regions) {
				regions = regions[:top]
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "RANK\tREGION\tROW\tCOL\tPIXELS\tSHARE")
			total := float64(p.Width() * p.Height())
			for i, r := range regions {
				fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%.1f%%\n",
					i+1, r.ID, r.ID/p.Width(), r.ID%p.Width(), r.Size, 100*float64(r.Size)/total)
			}

			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&top, "top", 10, "number of regions to list; 0 lists all")

	return cmd
}
