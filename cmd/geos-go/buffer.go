package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spatialkit/geos-go/pkg/geos"
)

var (
	bufferWidth    float64
	bufferQuadSegs int
	bufferCap      string
	bufferJoin     string
	bufferMitre    float64
)

var capStyles = map[string]geos.CapStyle{
	"round":  geos.CapRound,
	"flat":   geos.CapFlat,
	"square": geos.CapSquare,
}

var joinStyles = map[string]geos.JoinStyle{
	"round": geos.JoinRound,
	"mitre": geos.JoinMitre,
	"bevel": geos.JoinBevel,
}

var bufferCmd = &cobra.Command{
	Use:   "buffer <wkt>",
	Short: "Buffer a geometry by --width",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		capStyle, ok := capStyles[bufferCap]
		if !ok {
			return fmt.Errorf("unknown cap style %q (round, flat, square)", bufferCap)
		}
		joinStyle, ok := joinStyles[bufferJoin]
		if !ok {
			return fmt.Errorf("unknown join style %q (round, mitre, bevel)", bufferJoin)
		}

		g, err := readGeomArg(args[0])
		if err != nil {
			return err
		}
		out, err := geos.BufferWithStyle(g, bufferWidth, geos.BufferStyle{
			QuadSegments: bufferQuadSegs,
			CapStyle:     capStyle,
			JoinStyle:    joinStyle,
			MitreLimit:   bufferMitre,
		})
		if err != nil {
			return err
		}
		return printGeom(out)
	},
}

func init() {
	bufferCmd.Flags().Float64Var(&bufferWidth, "width", 1,
		"buffer distance, negative shrinks areal input")
	bufferCmd.Flags().IntVar(&bufferQuadSegs, "quad-segs", geos.DefaultQuadSegments,
		"segments per quarter circle")
	bufferCmd.Flags().StringVar(&bufferCap, "cap", "round",
		"end cap style: round, flat or square")
	bufferCmd.Flags().StringVar(&bufferJoin, "join", "round",
		"corner join style: round, mitre or bevel")
	bufferCmd.Flags().Float64Var(&bufferMitre, "mitre-limit", geos.DefaultMitreLimit,
		"mitre ratio limit for the mitre join style")
	rootCmd.AddCommand(bufferCmd)
}
