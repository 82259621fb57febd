package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spatialkit/geos-go/pkg/geos"
)

var isvalidAllowSelfTouch bool

var isvalidCmd = &cobra.Command{
	Use:   "isvalid <wkt>",
	Short: "Report validity with reason and first failure location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := readGeomArg(args[0])
		if err != nil {
			return err
		}
		v, err := geos.IsValidDetail(g, isvalidAllowSelfTouch)
		if err != nil {
			return err
		}
		if v.Valid {
			fmt.Println("valid")
			return nil
		}
		if v.Location != nil {
			loc, err := geos.AsWKT(v.Location)
			if err != nil {
				return err
			}
			fmt.Printf("invalid: %s at %s\n", v.Reason, loc)
		} else {
			fmt.Printf("invalid: %s\n", v.Reason)
		}
		return nil
	},
}

func init() {
	isvalidCmd.Flags().BoolVar(&isvalidAllowSelfTouch, "allow-self-touch", false,
		"treat a self-touching ring that forms a hole as valid")
	rootCmd.AddCommand(isvalidCmd)
}
