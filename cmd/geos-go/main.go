// Command geos-go runs single geometry operations from the command line.
// Geometries are passed as WKT arguments, or as "-" to read WKT from stdin,
// and results are written as WKT to stdout.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	geom "github.com/twpayne/go-geom"

	"github.com/spatialkit/geos-go/pkg/geos"
)

var rootCmd = &cobra.Command{
	Use:           "geos-go",
	Short:         "Run geometry engine operations on WKT input",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print wrapper and engine versions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("geos-go %s\n", geos.WrapperVersion())
		if geos.Available() {
			fmt.Printf("engine %s\n", geos.EngineVersion())
		} else {
			fmt.Println("engine not built in")
		}
	},
}

// readGeomArg parses one WKT positional argument, replacing "-" with the
// whole of stdin.
func readGeomArg(arg string) (geom.T, error) {
	if arg == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		arg = string(b)
	}
	g, err := geos.FromWKT(strings.TrimSpace(arg))
	if err != nil {
		return nil, fmt.Errorf("parsing input: %w", err)
	}
	return g, nil
}

// printGeom writes g to stdout as WKT. A nil g is the absent optional result
// and prints as a bare marker so scripts can distinguish it from any WKT.
func printGeom(g geom.T) error {
	if g == nil {
		fmt.Println("(none)")
		return nil
	}
	wkt, err := geos.AsWKT(g)
	if err != nil {
		return err
	}
	fmt.Println(wkt)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
