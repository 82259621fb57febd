package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	geom "github.com/twpayne/go-geom"

	"github.com/spatialkit/geos-go/pkg/geos"
)

// Dispatch tables keyed by lower-case operation name. An op appears in
// exactly one table; the table decides its arity and output shape.
var (
	unaryGeomOps = map[string]func(geom.T) (geom.T, error){
		"convexhull":       geos.ConvexHull,
		"rotatedrectangle": geos.MinimumRotatedRectangle,
		"minimumwidth": func(g geom.T) (geom.T, error) {
			return geos.MinimumWidth(g)
		},
		"centroid": func(g geom.T) (geom.T, error) {
			return geos.Centroid(g)
		},
		"pointonsurface": func(g geom.T) (geom.T, error) {
			return geos.PointOnSurface(g)
		},
		"unaryunion":        geos.UnaryUnion,
		"linemerge":         geos.LineMerge,
		"linemergedirected": geos.LineMergeDirected,
		"normalize":         geos.Normalized,
		"makevalid":         geos.MakeValid,
	}

	binaryGeomOps = map[string]func(a, b geom.T) (geom.T, error){
		"intersection":  geos.Intersection,
		"difference":    geos.Difference,
		"symdifference": geos.SymmetricDifference,
		"union":         geos.Union,
	}

	// Ops below take a numeric --param.
	unaryParamOps = map[string]func(g geom.T, p float64) (geom.T, error){
		"simplify":   geos.Simplify,
		"simplifytp": geos.TopologyPreserveSimplify,
		"concavehull": func(g geom.T, p float64) (geom.T, error) {
			return geos.ConcaveHull(g, p, false)
		},
		"offsetcurve": func(g geom.T, p float64) (geom.T, error) {
			return geos.OffsetCurve(g, p, geos.BufferStyle{})
		},
	}

	binaryParamOps = map[string]func(a, b geom.T, p float64) (geom.T, error){
		"snap": geos.Snap,
	}

	unaryPredOps = map[string]func(geom.T) (bool, error){
		"isempty":  geos.IsEmpty,
		"issimple": geos.IsSimple,
		"isvalid":  geos.IsValid,
	}

	binaryPredOps = map[string]func(a, b geom.T) (bool, error){
		"intersects": geos.Intersects,
		"disjoint":   geos.Disjoint,
		"touches":    geos.Touches,
		"crosses":    geos.Crosses,
		"within":     geos.Within,
		"contains":   geos.Contains,
		"overlaps":   geos.Overlaps,
		"covers":     geos.Covers,
		"coveredby":  geos.CoveredBy,
		"equals":     geos.Equals,
	}

	unaryScalarOps = map[string]func(geom.T) (float64, error){
		"area":   geos.Area,
		"length": geos.Length,
	}

	binaryScalarOps = map[string]func(a, b geom.T) (float64, error){
		"distance":  geos.Distance,
		"hausdorff": geos.HausdorffDistance,
		"frechet":   geos.FrechetDistance,
	}
)

var opParam float64

var opCmd = &cobra.Command{
	Use:   "op <name> <wkt-a> [wkt-b]",
	Short: "Run a single named operation",
	Long:  "Run a single named operation on one or two WKT geometries.\n\n" + opCatalog(),
	Args:  cobra.RangeArgs(2, 3),
	RunE:  runOp,
}

func init() {
	opCmd.Flags().Float64Var(&opParam, "param", 0,
		"numeric parameter (tolerance, ratio or offset) for ops that take one")
	rootCmd.AddCommand(opCmd)
}

func opCatalog() string {
	section := func(title string, names []string) string {
		sort.Strings(names)
		return title + ": " + strings.Join(names, ", ")
	}
	var unary, binary, unaryP, binaryP []string
	for n := range unaryGeomOps {
		unary = append(unary, n)
	}
	for n := range unaryPredOps {
		unary = append(unary, n)
	}
	for n := range unaryScalarOps {
		unary = append(unary, n)
	}
	unary = append(unary, "envelope", "boundingcircle")
	for n := range binaryGeomOps {
		binary = append(binary, n)
	}
	for n := range binaryPredOps {
		binary = append(binary, n)
	}
	for n := range binaryScalarOps {
		binary = append(binary, n)
	}
	binary = append(binary, "relate", "nearestpoints")
	for n := range unaryParamOps {
		unaryP = append(unaryP, n)
	}
	for n := range binaryParamOps {
		binaryP = append(binaryP, n)
	}
	return strings.Join([]string{
		section("Unary", unary),
		section("Binary", binary),
		section("Unary with --param", unaryP),
		section("Binary with --param", binaryP),
	}, "\n")
}

func runOp(cmd *cobra.Command, args []string) error {
	name := strings.ToLower(args[0])

	a, err := readGeomArg(args[1])
	if err != nil {
		return err
	}
	var b geom.T
	if len(args) == 3 {
		b, err = readGeomArg(args[2])
		if err != nil {
			return err
		}
	}

	needBinary := func() error {
		if b == nil {
			return fmt.Errorf("op %q needs two geometries", name)
		}
		return nil
	}
	needUnary := func() error {
		if b != nil {
			return fmt.Errorf("op %q takes one geometry", name)
		}
		return nil
	}
	needParam := func() error {
		if !cmd.Flags().Changed("param") {
			return fmt.Errorf("op %q needs --param", name)
		}
		return nil
	}

	switch {
	case unaryGeomOps[name] != nil:
		if err := needUnary(); err != nil {
			return err
		}
		out, err := unaryGeomOps[name](a)
		if err != nil {
			return err
		}
		return printGeom(out)

	case binaryGeomOps[name] != nil:
		if err := needBinary(); err != nil {
			return err
		}
		out, err := binaryGeomOps[name](a, b)
		if err != nil {
			return err
		}
		return printGeom(out)

	case unaryParamOps[name] != nil:
		if err := needUnary(); err != nil {
			return err
		}
		if err := needParam(); err != nil {
			return err
		}
		out, err := unaryParamOps[name](a, opParam)
		if err != nil {
			return err
		}
		return printGeom(out)

	case binaryParamOps[name] != nil:
		if err := needBinary(); err != nil {
			return err
		}
		if err := needParam(); err != nil {
			return err
		}
		out, err := binaryParamOps[name](a, b, opParam)
		if err != nil {
			return err
		}
		return printGeom(out)

	case unaryPredOps[name] != nil:
		if err := needUnary(); err != nil {
			return err
		}
		v, err := unaryPredOps[name](a)
		if err != nil {
			return err
		}
		fmt.Println(v)
		return nil

	case binaryPredOps[name] != nil:
		if err := needBinary(); err != nil {
			return err
		}
		v, err := binaryPredOps[name](a, b)
		if err != nil {
			return err
		}
		fmt.Println(v)
		return nil

	case unaryScalarOps[name] != nil:
		if err := needUnary(); err != nil {
			return err
		}
		v, err := unaryScalarOps[name](a)
		if err != nil {
			return err
		}
		fmt.Println(v)
		return nil

	case binaryScalarOps[name] != nil:
		if err := needBinary(); err != nil {
			return err
		}
		v, err := binaryScalarOps[name](a, b)
		if err != nil {
			return err
		}
		fmt.Println(v)
		return nil

	case name == "relate":
		if err := needBinary(); err != nil {
			return err
		}
		matrix, err := geos.Relate(a, b)
		if err != nil {
			return err
		}
		fmt.Println(matrix)
		return nil

	case name == "envelope":
		if err := needUnary(); err != nil {
			return err
		}
		env, err := geos.EnvelopeOf(a)
		if err != nil {
			return err
		}
		fmt.Printf("%v %v %v %v\n", env.MinX, env.MinY, env.MaxX, env.MaxY)
		return nil

	case name == "boundingcircle":
		if err := needUnary(); err != nil {
			return err
		}
		c, err := geos.MinimumBoundingCircle(a)
		if err != nil {
			return err
		}
		wkt, err := geos.AsWKT(c.Center)
		if err != nil {
			return err
		}
		fmt.Printf("%s radius %v\n", wkt, c.Radius)
		return nil

	case name == "nearestpoints":
		if err := needBinary(); err != nil {
			return err
		}
		pa, pb, err := geos.NearestPoints(a, b)
		if err != nil {
			return err
		}
		// Printed as the connecting segment so the pair stays one WKT value.
		seg := geom.NewLineStringFlat(geom.XY,
			[]float64{pa.X(), pa.Y(), pb.X(), pb.Y()})
		return printGeom(seg)

	default:
		return fmt.Errorf("unknown op %q, see geos-go op --help", name)
	}
}
