//go:build !cgo || windows

package backend

// Stub implementations for non-CGO builds or Windows. These allow the
// package to compile but fail with ErrNotBuilt (or the matching engine
// failure sentinel) when called. Shared constants and error values live in
// files with their own build tags so they are available here too.

type stubObject struct{}

// Context mirrors the engine session handle for builds without the engine.
type Context = *stubObject

// Geom mirrors the geometry handle for builds without the engine.
type Geom = *stubObject

// CoordSeq mirrors the coordinate sequence handle for builds without the engine.
type CoordSeq = *stubObject

// PreparedGeom mirrors the prepared geometry handle for builds without the engine.
type PreparedGeom = *stubObject

// MakeValidParams mirrors the repair parameter handle for builds without the engine.
type MakeValidParams = *stubObject

// WKTReader mirrors the WKT parser handle for builds without the engine.
type WKTReader = *stubObject

// WKTWriter mirrors the WKT serializer handle for builds without the engine.
type WKTWriter = *stubObject

// WKBReader mirrors the WKB parser handle for builds without the engine.
type WKBReader = *stubObject

// WKBWriter mirrors the WKB serializer handle for builds without the engine.
type WKBWriter = *stubObject

type messageSink interface {
	HandleError(msg string)
	HandleNotice(msg string)
}

func NewContext(messageSink) (Context, uintptr, error) { return nil, 0, ErrNotBuilt }

func FreeContext(Context, uintptr) {}

func Version() string { return "" }

func GeomDestroy(Context, Geom) {}

func GeomClone(Context, Geom) Geom { return nil }

func GeomTypeID(Context, Geom) int { return -1 }

func HasZ(Context, Geom) int { return 2 }

func IsEmpty(Context, Geom) int { return 2 }

func CoordSeqFromBuffer(Context, []float64, int, bool, bool) CoordSeq { return nil }

func CoordSeqToBuffer(Context, CoordSeq, []float64, bool, bool) int { return 0 }

func CoordSeqSize(Context, CoordSeq) (int, int) { return 0, 0 }

func CoordSeqDestroy(Context, CoordSeq) {}

func CreatePoint(Context, CoordSeq) Geom { return nil }

func CreateEmptyPoint(Context) Geom { return nil }

func CreateLineString(Context, CoordSeq) Geom { return nil }

func CreateEmptyLineString(Context) Geom { return nil }

func CreateLinearRing(Context, CoordSeq) Geom { return nil }

func CreatePolygon(Context, Geom, []Geom) Geom { return nil }

func CreateEmptyPolygon(Context) Geom { return nil }

func CreateCollection(Context, int, []Geom) Geom { return nil }

func CreateEmptyCollection(Context, int) Geom { return nil }

func GetCoordSeq(Context, Geom) CoordSeq { return nil }

func ExteriorRing(Context, Geom) Geom { return nil }

func NumInteriorRings(Context, Geom) int { return -1 }

func InteriorRingN(Context, Geom, int) Geom { return nil }

func NumGeometries(Context, Geom) int { return -1 }

func GeometryN(Context, Geom, int) Geom { return nil }

func IsSimple(Context, Geom) int { return 2 }

func IsValid(Context, Geom) int { return 2 }

func Disjoint(Context, Geom, Geom) int { return 2 }

func Touches(Context, Geom, Geom) int { return 2 }

func Intersects(Context, Geom, Geom) int { return 2 }

func Crosses(Context, Geom, Geom) int { return 2 }

func Within(Context, Geom, Geom) int { return 2 }

func Contains(Context, Geom, Geom) int { return 2 }

func Overlaps(Context, Geom, Geom) int { return 2 }

func Covers(Context, Geom, Geom) int { return 2 }

func CoveredBy(Context, Geom, Geom) int { return 2 }

func Equals(Context, Geom, Geom) int { return 2 }

func RelatePattern(Context, Geom, Geom, string) int { return 2 }

func Relate(Context, Geom, Geom) (string, bool) { return "", false }

func Length(Context, Geom) (float64, int) { return 0, 0 }

func Area(Context, Geom) (float64, int) { return 0, 0 }

func Distance(Context, Geom, Geom) (float64, int) { return 0, 0 }

func HausdorffDistance(Context, Geom, Geom) (float64, int) { return 0, 0 }

func FrechetDistance(Context, Geom, Geom) (float64, int) { return 0, 0 }

func Envelope(Context, Geom) Geom { return nil }

func Intersection(Context, Geom, Geom) Geom { return nil }

func Difference(Context, Geom, Geom) Geom { return nil }

func SymDifference(Context, Geom, Geom) Geom { return nil }

func Union(Context, Geom, Geom) Geom { return nil }

func UnaryUnion(Context, Geom) Geom { return nil }

func ConvexHull(Context, Geom) Geom { return nil }

func ConcaveHull(Context, Geom, float64, bool) Geom { return nil }

func MinimumRotatedRectangle(Context, Geom) Geom { return nil }

func MinimumWidth(Context, Geom) Geom { return nil }

func PointOnSurface(Context, Geom) Geom { return nil }

func Centroid(Context, Geom) Geom { return nil }

func Buffer(Context, Geom, float64, int) Geom { return nil }

func BufferWithStyle(Context, Geom, float64, int, int, int, float64) Geom { return nil }

func OffsetCurve(Context, Geom, float64, int, int, float64) Geom { return nil }

func Simplify(Context, Geom, float64) Geom { return nil }

func TopologyPreserveSimplify(Context, Geom, float64) Geom { return nil }

func Snap(Context, Geom, Geom, float64) Geom { return nil }

func ClipByRect(Context, Geom, float64, float64, float64, float64) Geom { return nil }

func LineMerge(Context, Geom) Geom { return nil }

func LineMergeDirected(Context, Geom) Geom { return nil }

func Polygonize(Context, []Geom) Geom { return nil }

func Normalize(Context, Geom) int { return -1 }

func NearestPoints(Context, Geom, Geom) CoordSeq { return nil }

func MinimumBoundingCircle(Context, Geom) (Geom, float64, Geom) { return nil, 0, nil }

func IsValidReason(Context, Geom) (string, bool) { return "", false }

func IsValidDetail(Context, Geom, int) (int, string, Geom) { return 2, "", nil }

func MakeValid(Context, Geom) Geom { return nil }

func MakeValidParamsCreate(Context, int, bool) MakeValidParams { return nil }

func MakeValidParamsDestroy(Context, MakeValidParams) {}

func MakeValidWithParams(Context, Geom, MakeValidParams) Geom { return nil }

func Prepare(Context, Geom) PreparedGeom { return nil }

func PreparedDestroy(Context, PreparedGeom) {}

func PreparedContains(Context, PreparedGeom, Geom) int { return 2 }

func PreparedContainsProperly(Context, PreparedGeom, Geom) int { return 2 }

func PreparedCoveredBy(Context, PreparedGeom, Geom) int { return 2 }

func PreparedCovers(Context, PreparedGeom, Geom) int { return 2 }

func PreparedCrosses(Context, PreparedGeom, Geom) int { return 2 }

func PreparedDisjoint(Context, PreparedGeom, Geom) int { return 2 }

func PreparedIntersects(Context, PreparedGeom, Geom) int { return 2 }

func PreparedOverlaps(Context, PreparedGeom, Geom) int { return 2 }

func PreparedTouches(Context, PreparedGeom, Geom) int { return 2 }

func PreparedWithin(Context, PreparedGeom, Geom) int { return 2 }

func WKTReaderCreate(Context) WKTReader { return nil }

func WKTReaderDestroy(Context, WKTReader) {}

func WKTReaderRead(Context, WKTReader, string) Geom { return nil }

func WKTWriterCreate(Context) WKTWriter { return nil }

func WKTWriterDestroy(Context, WKTWriter) {}

func WKTWriterWrite(Context, WKTWriter, Geom) (string, bool) { return "", false }

func WKBReaderCreate(Context) WKBReader { return nil }

func WKBReaderDestroy(Context, WKBReader) {}

func WKBReaderRead(Context, WKBReader, []byte) Geom { return nil }

func WKBWriterCreate(Context) WKBWriter { return nil }

func WKBWriterDestroy(Context, WKBWriter) {}

func WKBWriterWrite(Context, WKBWriter, Geom) ([]byte, bool) { return nil, false }
