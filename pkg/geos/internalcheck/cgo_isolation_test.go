package internalcheck

import (
	"fmt"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// Every cgo and unsafe import must live in the backend package. The public
// packages stay plain Go so they compile, vet and fuzz without a C
// toolchain in the loop.
func TestCgoConfinedToBackend(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles,
	}

	pkgs, err := packages.Load(cfg, "github.com/spatialkit/geos-go/pkg/geos/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string

	for _, pkg := range pkgs {
		if strings.Contains(pkg.PkgPath, "internal/backend") {
			continue
		}
		for _, file := range pkg.GoFiles {
			fset := token.NewFileSet()
			parsed, err := parser.ParseFile(fset, file, nil, parser.ImportsOnly)
			if err != nil {
				t.Fatalf("parse %s: %v", file, err)
			}
			for _, imp := range parsed.Imports {
				switch imp.Path.Value {
				case `"C"`, `"unsafe"`:
					pos := fset.Position(imp.Pos())
					findings = append(findings, fmt.Sprintf("%s: import %s outside internal/backend", pos, imp.Path.Value))
				}
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("cgo confinement violation:\n%s", strings.Join(findings, "\n"))
	}
}
