package parser

import (
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"

	"github.com/CelIsDividing/FPGA-Visualizer/pkg/routing"
)

// ParseFile opens, parses and closes the routing file at path. Files
// ending in ".sz" or ".snappy" are decompressed on the fly (snappy
// framing, as produced by archiving router runs). The file handle is
// released on every exit path.
func (p *Parser) ParseFile(path string) (*routing.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Op: "open routing file", Cause: err}
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".sz") || strings.HasSuffix(path, ".snappy") {
		r = snappy.NewReader(f)
	}
	return p.Parse(r)
}
