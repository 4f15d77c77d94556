package parser

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/CelIsDividing/FPGA-Visualizer/pkg/logging"
	"github.com/CelIsDividing/FPGA-Visualizer/pkg/metrics"
	"github.com/CelIsDividing/FPGA-Visualizer/pkg/parallel"
	"github.com/CelIsDividing/FPGA-Visualizer/pkg/routing"
)

// maxLineSize bounds a single input line. Router output lines are short;
// anything beyond this is not a .route file.
const maxLineSize = 1 << 20

// Parser drives the full streaming pass over a .route document: it
// delimits nets, parses node lines, reconstructs per-net routing trees
// and accumulates congestion counts.
type Parser struct {
	log     logging.Logger
	metrics *metrics.Registry
	workers int
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger routes diagnostics through the given logger.
func WithLogger(l logging.Logger) Option {
	return func(p *Parser) { p.log = l }
}

// WithMetrics records parse counters into the given registry.
func WithMetrics(r *metrics.Registry) Option {
	return func(p *Parser) { p.metrics = r }
}

// WithWorkers enables concurrent tree reconstruction across nets once
// delimiting has completed. Values below 2 keep the pass sequential.
// Output is deterministic either way.
func WithWorkers(n int) Option {
	return func(p *Parser) { p.workers = n }
}

// New creates a Parser. Without options it is silent and sequential.
func New(opts ...Option) *Parser {
	p := &Parser{log: logging.NewNopLogger()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// netGroup is one net's accumulated state between its delimiter line and
// the next one.
type netGroup struct {
	name    string
	line    int
	records []routing.NodeRecord
	counts  routing.CongestionCounts
}

// builtNet is the tree builder's output for one group, kept separate so
// groups can be built concurrently and merged in order.
type builtNet struct {
	route       *routing.NetRoute
	diagnostics []routing.Diagnostic
}

// Parse performs the single streaming pass over the input and returns
// the reconstructed document.
//
// Individual malformed node lines are skipped and recorded as
// diagnostics; nets without a SOURCE record keep a nil tree. The only
// fatal conditions are a failing reader and input with neither net
// delimiters nor parsable node lines.
func (p *Parser) Parse(r io.Reader) (*routing.Document, error) {
	start := time.Now()
	doc, err := p.parse(r)
	if p.metrics != nil {
		status := "ok"
		if err != nil {
			status = "error"
		}
		p.metrics.RecordDocument(status, time.Since(start))
	}
	return doc, err
}

func (p *Parser) parse(r io.Reader) (*routing.Document, error) {
	var (
		groups      []*netGroup
		current     *netGroup
		lineDiags   []routing.Diagnostic
		strayCounts = make(routing.CongestionCounts)
		nodeLines   int
		lineNo      int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if isIgnoredLine(line) {
			continue
		}

		if id, name, ok := matchNetDelimiter(line); ok {
			p.log.Debug("net start",
				logging.Int("net_id", id),
				logging.String("net", name),
				logging.Int("line", lineNo))
			current = &netGroup{name: name, line: lineNo, counts: make(routing.CongestionCounts)}
			groups = append(groups, current)
			continue
		}

		if !isNodeLine(line) {
			// Unknown directive; the grammar is append-only, so skip.
			p.log.Debug("unrecognized line skipped", logging.Int("line", lineNo))
			continue
		}

		rec, err := ParseNodeLine(line)
		if err != nil {
			lineDiags = append(lineDiags, routing.Diagnostic{
				Kind:    routing.DiagMalformedLine,
				Line:    lineNo,
				Message: err.Error(),
			})
			p.log.Warn("malformed node line skipped",
				logging.Int("line", lineNo),
				logging.Error(err))
			if p.metrics != nil {
				p.metrics.MalformedLines.Inc()
			}
			continue
		}

		nodeLines++
		if p.metrics != nil {
			p.metrics.NodeLinesParsed.Inc()
		}
		if current != nil {
			current.records = append(current.records, rec)
			current.counts.Add(rec)
		} else {
			// Node line before the first net delimiter: it still counts
			// toward channel usage, but belongs to no net.
			strayCounts.Add(rec)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Op: "read routing document", Line: lineNo, Cause: err}
	}

	if len(groups) == 0 && nodeLines == 0 {
		return nil, &ParseError{Op: "parse routing document", Cause: ErrUnrecognizedFormat}
	}

	built := p.buildNets(groups)

	doc := &routing.Document{
		DocumentID:  uuid.New().String(),
		Nets:        make([]*routing.NetRoute, 0, len(built)),
		Diagnostics: lineDiags,
	}

	counts := make(routing.CongestionCounts)
	counts.Merge(strayCounts)
	for i, b := range built {
		doc.Nets = append(doc.Nets, b.route)
		doc.Diagnostics = append(doc.Diagnostics, b.diagnostics...)
		doc.TotalWireLength += len(b.route.Records)
		counts.Merge(groups[i].counts)
		if p.metrics != nil {
			s := b.route.BuildStats
			p.metrics.RecordNet(b.route.HasTree(), s.BranchMarkers, s.AdjacencyReattaches, s.RootFallbacks)
		}
	}
	doc.Congestion = counts.Normalize()

	p.log.Info("routing document parsed",
		logging.String("document_id", doc.DocumentID),
		logging.Int("nets", len(doc.Nets)),
		logging.Int("total_wire_length", doc.TotalWireLength),
		logging.Int("congested_segments", len(doc.Congestion)),
		logging.Int("diagnostics", len(doc.Diagnostics)))

	return doc, nil
}

// buildNets reconstructs every group's tree, concurrently when the
// parser was configured with workers. Results are always merged back in
// delimiting order, and congestion counts stay per-group until the
// caller folds them, so the parallel path needs no shared state.
func (p *Parser) buildNets(groups []*netGroup) []builtNet {
	built := make([]builtNet, len(groups))
	if p.workers > 1 && len(groups) > 1 {
		parallel.ForEach(p.workers, len(groups), func(i int) {
			built[i] = p.buildNet(groups[i])
		})
	} else {
		for i, g := range groups {
			built[i] = p.buildNet(g)
		}
	}
	return built
}

func (p *Parser) buildNet(g *netGroup) builtNet {
	tree, stats := routing.BuildTree(g.records)
	route := &routing.NetRoute{
		Name:       g.name,
		Records:    g.records,
		Tree:       tree,
		BuildStats: stats,
	}

	var diags []routing.Diagnostic
	if tree == nil {
		diags = append(diags, routing.Diagnostic{
			Kind:    routing.DiagMissingRoot,
			Line:    g.line,
			Net:     g.name,
			Message: "no SOURCE record; tree unavailable, flat record list only",
		})
		p.log.Warn("net has no SOURCE record",
			logging.String("net", g.name),
			logging.Int("records", len(g.records)))
	} else if stats.Suspect() {
		diags = append(diags, routing.Diagnostic{
			Kind:    routing.DiagSuspectReattach,
			Line:    g.line,
			Net:     g.name,
			Message: "sub-path reattached at root without adjacency evidence; tree shape is suspect",
		})
		p.log.Warn("suspect tree reconstruction",
			logging.String("net", g.name),
			logging.Int("root_fallbacks", stats.RootFallbacks))
	}
	return builtNet{route: route, diagnostics: diags}
}
