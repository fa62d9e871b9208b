// Package pipeline implements the orchestrator (spec §4.8): it takes a
// bag of resolver descriptors, plans a topological execution order per
// phase, then for each line runs the line-phase plan and finally runs
// the document-phase plan once over the finished document, committing
// every assignment through the attribute stores' sole write path
// (package assign / package doc). Modeled on the teacher's
// sqlparser/sqldocument package, which likewise combines a dependency
// planner (TopologicalSort) with a single orchestrating entry point
// that consumes its output.
package pipeline

import (
	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vippsas/layeredspan/attrstore"
	"github.com/vippsas/layeredspan/doc"
	"github.com/vippsas/layeredspan/resolver"
	"github.com/vippsas/layeredspan/sel"
)

// Pipeline accumulates resolver descriptors and config, builder-style,
// before Run executes them over a document.
type Pipeline struct {
	descriptors []resolver.Descriptor
	config      *Config
	log         *logrus.Logger
}

// New starts an empty Pipeline.
func New() *Pipeline {
	return &Pipeline{config: NewConfig(), log: logrus.StandardLogger()}
}

// WithLineResolver registers a line-phase descriptor, returning p for
// chaining.
func (p *Pipeline) WithLineResolver(d resolver.Descriptor) *Pipeline {
	p.descriptors = append(p.descriptors, d)
	return p
}

// WithDocumentResolver registers a document-phase descriptor, returning
// p for chaining.
func (p *Pipeline) WithDocumentResolver(d resolver.Descriptor) *Pipeline {
	p.descriptors = append(p.descriptors, d)
	return p
}

// WithConfig installs a Config, returning p for chaining.
func (p *Pipeline) WithConfig(cfg *Config) *Pipeline {
	p.config = cfg
	return p
}

// WithLogger installs a custom logrus logger (e.g. to route diagnostics
// through a host application's own logging pipeline).
func (p *Pipeline) WithLogger(log *logrus.Logger) *Pipeline {
	p.log = log
	return p
}

// InspectPlan plans the registered descriptors without running them,
// for introspection (spec §6 Pipeline surface).
func (p *Pipeline) InspectPlan() (*Plan, error) {
	return Build(p.descriptors, p.config)
}

// ToDOT plans and renders the planned execution order as Graphviz DOT:
// one edge from each step to the next within a phase, and a dashed edge
// from the last line step to the first document step.
func (p *Pipeline) ToDOT() (string, error) {
	plan, err := p.InspectPlan()
	if err != nil {
		return "", err
	}
	return planToDOT(plan), nil
}

// RunOnText tokenizes text with tok into a Doc and executes the planned
// resolvers over it (spec §4.8 "Execution algorithm").
func (p *Pipeline) RunOnText(tok doc.Tokenizer, text string) (*doc.Doc, *RunDiagnostics, error) {
	d := doc.FromText(tok, text)
	diag, err := p.Run(d)
	return d, diag, err
}

// Run executes the planned resolvers over an already-built Doc.
func (p *Pipeline) Run(d *doc.Doc) (*RunDiagnostics, error) {
	plan, err := Build(p.descriptors, p.config)
	if err != nil {
		return nil, err
	}

	runID := uuid.Must(uuid.NewV4()).String()
	diag := &RunDiagnostics{RunID: runID}
	log := p.log.WithField("run_id", runID)

	for lineIdx, ln := range d.Lines() {
		whole := sel.Whole(ln)
		for _, id := range plan.LineSteps {
			d2, _ := plan.Descriptor(id)
			results := d2.LineFunc(whole)
			for _, r := range results {
				if !declaresType(d2.Produces, r.Type()) {
					diag.add(Warning{Kind: OutOfBandTypeWarning, ResolverID: id, LineIndex: lineIdx, ActualType: r.Type()})
					log.WithFields(logrus.Fields{"resolver": id, "line": lineIdx, "type": r.Type().String()}).
						Warn("dropped out-of-band attribute type")
					continue
				}
				if commitErr := r.Commit(ln.Store()); commitErr != nil {
					diag.add(invalidRangeWarning(id, lineIdx, ln, commitErr))
					log.WithFields(logrus.Fields{"resolver": id, "line": lineIdx}).
						WithError(commitErr).Warn("dropped invalid line assignment")
				}
			}
		}
	}

	for _, id := range plan.DocSteps {
		d2, _ := plan.Descriptor(id)
		results := d2.DocFunc(d)
		for _, r := range results {
			if !declaresType(d2.Produces, r.Type()) {
				diag.add(Warning{Kind: OutOfBandTypeWarning, ResolverID: id, ActualType: r.Type()})
				log.WithFields(logrus.Fields{"resolver": id, "type": r.Type().String()}).
					Warn("dropped out-of-band attribute type")
				continue
			}
			if commitErr := r.Commit(d); commitErr != nil {
				diag.add(Warning{Kind: InvalidDocSpanWarning, ResolverID: id, GivenDoc: r.Span()})
				log.WithField("resolver", id).WithError(commitErr).Warn("dropped invalid document assignment")
			}
		}
	}

	return diag, nil
}

func declaresType(produces []attrstore.AttrType, t attrstore.AttrType) bool {
	for _, p := range produces {
		if p == t {
			return true
		}
	}
	return false
}

func invalidRangeWarning(resolverID string, lineIdx int, ln interface{ Len() int }, err error) Warning {
	w := Warning{Kind: InvalidRangeWarning, ResolverID: resolverID, LineIndex: lineIdx, LineLength: ln.Len()}
	if ire, ok := err.(attrstore.InvalidRangeError); ok {
		w.Given = ire.Given
	}
	return w
}
