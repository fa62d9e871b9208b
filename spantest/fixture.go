// Package spantest provides test scaffolding for resolvers and
// pipelines: a fixture that wires a Doc and a Pipeline together and runs
// them, plus a repr-based attribute dumper for assertion failure
// messages. Modeled on the teacher's sqltest package, which likewise
// paired a construct/use/teardown Fixture with a DumpRows-style
// diagnostic printer — generalized here from "ephemeral scratch
// database" to "ephemeral in-memory document", so Teardown has no
// external resource to release but keeps the same lifecycle shape a
// caller migrating from sqltest would expect.
package spantest

import (
	"github.com/vippsas/layeredspan/doc"
	"github.com/vippsas/layeredspan/pipeline"
	"github.com/vippsas/layeredspan/resolverlib"
)

// Fixture bundles a tokenized Doc with the Pipeline that will run over
// it, for use in a resolver's table-driven tests.
type Fixture struct {
	Doc         *doc.Doc
	Pipeline    *pipeline.Pipeline
	Diagnostics *pipeline.RunDiagnostics
}

// NewFixture tokenizes text with resolverlib.DefaultTokenizer and builds
// an unrun Fixture around it and p. Call Run to execute the pipeline.
func NewFixture(p *pipeline.Pipeline, text string) *Fixture {
	return &Fixture{
		Doc:      doc.FromText(resolverlib.DefaultTokenizer, text),
		Pipeline: p,
	}
}

// NewLineFixture is NewFixture for a single resolver under test that only
// needs one line: it wires an otherwise-empty Pipeline containing just
// the line resolvers in resolvers, in declaration order.
func NewLineFixture(text string, resolvers ...func(*pipeline.Pipeline) *pipeline.Pipeline) *Fixture {
	p := pipeline.New()
	for _, with := range resolvers {
		p = with(p)
	}
	return NewFixture(p, text)
}

// Run executes the fixture's pipeline over its Doc, recording
// diagnostics, and returns any planning error.
func (f *Fixture) Run() error {
	diag, err := f.Pipeline.Run(f.Doc)
	f.Diagnostics = diag
	return err
}

// Teardown releases the fixture. The in-process substrate holds no
// external resources, so there is nothing to release beyond the
// fixture's own fields; kept for lifecycle-shape parity with fixtures
// that do (e.g. a database-backed one), it drops the fixture's
// references so a leftover pointer can't be reused.
func (f *Fixture) Teardown() {
	f.Doc = nil
	f.Pipeline = nil
	f.Diagnostics = nil
}
