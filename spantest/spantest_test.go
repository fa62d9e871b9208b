package spantest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsas/layeredspan/attrstore"
	"github.com/vippsas/layeredspan/examples"
	"github.com/vippsas/layeredspan/pipeline"
	"github.com/vippsas/layeredspan/spantest"
)

func TestNewFixture_RunPopulatesDiagnostics(t *testing.T) {
	p := pipeline.New().WithLineResolver(examples.ModalDescriptor)
	f := spantest.NewFixture(p, "The Company shall deliver")
	defer f.Teardown()

	require.NoError(t, f.Run())
	require.NotNil(t, f.Diagnostics)
	assert.Empty(t, f.Diagnostics.Warnings)

	occs := examples.ModalAt(f.Doc.Line(0).Store())
	require.Len(t, occs, 1)
	assert.Equal(t, examples.Shall, occs[0].Value)
}

func TestNewLineFixture_WiresGivenResolversOnly(t *testing.T) {
	f := spantest.NewLineFixture("Tenant shall assign", func(p *pipeline.Pipeline) *pipeline.Pipeline {
		return p.WithLineResolver(examples.ModalDescriptor)
	})
	defer f.Teardown()

	require.NoError(t, f.Run())
	dump := f.DumpAttrs(attrstore.TypeOf[examples.Modal]())
	assert.Contains(t, dump, "line 0")
	assert.Contains(t, dump, `"shall"`)
}

func TestFixture_Teardown_ClearsReferences(t *testing.T) {
	p := pipeline.New()
	f := spantest.NewFixture(p, "x")
	f.Teardown()
	assert.Nil(t, f.Doc)
	assert.Nil(t, f.Pipeline)
	assert.Nil(t, f.Diagnostics)
}
