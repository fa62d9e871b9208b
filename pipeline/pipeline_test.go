package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsas/layeredspan/assign"
	"github.com/vippsas/layeredspan/attrstore"
	"github.com/vippsas/layeredspan/pipeline"
	"github.com/vippsas/layeredspan/resolver"
	"github.com/vippsas/layeredspan/resolverlib"
	"github.com/vippsas/layeredspan/sel"
)

type typeX struct{ v string }
type typeY struct{ v string }
type typeZ struct{ v string }

func produceConst[T any](value T) resolver.LineFunc {
	return func(whole sel.Sel) []resolver.LineAssignment {
		if whole.IsEmpty() {
			return nil
		}
		s := whole.Sub(whole.Start, whole.Start)
		return []resolver.LineAssignment{resolver.WrapLine(assign.FinishWithAttr(s, value))}
	}
}

// TestBuild_S3_Cycle mirrors spec scenario S3: A produces X requires Y; B
// produces Y requires Z; C produces Z requires X. Planning must fail with
// a CycleError covering all three ids.
func TestBuild_S3_Cycle(t *testing.T) {
	descriptors := []resolver.Descriptor{
		resolver.NewLine("A", resolver.Produces1[typeX](), resolver.Produces1[typeY](), nil, produceConst(typeX{})),
		resolver.NewLine("B", resolver.Produces1[typeY](), resolver.Produces1[typeZ](), nil, produceConst(typeY{})),
		resolver.NewLine("C", resolver.Produces1[typeZ](), resolver.Produces1[typeX](), nil, produceConst(typeZ{})),
	}

	_, err := pipeline.Build(descriptors, pipeline.NewConfig())
	require.Error(t, err)
	var cycleErr pipeline.CycleError
	require.ErrorAs(t, err, &cycleErr)
	seen := map[string]bool{}
	for _, id := range cycleErr.IDs {
		seen[id] = true
	}
	assert.True(t, seen["A"])
	assert.True(t, seen["B"])
	assert.True(t, seen["C"])
}

func TestBuild_MissingProducer(t *testing.T) {
	descriptors := []resolver.Descriptor{
		resolver.NewLine("A", resolver.Produces1[typeX](), resolver.Produces1[typeY](), nil, produceConst(typeX{})),
	}
	_, err := pipeline.Build(descriptors, pipeline.NewConfig())
	require.Error(t, err)
	var missing pipeline.MissingProducerError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "A", missing.Consumer)
}

func TestBuild_DuplicateID(t *testing.T) {
	descriptors := []resolver.Descriptor{
		resolver.NewLine("A", resolver.Produces1[typeX](), nil, nil, produceConst(typeX{})),
		resolver.NewLine("A", resolver.Produces1[typeY](), nil, nil, produceConst(typeY{})),
	}
	_, err := pipeline.Build(descriptors, pipeline.NewConfig())
	require.Error(t, err)
	assert.IsType(t, pipeline.DuplicateIDError{}, err)
}

func TestBuild_PhaseMismatch(t *testing.T) {
	docDescr := resolver.NewDocument("D", resolver.Produces1[typeY](), nil, nil, nil)
	lineDescr := resolver.NewLine("A", resolver.Produces1[typeX](), resolver.Produces1[typeY](), nil, produceConst(typeX{}))
	_, err := pipeline.Build([]resolver.Descriptor{docDescr, lineDescr}, pipeline.NewConfig())
	require.Error(t, err)
	assert.IsType(t, pipeline.PhaseMismatchError{}, err)
}

func TestBuild_RespectsDependencyOrder(t *testing.T) {
	descriptors := []resolver.Descriptor{
		resolver.NewLine("consumer", resolver.Produces1[typeY](), resolver.Produces1[typeX](), nil, produceConst(typeY{})),
		resolver.NewLine("producer", resolver.Produces1[typeX](), nil, nil, produceConst(typeX{})),
	}
	plan, err := pipeline.Build(descriptors, pipeline.NewConfig())
	require.NoError(t, err)
	require.Equal(t, []string{"producer", "consumer"}, plan.LineSteps)
}

func TestBuild_DisabledResolverRemovedFromPlan(t *testing.T) {
	descriptors := []resolver.Descriptor{
		resolver.NewLine("A", resolver.Produces1[typeX](), nil, nil, produceConst(typeX{})),
	}
	cfg := pipeline.NewConfig().WithDisabled("A")
	plan, err := pipeline.Build(descriptors, cfg)
	require.NoError(t, err)
	assert.Empty(t, plan.LineSteps)
}

func TestBuild_EnableOverridesDisable(t *testing.T) {
	descriptors := []resolver.Descriptor{
		resolver.NewLine("A", resolver.Produces1[typeX](), nil, nil, produceConst(typeX{})),
	}
	cfg := pipeline.NewConfig().WithDisabled("A").WithEnabled("A")
	plan, err := pipeline.Build(descriptors, cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, plan.LineSteps)
}

// TestRun_OutOfBandTypeDropped is the spec's S6 scenario: a resolver
// declaring produces={typeX} returns a typeY assignment. It is dropped
// with a diagnostic and does not affect the store.
func TestRun_OutOfBandTypeDropped(t *testing.T) {
	bad := resolver.NewLine("bad", resolver.Produces1[typeX](), nil, nil, func(whole sel.Sel) []resolver.LineAssignment {
		s := whole.Sub(whole.Start, whole.Start)
		return []resolver.LineAssignment{resolver.WrapLine(assign.FinishWithAttr(s, typeY{v: "oops"}))}
	})

	p := pipeline.New().WithLineResolver(bad)
	d, diag, err := p.RunOnText(resolverlib.DefaultTokenizer, "hello")
	require.NoError(t, err)
	require.Len(t, diag.Warnings, 1)
	assert.Equal(t, pipeline.OutOfBandTypeWarning, diag.Warnings[0].Kind)
	assert.Empty(t, attrstore.Query[typeY](d.Line(0).Store()))
}

// TestRun_Determinism is spec property 7: identical (text, descriptors,
// config) produce byte-equal stores across runs.
func TestRun_Determinism(t *testing.T) {
	descriptor := resolver.NewLine("producer", resolver.Produces1[typeX](), nil, nil, produceConst(typeX{v: "x"}))

	run := func() []attrstore.Occurrence[typeX] {
		p := pipeline.New().WithLineResolver(descriptor)
		d, _, err := p.RunOnText(resolverlib.DefaultTokenizer, "alpha beta")
		require.NoError(t, err)
		return attrstore.Query[typeX](d.Line(0).Store())
	}

	first := run()
	second := run()
	assert.Equal(t, first, second)
}
