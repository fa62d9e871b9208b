package pipeline

import (
	"github.com/vippsas/layeredspan/attrstore"
	"github.com/vippsas/layeredspan/resolver"
)

// Plan is the result of topologically scheduling a bag of resolver
// descriptors (spec §4.8 "Produce a plan"): the ordered ids to run in
// each phase, plus the descriptor bag itself for introspection.
type Plan struct {
	LineSteps []string
	DocSteps  []string

	byID map[string]resolver.Descriptor
}

// Descriptor looks up a planned resolver by id.
func (p *Plan) Descriptor(id string) (resolver.Descriptor, bool) {
	d, ok := p.byID[id]
	return d, ok
}

// Build builds an execution Plan from descriptors and cfg, enforcing
// phase separation, resolving the dependency graph per resolver, and
// reporting cycles/missing producers/duplicate ids as errors (spec §4.8
// "Planning algorithm").
func Build(descriptors []resolver.Descriptor, cfg *Config) (*Plan, error) {
	byID := make(map[string]resolver.Descriptor, len(descriptors))
	var order []string
	for _, d := range descriptors {
		if _, dup := byID[d.ID]; dup {
			return nil, DuplicateIDError{ID: d.ID}
		}
		byID[d.ID] = d
		order = append(order, d.ID)
	}

	active := make(map[string]bool, len(order))
	for _, id := range order {
		if cfg.isEnabled(id) {
			active[id] = true
		}
	}

	// producersOf[T] = ids of enabled resolvers producing T, in
	// declaration order. Multiple producers are allowed (spec step 1);
	// each contributes its own dependency edge.
	producersOf := make(map[attrstore.AttrType][]string)
	for _, id := range order {
		if !active[id] {
			continue
		}
		for _, t := range byID[id].Produces {
			producersOf[t] = append(producersOf[t], id)
		}
	}

	phaseOfType := make(map[attrstore.AttrType]resolver.Phase)
	for _, id := range order {
		if !active[id] {
			continue
		}
		for _, t := range byID[id].Produces {
			phaseOfType[t] = byID[id].Phase
		}
	}

	// deps[id] = the enabled resolver ids that must run before id.
	deps := make(map[string][]string, len(order))
	for _, id := range order {
		if !active[id] {
			continue
		}
		d := byID[id]
		for _, t := range d.Requires {
			producers, ok := producersOf[t]
			if !ok || len(producers) == 0 {
				if disabledProducersExist(byID, order, t) {
					return nil, DisabledProducerError{Consumer: id, MissingType: t}
				}
				return nil, MissingProducerError{Consumer: id, MissingType: t}
			}
			if d.Phase == resolver.Line {
				if ph, ok := phaseOfType[t]; ok && ph == resolver.Document {
					return nil, PhaseMismatchError{LineResolver: id, RequiredDocType: t}
				}
			}
			deps[id] = append(deps[id], producers...)
		}
		for _, t := range d.OptionalRequires {
			producers, ok := producersOf[t]
			if !ok || len(producers) == 0 {
				continue
			}
			if d.Phase == resolver.Line {
				if ph, ok := phaseOfType[t]; ok && ph == resolver.Document {
					return nil, PhaseMismatchError{LineResolver: id, RequiredDocType: t}
				}
			}
			deps[id] = append(deps[id], producers...)
		}
	}

	lineIDs := filterByPhase(byID, order, active, resolver.Line)
	docIDs := filterByPhase(byID, order, active, resolver.Document)

	lineSteps, err := topoSort(lineIDs, deps)
	if err != nil {
		return nil, err
	}
	docSteps, err := topoSort(docIDs, deps)
	if err != nil {
		return nil, err
	}

	return &Plan{LineSteps: lineSteps, DocSteps: docSteps, byID: byID}, nil
}

func filterByPhase(byID map[string]resolver.Descriptor, order []string, active map[string]bool, phase resolver.Phase) []string {
	var out []string
	for _, id := range order {
		if active[id] && byID[id].Phase == phase {
			out = append(out, id)
		}
	}
	return out
}

func disabledProducersExist(byID map[string]resolver.Descriptor, order []string, t attrstore.AttrType) bool {
	for _, id := range order {
		for _, p := range byID[id].Produces {
			if p == t {
				return true
			}
		}
	}
	return false
}

// topoSort is the teacher's visiting/visited DFS (sqlparser/sqldocument
// TopologicalSort), adapted from a single global dependency list to a
// per-phase subset with an explicit adjacency map rather than a
// declared-name lookup.
func topoSort(ids []string, deps map[string][]string) ([]string, error) {
	idSet := make(map[string]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}

	visiting := make(map[string]bool, len(ids))
	visited := make(map[string]bool, len(ids))
	var output []string

	var visit func(id string, stack []string) error
	visit = func(id string, stack []string) error {
		if visited[id] {
			return nil
		}
		if visiting[id] {
			return CycleError{IDs: append(append([]string{}, stack...), id)}
		}
		visiting[id] = true
		for _, dep := range deps[id] {
			if !idSet[dep] {
				continue
			}
			if err := visit(dep, append(stack, id)); err != nil {
				return err
			}
		}
		visiting[id] = false
		visited[id] = true
		output = append(output, id)
		return nil
	}

	for _, id := range ids {
		if err := visit(id, nil); err != nil {
			return nil, err
		}
	}
	return output, nil
}
