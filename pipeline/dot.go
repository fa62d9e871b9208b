package pipeline

import (
	"fmt"
	"strings"
)

// planToDOT renders a Plan's execution order as a Graphviz DOT digraph,
// one subgraph per phase, edges drawn in scheduled order (spec §4.8
// "to_dot").
func planToDOT(p *Plan) string {
	var b strings.Builder
	b.WriteString("digraph pipeline {\n")
	b.WriteString("  rankdir=LR;\n")

	writePhase := func(label string, steps []string) {
		if len(steps) == 0 {
			return
		}
		fmt.Fprintf(&b, "  subgraph cluster_%s {\n    label=%q;\n", label, label)
		for _, id := range steps {
			fmt.Fprintf(&b, "    %q;\n", id)
		}
		b.WriteString("  }\n")
		for i := 0; i+1 < len(steps); i++ {
			fmt.Fprintf(&b, "  %q -> %q;\n", steps[i], steps[i+1])
		}
	}

	writePhase("line", p.LineSteps)
	writePhase("document", p.DocSteps)

	if len(p.LineSteps) > 0 && len(p.DocSteps) > 0 {
		fmt.Fprintf(&b, "  %q -> %q [style=dashed];\n", p.LineSteps[len(p.LineSteps)-1], p.DocSteps[0])
	}

	b.WriteString("}\n")
	return b.String()
}
