package pipeline

import (
	"fmt"
	"strings"

	"github.com/vippsas/layeredspan/attrstore"
	"github.com/vippsas/layeredspan/doc"
)

// WarningKind classifies a non-fatal diagnostic raised while executing a
// plan (spec §4.8 "Error taxonomy" / non-fatal row).
type WarningKind int

const (
	InvalidRangeWarning WarningKind = iota
	InvalidDocSpanWarning
	OutOfBandTypeWarning
)

func (k WarningKind) String() string {
	switch k {
	case InvalidRangeWarning:
		return "invalid-range"
	case InvalidDocSpanWarning:
		return "invalid-doc-span"
	case OutOfBandTypeWarning:
		return "out-of-band-type"
	default:
		return "unknown-warning"
	}
}

// Warning is one dropped-assignment diagnostic. Only fields relevant to
// Kind are populated; Pipeline.Run leaves DeclaredType zero, so an
// out-of-band warning's "declared" part renders empty.
type Warning struct {
	Kind         WarningKind
	ResolverID   string
	LineIndex    int // InvalidRangeWarning
	Given        attrstore.TokenRange
	GivenDoc     doc.DocSpan // InvalidDocSpanWarning
	LineLength   int
	DeclaredType attrstore.AttrType // OutOfBandTypeWarning
	ActualType   attrstore.AttrType
}

func (w Warning) String() string {
	switch w.Kind {
	case InvalidRangeWarning:
		return fmt.Sprintf("resolver %q: range %s invalid for line %d of length %d", w.ResolverID, w.Given, w.LineIndex, w.LineLength)
	case InvalidDocSpanWarning:
		return fmt.Sprintf("resolver %q: doc span %s invalid", w.ResolverID, w.GivenDoc)
	case OutOfBandTypeWarning:
		return fmt.Sprintf("resolver %q: produced undeclared type %s (declared %s)", w.ResolverID, w.ActualType, w.DeclaredType)
	default:
		return "unknown warning"
	}
}

// RunDiagnostics aggregates every non-fatal warning raised while
// executing a Plan (spec §4.8 "execution algorithm", §4.5 "Failure
// semantics"). A pipeline run always finishes; RunDiagnostics records
// what got silently dropped along the way.
type RunDiagnostics struct {
	RunID    string
	Warnings []Warning
}

func (rd *RunDiagnostics) add(w Warning) {
	rd.Warnings = append(rd.Warnings, w)
}

// Error renders every warning on its own line, or "" if there were none.
// Named Error (not String) so a *RunDiagnostics can be handed to code
// that expects an error-shaped summary without itself being fatal.
func (rd *RunDiagnostics) Error() string {
	if rd == nil || len(rd.Warnings) == 0 {
		return ""
	}
	lines := make([]string, len(rd.Warnings))
	for i, w := range rd.Warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
