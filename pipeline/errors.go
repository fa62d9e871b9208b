package pipeline

import (
	"fmt"
	"strings"

	"github.com/vippsas/layeredspan/attrstore"
)

// DuplicateIDError reports two descriptors sharing the same id (spec
// §4.8 planning step 4).
type DuplicateIDError struct {
	ID string
}

func (e DuplicateIDError) Error() string {
	return fmt.Sprintf("pipeline: duplicate resolver id %q", e.ID)
}

// CycleError reports a dependency cycle detected while planning one
// phase's subgraph.
type CycleError struct {
	IDs []string
}

func (e CycleError) Error() string {
	return fmt.Sprintf("pipeline: dependency cycle: %s", strings.Join(e.IDs, " -> "))
}

// MissingProducerError reports a required type with no producer in the
// bag of descriptors.
type MissingProducerError struct {
	Consumer    string
	MissingType attrstore.AttrType
}

func (e MissingProducerError) Error() string {
	return fmt.Sprintf("pipeline: resolver %q requires type %s, produced by nothing", e.Consumer, e.MissingType)
}

// PhaseMismatchError reports a line-phase resolver requiring a type only
// a document-phase resolver produces.
type PhaseMismatchError struct {
	LineResolver    string
	RequiredDocType attrstore.AttrType
}

func (e PhaseMismatchError) Error() string {
	return fmt.Sprintf("pipeline: line resolver %q requires document-only type %s", e.LineResolver, e.RequiredDocType)
}

// DisabledProducerError reports a disabled resolver whose output a still
// enabled resolver requires non-optionally.
type DisabledProducerError struct {
	Consumer    string
	MissingType attrstore.AttrType
}

func (e DisabledProducerError) Error() string {
	return fmt.Sprintf("pipeline: resolver %q requires type %s, whose only producers are disabled", e.Consumer, e.MissingType)
}
