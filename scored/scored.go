// Package scored implements the confidence + provenance wrapper
// (Scored[T]) and the ambiguity aggregation it feeds (Ambiguous[T] via
// FromCandidates) (spec §4.7, §8 property 5). The scope-operator
// container built on top of it lives in package scope. Grounded on the teacher's plain-struct,
// sort.SliceStable result-shaping style seen throughout sqlparser's
// dependency-graph output.
package scored

import (
	"fmt"
	"sort"
)

// Provenance identifies the origin of a Scored value. Exactly one of the
// fields is meaningful per Kind.
type Provenance struct {
	Kind       ProvenanceKind
	RuleName   string // Kind == RuleBased
	Model      string // Kind == ModelPass
	PassID     string // Kind == ModelPass
	VerifierID string // Kind == HumanVerified
}

// ProvenanceKind enumerates the ways a Scored value can have come to be.
type ProvenanceKind int

const (
	RuleBased ProvenanceKind = iota
	ModelPass
	HumanVerified
	Derived
)

func (k ProvenanceKind) String() string {
	switch k {
	case RuleBased:
		return "rule-based"
	case ModelPass:
		return "model-pass"
	case HumanVerified:
		return "human-verified"
	case Derived:
		return "derived"
	default:
		return "unknown-provenance"
	}
}

func (p Provenance) String() string {
	switch p.Kind {
	case RuleBased:
		return fmt.Sprintf("rule(%s)", p.RuleName)
	case ModelPass:
		return fmt.Sprintf("model(%s,%s)", p.Model, p.PassID)
	case HumanVerified:
		return fmt.Sprintf("human(%s)", p.VerifierID)
	default:
		return p.Kind.String()
	}
}

// FromRule builds a RuleBased Provenance.
func FromRule(name string) Provenance { return Provenance{Kind: RuleBased, RuleName: name} }

// FromModel builds a ModelPass Provenance.
func FromModel(model, passID string) Provenance {
	return Provenance{Kind: ModelPass, Model: model, PassID: passID}
}

// FromHuman builds a HumanVerified Provenance.
func FromHuman(verifierID string) Provenance {
	return Provenance{Kind: HumanVerified, VerifierID: verifierID}
}

// DerivedProvenance is the Provenance for values computed from other
// already-scored values rather than observed directly.
var DerivedProvenance = Provenance{Kind: Derived}

// Scored pairs a value with a confidence in [0,1] and its provenance
// (spec §4.7 "Scored value").
type Scored[T any] struct {
	Value      T
	Confidence float64
	Source     Provenance
}

// New builds a Scored value, clamping confidence into [0,1].
func New[T any](value T, confidence float64, source Provenance) Scored[T] {
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	return Scored[T]{Value: value, Confidence: confidence, Source: source}
}

// Certain builds a Scored value at confidence 1.0 with HumanVerified
// provenance, the convention spec §4.7 calls out for certainty.
func Certain[T any](value T, verifierID string) Scored[T] {
	return Scored[T]{Value: value, Confidence: 1.0, Source: FromHuman(verifierID)}
}

// AmbiguityFlag classifies the shape of an Ambiguous[T] result.
type AmbiguityFlag int

const (
	None AmbiguityFlag = iota
	LowConfidence
	CompetingAlternatives
)

func (f AmbiguityFlag) String() string {
	switch f {
	case None:
		return "none"
	case LowConfidence:
		return "low-confidence"
	case CompetingAlternatives:
		return "competing-alternatives"
	default:
		return "unknown-flag"
	}
}

// AmbiguityConfig tunes FromCandidates (spec §6 defaults).
type AmbiguityConfig struct {
	NBest           int
	MinScore        float64
	LowConfidence   float64
	AmbiguityMargin float64
}

// DefaultAmbiguityConfig matches spec §6's documented defaults.
var DefaultAmbiguityConfig = AmbiguityConfig{
	NBest:           4,
	MinScore:        0.25,
	LowConfidence:   0.6,
	AmbiguityMargin: 0.1,
}

// Ambiguous is a best candidate plus its runners-up, flagged when the
// best is itself unreliable or contested (spec §4.7 "Ambiguous value").
type Ambiguous[T any] struct {
	Best         Scored[T]
	Alternatives []Scored[T]
	Flag         AmbiguityFlag
}

// FromCandidates implements spec §4.7/§8 property 5's exact aggregation
// algorithm: prune below MinScore, sort descending (stable on ties,
// preserving insertion order per spec §5's ordering guarantee), truncate
// to NBest, split head/tail, and compute the ambiguity flag.
//
// Returns false if every candidate was pruned (no best exists).
func FromCandidates[T any](candidates []Scored[T], cfg AmbiguityConfig) (Ambiguous[T], bool) {
	kept := make([]Scored[T], 0, len(candidates))
	for _, c := range candidates {
		if c.Confidence >= cfg.MinScore {
			kept = append(kept, c)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Confidence > kept[j].Confidence
	})
	if len(kept) > cfg.NBest {
		kept = kept[:cfg.NBest]
	}
	if len(kept) == 0 {
		return Ambiguous[T]{}, false
	}
	best := kept[0]
	alts := kept[1:]

	flag := None
	if best.Confidence < cfg.LowConfidence {
		flag = LowConfidence
	} else {
		for _, a := range alts {
			if a.Confidence >= best.Confidence-cfg.AmbiguityMargin {
				flag = CompetingAlternatives
				break
			}
		}
	}
	return Ambiguous[T]{Best: best, Alternatives: alts, Flag: flag}, true
}
