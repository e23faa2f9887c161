package koine

// Relation is a dependency relation label.
type Relation uint8

const (
	RelNsubj Relation = iota
	RelObj
	RelIobj
	RelObl
	RelDet
	RelAmod
)

var relationNames = [...]string{"nsubj", "obj", "iobj", "obl", "det", "amod"}

func (r Relation) String() string {
	if int(r) < len(relationNames) {
		return relationNames[r]
	}
	return "dep"
}

// DependencyEdge links a dependent entity to its head. Head is a lookup key
// into the sentence's entity list, never an owning reference.
type DependencyEdge struct {
	Head EntityID
	Dep  EntityID
	Rel  Relation
}

// ResolvedEntity is one entity's final analysis: exactly one lemma and one
// resolved TagSet.
type ResolvedEntity struct {
	Text      string
	Span      Span
	Lemma     LemmaID
	LemmaText string
	POS       PartOfSpeech
	Tags      TagSet
	Implicit  bool
	Unknown   bool
}

// AnalysisResult is the immutable outcome of one sentence pass: the resolved
// entities, the dependency edges (empty if the tree was rejected), and the
// ordered diagnostics. The engine always returns a result, even for input it
// could not confidently resolve.
type AnalysisResult struct {
	Entities    []ResolvedEntity
	Edges       []DependencyEdge
	Diagnostics []Diagnostic
}

// Fatal reports whether any diagnostic is fatal for this sentence.
func (r *AnalysisResult) Fatal() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityFatal {
			return true
		}
	}
	return false
}

// Root returns the id of the root entity (the one no edge points away from),
// or NoEntity when there are no entities or no usable tree.
func (r *AnalysisResult) Root() EntityID {
	if len(r.Entities) == 0 {
		return NoEntity
	}
	hasHead := make([]bool, len(r.Entities))
	for _, e := range r.Edges {
		hasHead[e.Dep] = true
	}
	for i := range r.Entities {
		if !hasHead[i] {
			return EntityID(i)
		}
	}
	return NoEntity
}
