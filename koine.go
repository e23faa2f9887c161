// Package koine is a deterministic grammar-enforcement engine for Modern
// Greek: it recovers every morphologically plausible reading of each token,
// narrows the readings to one consistent interpretation with agreement and
// government constraints, builds a dependency tree, and reports every rule
// violation as a structured diagnostic. Behaviour is rule-based and
// deterministic throughout; there is no statistical component.
package koine

import "sort"

// Analyzer holds the loaded paradigm store and per-instance settings, and
// provides the public API. The store is immutable after New, so one Analyzer
// may serve any number of concurrent goroutines.
type Analyzer struct {
	store    *Store
	register Register
	log      *Logger
}

// New loads paradigm and lexicon data from dataDir and returns a
// ready-to-use Analyzer.
func New(dataDir string, opts ...Option) (*Analyzer, error) {
	store, err := LoadStore(dataDir)
	if err != nil {
		return nil, err
	}
	return NewWithStore(store, opts...), nil
}

// NewWithStore wraps an already-loaded store.
func NewWithStore(store *Store, opts ...Option) *Analyzer {
	o := options{logger: NoopLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Analyzer{store: store, register: o.register, log: o.logger}
}

// Store exposes the analyzer's paradigm store.
func (a *Analyzer) Store() *Store { return a.store }

// Analyze tokenizes one sentence and analyzes it. It always returns a
// result; malformed input surfaces as diagnostics, never as a crash.
func (a *Analyzer) Analyze(sentence string) *AnalysisResult {
	return a.AnalyzeTokens(Tokenize(sentence))
}

// AnalyzeTokens runs the full pipeline over pre-split token spans:
// candidate assembly, constraint propagation, resolution, pro-drop subject
// synthesis, dependency resolution, and the surface checks.
func (a *Analyzer) AnalyzeTokens(tokens []Token) *AnalysisResult {
	p := newPass(a)
	p.assemble(tokens)
	p.propagate()
	p.resolve()
	p.synthesizeSubject()
	p.buildTree()
	p.checkSandhi()
	p.checkStyle()

	res := p.result()
	a.log.Debug("sentence analyzed",
		"tokens", len(tokens),
		"entities", len(res.Entities),
		"diagnostics", len(res.Diagnostics),
	)
	return res
}

// result materializes the immutable AnalysisResult from the pass state.
func (p *pass) result() *AnalysisResult {
	res := &AnalysisResult{}
	for i := 0; i < p.arena.Len(); i++ {
		id := EntityID(i)
		c := p.resolved[i]
		re := ResolvedEntity{
			Text:     p.arena.Text(id),
			Span:     p.arena.Span(id),
			Lemma:    c.Lemma,
			Tags:     c.Tags,
			Implicit: p.arena.Implicit(id),
			Unknown:  p.arena.Unknown(id),
		}
		if lex := p.lex(c.Lemma); lex != nil {
			re.LemmaText = lex.Text
			re.POS = lex.POS
		} else if re.Implicit {
			re.POS = POSPronoun
		}
		res.Entities = append(res.Entities, re)
	}

	sort.SliceStable(p.diags, func(i, j int) bool {
		if p.diags[i].Span.Start != p.diags[j].Span.Start {
			return p.diags[i].Span.Start < p.diags[j].Span.Start
		}
		return p.diags[i].Kind < p.diags[j].Kind
	})
	res.Diagnostics = p.diags
	res.Edges = p.edges
	return res
}

// Generate builds the surface form of lemma under tags.
func (a *Analyzer) Generate(lemma LemmaID, tags TagSet) (string, error) {
	return a.store.Generate(lemma, tags)
}

// AnalyzeWord returns the raw candidate set for a single surface form,
// without any sentence context.
func (a *Analyzer) AnalyzeWord(form string) []Candidate {
	return a.store.Analyze(form)
}

// InflectionTable computes the full inflection table for a lemma.
func (a *Analyzer) InflectionTable(lemma LemmaID) (*InflectionTable, error) {
	return a.store.InflectionTable(lemma)
}
