// Command server exposes the koine analyzer as a JSON REST API.
//
// Endpoints:
//
//	POST /api/analyze          body: {"sentence":"..."}
//	POST /api/analyze/text     body: {"text":"..."}
//	GET  /api/analyze/word?form=<word>
//	GET  /api/generate?lemma=<citation>&tags=<Tag.Tag...>
//	GET  /api/inflection?lemma=<citation>
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"sort"

	"github.com/rs/cors"

	koine "github.com/ellinika/koine"
)

// ---- JSON response types ------------------------------------------------

type entityJSON struct {
	Text     string `json:"text"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Lemma    string `json:"lemma,omitempty"`
	POS      string `json:"pos"`
	Tags     string `json:"tags"`
	Implicit bool   `json:"implicit,omitempty"`
	Unknown  bool   `json:"unknown,omitempty"`
}

type edgeJSON struct {
	Head int    `json:"head"`
	Dep  int    `json:"dep"`
	Rel  string `json:"rel"`
}

type diagnosticJSON struct {
	Kind     string `json:"kind"`
	Severity string `json:"severity"`
	Entity   int    `json:"entity"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Message  string `json:"message"`
}

type analysisJSON struct {
	Entities    []entityJSON     `json:"entities"`
	Edges       []edgeJSON       `json:"edges"`
	Diagnostics []diagnosticJSON `json:"diagnostics"`
	Fatal       bool             `json:"fatal,omitempty"`
}

type analyzeResponse struct {
	Sentence string       `json:"sentence"`
	Analysis analysisJSON `json:"analysis"`
}

type analyzeTextResponse struct {
	Sentences []analyzeResponse `json:"sentences"`
}

type candidateJSON struct {
	Lemma string `json:"lemma"`
	Tags  string `json:"tags"`
}

type analyzeWordResponse struct {
	Form       string          `json:"form"`
	Candidates []candidateJSON `json:"candidates"`
}

type generateResponse struct {
	Lemma string `json:"lemma"`
	Tags  string `json:"tags"`
	Form  string `json:"form"`
}

type inflectionResponse struct {
	Lemma string            `json:"lemma"`
	Cells map[string]string `json:"cells"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toAnalysisJSON(a *koine.Analyzer, res *koine.AnalysisResult) analysisJSON {
	out := analysisJSON{Fatal: res.Fatal()}
	for _, e := range res.Entities {
		ej := entityJSON{
			Text:     e.Text,
			Start:    e.Span.Start,
			End:      e.Span.End,
			Lemma:    e.LemmaText,
			POS:      e.POS.String(),
			Tags:     e.Tags.String(),
			Implicit: e.Implicit,
			Unknown:  e.Unknown,
		}
		out.Entities = append(out.Entities, ej)
	}
	for _, e := range res.Edges {
		out.Edges = append(out.Edges, edgeJSON{
			Head: int(e.Head),
			Dep:  int(e.Dep),
			Rel:  e.Rel.String(),
		})
	}
	for _, d := range res.Diagnostics {
		out.Diagnostics = append(out.Diagnostics, diagnosticJSON{
			Kind:     d.Kind.String(),
			Severity: d.Severity.String(),
			Entity:   int(d.Entity),
			Start:    d.Span.Start,
			End:      d.Span.End,
			Message:  d.Message,
		})
	}
	return out
}

func toCandidatesJSON(a *koine.Analyzer, cands []koine.Candidate) []candidateJSON {
	out := make([]candidateJSON, 0, len(cands))
	for _, c := range cands {
		cj := candidateJSON{Tags: c.Tags.String()}
		if lex := a.Store().Lexeme(c.Lemma); lex != nil {
			cj.Lemma = lex.Text
		}
		out = append(out, cj)
	}
	// sort by lemma then tags for deterministic output
	sort.Slice(out, func(i, j int) bool {
		if out[i].Lemma != out[j].Lemma {
			return out[i].Lemma < out[j].Lemma
		}
		return out[i].Tags < out[j].Tags
	})
	return out
}

// resolveLemma maps a citation form to one lemma id, preferring the most
// frequent homograph.
func resolveLemma(a *koine.Analyzer, citation string) (koine.LemmaID, bool) {
	ids := a.Store().ByCitation(citation)
	if len(ids) == 0 {
		return 0, false
	}
	best := ids[0]
	for _, id := range ids[1:] {
		if a.Store().Lexeme(id).Freq > a.Store().Lexeme(best).Freq {
			best = id
		}
	}
	return best, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleAnalyze(a *koine.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body struct {
			Sentence string `json:"sentence"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Sentence == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'sentence' field")
			return
		}
		res := a.Analyze(body.Sentence)
		writeJSON(w, http.StatusOK, analyzeResponse{
			Sentence: body.Sentence,
			Analysis: toAnalysisJSON(a, res),
		})
	}
}

func handleAnalyzeText(a *koine.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}
		sentences := koine.SplitSentences(body.Text)
		results, err := a.AnalyzeAll(r.Context(), sentences)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		out := analyzeTextResponse{}
		for i, res := range results {
			out.Sentences = append(out.Sentences, analyzeResponse{
				Sentence: sentences[i],
				Analysis: toAnalysisJSON(a, res),
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func handleAnalyzeWord(a *koine.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		form := r.URL.Query().Get("form")
		if form == "" {
			writeError(w, http.StatusBadRequest, "missing 'form' query parameter")
			return
		}
		cands := a.AnalyzeWord(form)
		status := http.StatusOK
		if len(cands) == 0 {
			status = http.StatusNotFound
		}
		writeJSON(w, status, analyzeWordResponse{
			Form:       form,
			Candidates: toCandidatesJSON(a, cands),
		})
	}
}

func handleGenerate(a *koine.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		citation := r.URL.Query().Get("lemma")
		if citation == "" {
			writeError(w, http.StatusBadRequest, "missing 'lemma' query parameter")
			return
		}
		tags, err := koine.ParseTagSet(r.URL.Query().Get("tags"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		id, ok := resolveLemma(a, citation)
		if !ok {
			writeError(w, http.StatusNotFound, fmt.Sprintf("lemma %q not found", citation))
			return
		}
		form, err := a.Generate(id, tags)
		if err != nil {
			var unsupported *koine.ErrUnsupportedTagCombination
			if errors.As(err, &unsupported) {
				writeError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, generateResponse{
			Lemma: a.Store().Lexeme(id).Text,
			Tags:  tags.String(),
			Form:  form,
		})
	}
}

func handleInflection(a *koine.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		citation := r.URL.Query().Get("lemma")
		if citation == "" {
			writeError(w, http.StatusBadRequest, "missing 'lemma' query parameter")
			return
		}
		id, ok := resolveLemma(a, citation)
		if !ok {
			writeError(w, http.StatusNotFound, fmt.Sprintf("lemma %q not found", citation))
			return
		}
		table, err := a.InflectionTable(id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		cells := make(map[string]string, len(table.Forms))
		for _, cell := range table.Forms {
			cells[cell.Tags.String()] = cell.Form
		}
		writeJSON(w, http.StatusOK, inflectionResponse{
			Lemma: a.Store().Lexeme(id).Text,
			Cells: cells,
		})
	}
}

// ---- main ---------------------------------------------------------------

func main() {
	dataDir := flag.String("data", "data", "path to the paradigm data directory")
	addr := flag.String("addr", ":8080", "listen address")
	register := flag.String("register", "neutral", "stylistic register: neutral, colloquial, formal")
	flag.Parse()

	reg, ok := koine.ParseRegister(*register)
	if !ok {
		log.Fatalf("unknown register %q", *register)
	}

	log.Printf("loading data from %s …", *dataDir)
	analyzer, err := koine.New(*dataDir, koine.WithRegister(reg))
	if err != nil {
		log.Fatalf("failed to load data: %v", err)
	}
	log.Printf("data loaded: %d lemmas, %d paradigms",
		analyzer.Store().Lemmas(), analyzer.Store().Paradigms())

	mux := http.NewServeMux()
	mux.HandleFunc("/api/analyze/text", handleAnalyzeText(analyzer))
	mux.HandleFunc("/api/analyze/word", handleAnalyzeWord(analyzer))
	mux.HandleFunc("/api/analyze", handleAnalyze(analyzer))
	mux.HandleFunc("/api/generate", handleGenerate(analyzer))
	mux.HandleFunc("/api/inflection", handleInflection(analyzer))

	handler := cors.Default().Handler(mux)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
