package koine

// DiagnosticKind classifies a rule violation or analysis incident.
type DiagnosticKind uint8

const (
	// LookupMiss: the analyzer found no candidates for a token.
	LookupMiss DiagnosticKind = iota
	// AmbiguityUnresolved: propagation emptied a candidate set and the
	// engine fell back to the deterministic priority order.
	AmbiguityUnresolved
	// AgreementViolation: an agreement or government constraint cannot be
	// satisfied by any candidate pair.
	AgreementViolation
	// ValencyViolation: an argument attached to a verb whose valency
	// does not license it.
	ValencyViolation
	// SandhiViolation: the final-N rule was applied incorrectly.
	SandhiViolation
	// StyleClash: lemmas of conflicting registers in one sentence.
	StyleClash
	// CyclicDependency: the resolver produced a cycle; fatal for the
	// sentence, no usable dependency tree is returned.
	CyclicDependency
)

var diagnosticKindNames = [...]string{
	"LookupMiss",
	"AmbiguityUnresolved",
	"AgreementViolation",
	"ValencyViolation",
	"SandhiViolation",
	"StyleClash",
	"CyclicDependency",
}

func (k DiagnosticKind) String() string {
	if int(k) < len(diagnosticKindNames) {
		return diagnosticKindNames[k]
	}
	return "Unknown"
}

// Severity grades a diagnostic.
type Severity uint8

const (
	SeverityWarning Severity = iota
	SeverityError
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	}
	return "unknown"
}

// Diagnostic is one structured finding attached to an entity (and its span).
type Diagnostic struct {
	Kind     DiagnosticKind
	Severity Severity
	Entity   EntityID
	Span     Span
	Message  string
}
