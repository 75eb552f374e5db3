package entities

import "encoding/json"

// Severity tags a compatibility issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one itemized finding of the remote compatibility service.
type Issue struct {
	Severity   Severity        `json:"severity"`
	Message    string          `json:"message"`
	Component1 string          `json:"component1,omitempty"`
	Component2 string          `json:"component2,omitempty"`
	AutoFix    json.RawMessage `json:"autoFix,omitempty"`
}

// Warning is an advisory note not tied to a rule violation.
type Warning struct {
	Message   string `json:"message"`
	Component string `json:"component,omitempty"`
}

// Verdict is the remote service's authoritative compatibility result.
// It is stored verbatim; the engine never edits issues or warnings.
type Verdict struct {
	IsValid  bool      `json:"isValid"`
	Issues   []Issue   `json:"issues"`
	Warnings []Warning `json:"warnings"`
}

// VerdictStatus is the worst status carried by a verdict.
type VerdictStatus string

const (
	VerdictClean    VerdictStatus = "clean"
	VerdictAdvisory VerdictStatus = "advisory"
	VerdictBlocking VerdictStatus = "blocking"
)

// Status applies the display precedence: any error issue blocks; otherwise
// warning issues or warning entries are advisory; otherwise clean.
func (v Verdict) Status() VerdictStatus {
	advisory := len(v.Warnings) > 0
	for _, issue := range v.Issues {
		switch issue.Severity {
		case SeverityError:
			return VerdictBlocking
		case SeverityWarning:
			advisory = true
		}
	}
	if advisory {
		return VerdictAdvisory
	}
	return VerdictClean
}
