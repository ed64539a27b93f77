package model

// DiagnosticKind classifies a recoverable condition reported during a run.
type DiagnosticKind string

const (
	// DiagnosticCollision is a selector already claimed by an earlier facet.
	DiagnosticCollision DiagnosticKind = "collision"
	// DiagnosticSkippedFacet is a facet left with no unique selectors.
	DiagnosticSkippedFacet DiagnosticKind = "skipped-facet"
	// DiagnosticMergedFacet is a facet whose address already had a cut record.
	DiagnosticMergedFacet DiagnosticKind = "merged-facet"
	// DiagnosticMissingArtifact is a facet whose compiled artifact was not found.
	DiagnosticMissingArtifact DiagnosticKind = "missing-artifact"
	// DiagnosticUnreadableFile is a source file the scanner could not read.
	DiagnosticUnreadableFile DiagnosticKind = "unreadable-file"
	// DiagnosticSkippedFunction is an ABI entry dropped in lenient validation mode.
	DiagnosticSkippedFunction DiagnosticKind = "skipped-function"
)

// Diagnostic is a single warning line surfaced to the user.
type Diagnostic struct {
	Kind    DiagnosticKind `json:"kind" yaml:"kind"`
	Subject string         `json:"subject" yaml:"subject"`
	Message string         `json:"message" yaml:"message"`
}
