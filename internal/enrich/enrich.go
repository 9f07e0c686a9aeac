// Package enrich produces content suggestions for a stand draft:
// a description plus short pros/cons bullets. Two interchangeable
// strategies implement the same contract: a local heuristic for
// instant prototyping and a remote call through the serve endpoint.
package enrich

import (
	"context"
	"errors"
)

// Input is the draft context a suggestion is generated from. All
// fields may be empty.
type Input struct {
	CompanyName        string `json:"companyName"`
	ProductRef         string `json:"productRef"`
	CurrentDescription string `json:"currentDescription"`
}

// Suggestion is a generated draft enrichment, copied into the draft
// verbatim.
type Suggestion struct {
	Description string   `json:"description"`
	Pros        []string `json:"pros"`
	Cons        []string `json:"cons"`
}

// ErrGenerationFailed is the single opaque failure surfaced to the
// caller by the remote strategy; transport, authorization, and parse
// problems all collapse into it. The caller re-triggers manually;
// there is no automatic retry.
var ErrGenerationFailed = errors.New("AI generation failed")

// Service generates a suggestion from draft context. Implementations
// must honor ctx cancellation.
type Service interface {
	Generate(ctx context.Context, in Input) (*Suggestion, error)
}
