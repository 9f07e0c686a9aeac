package enrich

import (
	"context"
	"strings"
	"time"
)

// Mock is the local heuristic strategy: canned copy selected by
// substring match on the company name, resolved after a fixed
// simulated delay to emulate remote latency. It cannot fail.
type Mock struct {
	// Delay is the simulated latency before the suggestion resolves.
	Delay time.Duration
}

// NewMock creates the heuristic strategy with the given simulated
// delay. A zero delay resolves immediately.
func NewMock(delay time.Duration) *Mock {
	return &Mock{Delay: delay}
}

// Generate returns the canned suggestion for the company name after
// the simulated delay, or the ctx error if cancelled first.
func (m *Mock) Generate(ctx context.Context, in Input) (*Suggestion, error) {
	if m.Delay > 0 {
		timer := time.NewTimer(m.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return mockSuggestion(in.CompanyName), nil
}

// mockSuggestion picks the canned copy for a company name.
func mockSuggestion(companyName string) *Suggestion {
	lower := strings.ToLower(companyName)

	if strings.Contains(lower, "apple") {
		return &Suggestion{
			Description: "Premium experience booth highlighting iPhone lineup with hands-on camera demos, iOS tips bar, and sustainability messaging.",
			Pros: []string{
				"Instant brand recognition",
				"Staff trained on Pro camera tips",
				"High dwell time near demo bar",
			},
			Cons: []string{
				"Requires strong Wi-Fi for iCloud demos",
				"High security staffing needs",
			},
		}
	}

	if strings.Contains(lower, "volt") || strings.Contains(lower, "ride") {
		return &Suggestion{
			Description: "EV mobility corner with test-drive simulators, modular charging showcase, and bold neon edge lighting.",
			Pros: []string{
				"Immersive simulator attracts queues",
				"Clear sustainability storytelling",
				"Scalable footprint",
			},
			Cons: []string{
				"Simulator needs extra power",
				"Queue management barriers required",
			},
		}
	}

	return &Suggestion{
		Description: "Engaging stand featuring interactive demos, tactile product displays, and a concise value narrative tailored to visitors.",
		Pros: []string{
			"Clear messaging hierarchy",
			"Hands-on product zones",
			"Staff rotation schedule defined",
		},
		Cons: []string{
			"Pending AV vendor confirmation",
			"Need final safety sign-off",
		},
	}
}
