package editor

import "github.com/expokit/standplan/internal/model"

// SeedSample loads the demo AeroDynamics draft for the given stand,
// replacing whatever draft is open for it.
func (e *Editor) SeedSample(standID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.drafts[standID] = &model.StandDraft{
		StandID:     standID,
		CompanyName: "AeroDynamics",
		ProductRef:  "AD-204",
		Description: "Premium modular booth showcasing our latest aerodynamic components with interactive demos.",
		Pros: []string{
			"Lightweight modular walls",
			"Immersive VR demo corner",
			"Quick assembly crew",
		},
		Cons: []string{
			"Limited storage space",
			"Power drop far from entry",
		},
		Photos: []model.Photo{
			{ID: "p1", Label: "Hero Render", Color: "#22d3ee", Status: model.PhotoReady},
			{ID: "p2", Label: "VR Pod", Color: "#a855f7", Status: model.PhotoReady},
			{ID: "p3", Label: "Lighting Plan", Color: "#f97316", Status: model.PhotoReady},
		},
		Contacts: []model.Contact{
			{
				ID:    "contact-1",
				Name:  "Lena Fischer",
				Role:  "Marketing Lead",
				Email: "lena.fischer@aerodynamics.io",
				Phone: "+49 30 1234 987",
			},
			{
				ID:    "contact-2",
				Name:  "Samir Patel",
				Role:  "Partnerships",
				Email: "samir.patel@aerodynamics.io",
				Phone: "+1 737 555 2299",
			},
		},
	}
}
