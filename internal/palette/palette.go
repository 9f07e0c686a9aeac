// Package palette holds the shared tag palette constants: the fixed
// set of hex colors new tags draw from, the seed tags every session
// starts with, and the color-pick helpers used by the photo pipeline
// and tag creation.
package palette

import (
	"math/rand"

	"github.com/expokit/standplan/internal/model"
)

// FallbackColor is used whenever the current tag set is empty.
const FallbackColor = "#22d3ee"

// Colors is the fixed hex palette new tags draw from.
var Colors = []string{"#22d3ee", "#a855f7", "#f97316", "#34d399", "#facc15"}

// SeedTags returns the palette entries a fresh session starts with.
// Order matters: new projects take the first two labels as defaults.
func SeedTags() []model.Tag {
	return []model.Tag{
		{ID: "t1", Label: "Sustainability", Color: "#22d3ee"},
		{ID: "t2", Label: "Innovation", Color: "#a855f7"},
		{ID: "t3", Label: "VR/AR", Color: "#f97316"},
		{ID: "t4", Label: "Hospitality", Color: "#34d399"},
		{ID: "t5", Label: "Retail", Color: "#facc15"},
	}
}

// RandomColor picks a color uniformly from the given tags' colors.
// An empty tag set yields FallbackColor.
func RandomColor(rng *rand.Rand, tags []model.Tag) string {
	if len(tags) == 0 {
		return FallbackColor
	}
	return tags[rng.Intn(len(tags))].Color
}

// RandomPaletteColor picks a color uniformly from the fixed palette.
// New tags are colored this way regardless of the current tag set.
func RandomPaletteColor(rng *rand.Rand) string {
	return Colors[rng.Intn(len(Colors))]
}
