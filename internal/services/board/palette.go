package board

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ternarybob/boardbridge/internal/models"
)

// Palette maps vendor fill colors onto the canonical four-color set. Vendors
// report colors as named presets or hex codes; anything unrecognized falls
// back to yellow so downstream rendering never sees an unknown color.
type Palette struct {
	colors map[string]models.NoteColor
}

// DefaultPalette returns the built-in vendor color table.
func DefaultPalette() *Palette {
	return &Palette{
		colors: map[string]models.NoteColor{
			"yellow":       models.ColorYellow,
			"light_yellow": models.ColorYellow,
			"orange":       models.ColorYellow,
			"#fff9b1":      models.ColorYellow,
			"#f5f6a5":      models.ColorYellow,

			"blue":       models.ColorBlue,
			"light_blue": models.ColorBlue,
			"dark_blue":  models.ColorBlue,
			"cyan":       models.ColorBlue,
			"#a6ccf5":    models.ColorBlue,
			"#6cd8fa":    models.ColorBlue,

			"green":       models.ColorGreen,
			"light_green": models.ColorGreen,
			"dark_green":  models.ColorGreen,
			"#c9f0c0":     models.ColorGreen,
			"#93d275":     models.ColorGreen,

			"pink":       models.ColorPink,
			"light_pink": models.ColorPink,
			"red":        models.ColorPink,
			"magenta":    models.ColorPink,
			"violet":     models.ColorPink,
			"#f5c8d8":    models.ColorPink,
			"#ea94bb":    models.ColorPink,
		},
	}
}

// LoadOverrides merges palette entries from a YAML file of
// vendor-color -> canonical-color pairs. Entries mapping to a color outside
// the canonical set are rejected.
func (p *Palette) LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read palette file: %w", err)
	}

	var overrides map[string]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("failed to parse palette file: %w", err)
	}

	for vendor, canonical := range overrides {
		color := models.NoteColor(strings.ToLower(strings.TrimSpace(canonical)))
		switch color {
		case models.ColorYellow, models.ColorBlue, models.ColorGreen, models.ColorPink:
			p.colors[normalizeKey(vendor)] = color
		default:
			return fmt.Errorf("palette entry %q maps to unknown color %q", vendor, canonical)
		}
	}

	return nil
}

// Normalize resolves a vendor fill color to its canonical color. Unknown and
// empty values resolve to yellow.
func (p *Palette) Normalize(fillColor string) models.NoteColor {
	if color, ok := p.colors[normalizeKey(fillColor)]; ok {
		return color
	}
	return models.ColorYellow
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
