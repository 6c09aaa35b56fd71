// Package textgrid reads and writes Praat TextGrid annotation files.
//
// Both the long ("ooTextFile" with key = value lines) and the short text
// formats are read. Files are always written in the long format.
package textgrid

import "fmt"

// Tier classes.
const (
	IntervalTier = "IntervalTier"
	TextTier     = "TextTier"
)

// TextGrid is a set of named, time-aligned annotation tiers.
type TextGrid struct {
	XMin, XMax float64
	Tiers      []*Tier
}

// Tier is one annotation layer. Interval tiers fill Intervals, text tiers
// fill Points.
type Tier struct {
	Class      string
	Name       string
	XMin, XMax float64
	Intervals  []Interval
	Points     []Point
}

// Interval is a labeled span [XMin, XMax).
type Interval struct {
	XMin, XMax float64
	Text       string
}

// Duration returns the length of the interval in seconds.
func (iv Interval) Duration() float64 {
	return iv.XMax - iv.XMin
}

// Point is a labeled instant.
type Point struct {
	Time float64
	Mark string
}

// Tier returns the first tier named name, or nil.
func (tg *TextGrid) Tier(name string) *Tier {
	for _, t := range tg.Tiers {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// TierNames returns the tier names in file order.
func (tg *TextGrid) TierNames() []string {
	names := make([]string, len(tg.Tiers))
	for i, t := range tg.Tiers {
		names[i] = t.Name
	}
	return names
}

// RemoveTier deletes the first tier named name and reports whether one
// was found.
func (tg *TextGrid) RemoveTier(name string) bool {
	for i, t := range tg.Tiers {
		if t.Name == name {
			tg.Tiers = append(tg.Tiers[:i], tg.Tiers[i+1:]...)
			return true
		}
	}
	return false
}

// RenameTier renames the first tier named from.
func (tg *TextGrid) RenameTier(from, to string) error {
	t := tg.Tier(from)
	if t == nil {
		return fmt.Errorf("textgrid: no tier %q", from)
	}
	t.Name = to
	return nil
}

// Marks returns the labels of the tier's intervals, or of its points for a
// text tier, in time order.
func (t *Tier) Marks() []string {
	if t.Class == TextTier {
		out := make([]string, len(t.Points))
		for i, p := range t.Points {
			out[i] = p.Mark
		}
		return out
	}
	out := make([]string, len(t.Intervals))
	for i, iv := range t.Intervals {
		out[i] = iv.Text
	}
	return out
}
