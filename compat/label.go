// SPDX-License-Identifier: MIT

package compat

// Band lower bounds.
const (
	ExcellentFrom   = 85.0
	GoodFrom        = 70.0
	FairFrom        = 55.0
	ChallengingFrom = 40.0
)

// BandOf buckets a final score.
func BandOf(final float64) Band {
	switch {
	case final >= ExcellentFrom:
		return Excellent
	case final >= GoodFrom:
		return Good
	case final >= FairFrom:
		return Fair
	case final >= ChallengingFrom:
		return Challenging
	default:
		return Difficult
	}
}

// labelPrecedence lists the distinguished labels with their triggering
// knockout, highest precedence first.
var labelPrecedence = [...]struct {
	label Label
	id    KnockoutID
}{
	{LabelHeavenEarthClash, KnockoutHeavenOvercomeEarthClash},
	{LabelMirrorImage, KnockoutIdenticalChart},
	{LabelHeavenEarthUnion, KnockoutDoubleUnion},
}

// labelOf picks the distinguished label for a set of fired knockouts.
func labelOf(ks []Knockout) Label {
	for _, p := range labelPrecedence {
		for _, k := range ks {
			if k.ID == p.id {
				return p.label
			}
		}
	}
	return LabelNone
}
