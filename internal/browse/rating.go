package browse

// Band buckets a vote average for color-coded display. Shared by every
// frontend so the thresholds cannot drift apart.
type Band int

const (
	BandNone Band = iota
	BandPoor
	BandMedium
	BandGood
)

// RatingBand classifies a 0-10 vote average. TMDb reports 0 for unrated
// titles, so non-positive values count as absent.
func RatingBand(v float64) Band {
	switch {
	case v <= 0:
		return BandNone
	case v >= 7.5:
		return BandGood
	case v >= 6.0:
		return BandMedium
	default:
		return BandPoor
	}
}
