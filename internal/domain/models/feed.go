package models

// FeedIngredient is one row of the feed-composition table: crude protein
// percentage and metabolizable energy per kg of dry matter.
type FeedIngredient struct {
	Name        string  `json:"name"`
	CPPercent   float64 `json:"cp_percent"`
	MEMcalPerKg float64 `json:"me_mcal_per_kg"`
}

// FeedSelection maps ingredient names to daily quantities fed in kg on a
// dry-matter basis. Zero entries are ignored by the evaluation.
type FeedSelection map[string]float64

// NonZero returns a copy of the selection with zero and negative quantities
// removed.
func (s FeedSelection) NonZero() FeedSelection {
	out := make(FeedSelection, len(s))
	for name, kg := range s {
		if kg > 0 {
			out[name] = kg
		}
	}
	return out
}
