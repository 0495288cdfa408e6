package model

// CategoryScore is one of the three fixed risk levels used for every risk
// dimension: 25 (low), 75 (medium), 100 (high).
type CategoryScore int

const (
	RiskLow    CategoryScore = 25
	RiskMedium CategoryScore = 75
	RiskHigh   CategoryScore = 100
)

// Label returns the human-readable name for a score.
func (s CategoryScore) Label() string {
	switch s {
	case RiskLow:
		return "low"
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	}
	return "unknown"
}

// RiskAssessment holds the categorical scores derived from one simulation.
// Overall is always max(Cash, Budget), so it is never below either component.
type RiskAssessment struct {
	Cash    CategoryScore
	Budget  CategoryScore
	Overall CategoryScore
}
