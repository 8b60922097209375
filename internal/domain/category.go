package domain

// Category is the four-tier classification shared by recovery and readiness.
// @Description Score category.
type Category string

const (
	CategoryOptimal Category = "optimal"
	CategoryGood    Category = "good"
	CategoryFair    Category = "fair"
	CategoryPoor    Category = "poor"
)

// Label is the display name of the category.
func (c Category) Label() string {
	switch c {
	case CategoryOptimal:
		return "Optimal"
	case CategoryGood:
		return "Good"
	case CategoryFair:
		return "Fair"
	default:
		return "Poor"
	}
}

// RecoveryAdvice is the guidance shown next to a recovery score.
func (c Category) RecoveryAdvice() string {
	switch c {
	case CategoryOptimal:
		return "Excellent recovery! Your body is primed for high-intensity training."
	case CategoryGood:
		return "Good recovery. You can handle moderate to challenging workouts today."
	case CategoryFair:
		return "Fair recovery. Consider lighter activities or active recovery sessions."
	default:
		return "Low recovery detected. Prioritize rest, quality sleep, and stress management."
	}
}

// ReadinessAdvice is the guidance shown next to a readiness score.
func (c Category) ReadinessAdvice() string {
	switch c {
	case CategoryOptimal:
		return "You're ready to perform at your best today. Great time for important tasks."
	case CategoryGood:
		return "You're in good shape today. Maintain your routine and stay consistent."
	case CategoryFair:
		return "You're okay but not optimal. Don't push too hard and listen to your body."
	default:
		return "Your body needs recovery. Take it easy and focus on restoration."
	}
}
