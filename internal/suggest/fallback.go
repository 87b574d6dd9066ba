// ABOUTME: Fixed placeholder suggestion catalog for offline use.
// ABOUTME: Shown instead of an empty error state when the service fails.
package suggest

// Fallback returns a copy of the built-in suggestion catalog. Surfaces
// show it when the remote service is unavailable, so the suggestions
// screen never renders empty for a failure in a non-critical feature.
func Fallback() []Suggestion {
	out := make([]Suggestion, len(fallbackCatalog))
	copy(out, fallbackCatalog)
	return out
}

var fallbackCatalog = []Suggestion{
	{
		ID:          -1,
		Name:        "Push-up",
		Description: "Lower your chest to the floor and press back up, keeping a straight line from shoulders to heels.",
		Category:    "Chest",
		Muscles:     []string{"Pectoralis major", "Triceps"},
		Difficulty:  Beginner,
	},
	{
		ID:          -2,
		Name:        "Bodyweight Squat",
		Description: "Sit back and down until your thighs are parallel to the floor, then drive through your heels to stand.",
		Category:    "Legs",
		Muscles:     []string{"Quadriceps", "Glutes"},
		Difficulty:  Beginner,
	},
	{
		ID:          -3,
		Name:        "Plank",
		Description: "Hold a straight line from head to heels on your forearms, bracing your core.",
		Category:    "Core",
		Muscles:     []string{"Rectus abdominis"},
		Difficulty:  Beginner,
	},
	{
		ID:          -4,
		Name:        "Lunge",
		Description: "Step forward and lower your back knee toward the floor, then push back to standing.",
		Category:    "Legs",
		Muscles:     []string{"Quadriceps", "Glutes", "Hamstrings"},
		Difficulty:  Intermediate,
	},
	{
		ID:          -5,
		Name:        "Pull-up",
		Description: "Hang from a bar with an overhand grip and pull your chin above it.",
		Category:    "Back",
		Muscles:     []string{"Latissimus dorsi", "Biceps"},
		Equipment:   []string{"Pull-up bar"},
		Difficulty:  Advanced,
	},
	{
		ID:          -6,
		Name:        "Burpee",
		Description: "Drop into a squat, kick back to a push-up, return, and jump up.",
		Category:    "Full body",
		Muscles:     []string{"Quadriceps", "Pectoralis major", "Core"},
		Difficulty:  Advanced,
	},
}
