package skill

import "strings"

type Skill struct {
	Name     string   `json:"name" yaml:"name" validate:"required"`
	Category Category `json:"category" yaml:"category" validate:"required,skillcategory"`
	Level    Level    `json:"level" yaml:"level"`
	Icon     string   `json:"icon" yaml:"icon"`
}

// Category is the closed set of skill groupings shown in the filter bar.
type Category string

const (
	CategoryAll            Category = "All"
	CategoryFrontend       Category = "Frontend"
	CategoryBackend        Category = "Backend"
	CategoryDatabase       Category = "Database"
	CategoryHardware       Category = "Hardware"
	CategoryTools          Category = "Tools"
	CategoryAnalytics      Category = "Analytics"
	CategoryControlSystems Category = "Control Systems"
	CategoryCloud          Category = "Cloud"
)

var knownCategories = []Category{
	CategoryFrontend,
	CategoryBackend,
	CategoryDatabase,
	CategoryHardware,
	CategoryTools,
	CategoryAnalytics,
	CategoryControlSystems,
	CategoryCloud,
}

// Categories returns the filter bar in display order. Cloud is a known category
// but is not offered as a filter.
func Categories() []Category {
	return []Category{
		CategoryAll,
		CategoryFrontend,
		CategoryBackend,
		CategoryDatabase,
		CategoryHardware,
		CategoryTools,
		CategoryAnalytics,
		CategoryControlSystems,
	}
}

// Known reports whether c is a category a skill may carry. The All sentinel is not one.
func (c Category) Known() bool {
	for _, k := range knownCategories {
		if c == k {
			return true
		}
	}
	return false
}

func (c Category) IconName() string {
	switch Category(strings.ToLower(string(c))) {
	case "frontend":
		return "code"
	case "backend":
		return "settings"
	case "database":
		return "database"
	case "hardware":
		return "wrench"
	case "tools":
		return "zap"
	case "analytics":
		return "book-open"
	case "control systems":
		return "settings"
	case "cloud":
		return "cloud"
	default:
		return "code"
	}
}

// Level is a proficiency label. Values outside the four known labels are kept
// as-is and score with the fallback percentage. Matching ignores case only;
// padded labels are unknown.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
	LevelExpert       Level = "Expert"
)

const fallbackPercentage = 40

func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(s) {
	case "beginner":
		return LevelBeginner, true
	case "intermediate":
		return LevelIntermediate, true
	case "advanced":
		return LevelAdvanced, true
	case "expert":
		return LevelExpert, true
	default:
		return Level(s), false
	}
}

func (l Level) Percentage() int {
	parsed, ok := ParseLevel(string(l))
	if !ok {
		return fallbackPercentage
	}
	switch parsed {
	case LevelExpert:
		return 95
	case LevelAdvanced:
		return 80
	case LevelIntermediate:
		return 65
	case LevelBeginner:
		return fallbackPercentage
	}
	return fallbackPercentage
}

// Tier is the display bucket for a level; unknown labels fall into beginner.
func (l Level) Tier() string {
	parsed, ok := ParseLevel(string(l))
	if !ok {
		return "beginner"
	}
	switch parsed {
	case LevelExpert:
		return "expert"
	case LevelAdvanced:
		return "advanced"
	case LevelIntermediate:
		return "intermediate"
	}
	return "beginner"
}
