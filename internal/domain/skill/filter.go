package skill

// FilterByCategory keeps the skills whose category equals c exactly, in input
// order. CategoryAll returns a copy of the whole list.
func FilterByCategory(skills []Skill, c Category) []Skill {
	out := make([]Skill, 0, len(skills))
	if c == CategoryAll {
		return append(out, skills...)
	}
	for _, s := range skills {
		if s.Category == c {
			out = append(out, s)
		}
	}
	return out
}

// LevelToPercentage maps a proficiency label to its display percentage. It is
// case-insensitive and never fails.
func LevelToPercentage(level string) int {
	return Level(level).Percentage()
}
