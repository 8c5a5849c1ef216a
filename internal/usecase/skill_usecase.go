package usecase

import (
	"context"

	"portfolio-site/internal/domain/profile"
	"portfolio-site/internal/domain/skill"
)

type SkillItem struct {
	Name         string
	Category     skill.Category
	CategoryIcon string
	Level        skill.Level
	Tier         string
	Percentage   int
	Icon         string
}

type CategoryItem struct {
	Category skill.Category
	Icon     string
	Active   bool
}

type SkillUsecase interface {
	ListSkills(ctx context.Context, category skill.Category) ([]SkillItem, error)
	ListCategories(selected skill.Category) []CategoryItem
}

type Skill struct {
	store *profile.Store
}

func NewSkillUsecase(store *profile.Store) *Skill {
	return &Skill{store: store}
}

// ListSkills filters by exact category; an empty category means All.
func (u *Skill) ListSkills(ctx context.Context, category skill.Category) ([]SkillItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if category == "" {
		category = skill.CategoryAll
	}

	items := u.store.SkillsIn(category)
	out := make([]SkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, SkillItem{
			Name:         it.Name,
			Category:     it.Category,
			CategoryIcon: it.Category.IconName(),
			Level:        it.Level,
			Tier:         it.Level.Tier(),
			Percentage:   it.Level.Percentage(),
			Icon:         it.Icon,
		})
	}
	return out, nil
}

func (u *Skill) ListCategories(selected skill.Category) []CategoryItem {
	if selected == "" {
		selected = skill.CategoryAll
	}
	cats := skill.Categories()
	out := make([]CategoryItem, 0, len(cats))
	for _, c := range cats {
		item := CategoryItem{Category: c, Active: c == selected}
		if c != skill.CategoryAll {
			item.Icon = c.IconName()
		}
		out = append(out, item)
	}
	return out
}
