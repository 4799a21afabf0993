package domain

import "sort"

// StudioTier - нижний уровень "0 / студия", взаимоисключающий с числовыми
const StudioTier = 0

// MaxTier - верхний уровень каталога ("4+")
const MaxTier = 4

// TierSelection моделирует выбор порогов "минимум N" для спален и ванных.
// Выбор уровня k замыкается вверх: активны все уровни >= k, эффективное
// значение фильтра - минимальный выбранный уровень. Уровень StudioTier
// взаимоисключающ с числовыми уровнями.
type TierSelection struct {
	studio bool
	tiers  map[int]bool
}

// NewTierSelection - пустой выбор (фильтр не наложен)
func NewTierSelection() TierSelection {
	return TierSelection{}
}

// Toggle возвращает новый выбор с переключённым уровнем. Выбор StudioTier
// сбрасывает числовые уровни; выбор числового уровня сбрасывает StudioTier.
func (s TierSelection) Toggle(tier int) TierSelection {
	if tier == StudioTier {
		if s.studio {
			return TierSelection{}
		}
		return TierSelection{studio: true}
	}
	if tier < StudioTier || tier > MaxTier {
		return s.clone()
	}

	next := TierSelection{tiers: make(map[int]bool, len(s.tiers)+1)}
	for t := range s.tiers {
		next.tiers[t] = true
	}
	if next.tiers[tier] {
		delete(next.tiers, tier)
	} else {
		next.tiers[tier] = true
	}
	if len(next.tiers) == 0 {
		next.tiers = nil
	}
	return next
}

func (s TierSelection) clone() TierSelection {
	if s.tiers == nil {
		return TierSelection{studio: s.studio}
	}
	tiers := make(map[int]bool, len(s.tiers))
	for t := range s.tiers {
		tiers[t] = true
	}
	return TierSelection{studio: s.studio, tiers: tiers}
}

// IsStudio сообщает, выбран ли уровень "студия"
func (s TierSelection) IsStudio() bool {
	return s.studio
}

// Empty сообщает, что выбор пуст
func (s TierSelection) Empty() bool {
	return !s.studio && len(s.tiers) == 0
}

// Min - эффективное значение "минимум N": минимальный выбранный числовой
// уровень. Для пустого выбора и для студии возвращает nil.
func (s TierSelection) Min() *int {
	if s.studio || len(s.tiers) == 0 {
		return nil
	}
	min := MaxTier + 1
	for t := range s.tiers {
		if t < min {
			min = t
		}
	}
	v := min
	return &v
}

// Selected - выбранные уровни в возрастающем порядке (для URL)
func (s TierSelection) Selected() []int {
	if s.studio {
		return []int{StudioTier}
	}
	out := make([]int, 0, len(s.tiers))
	for t := range s.tiers {
		out = append(out, t)
	}
	sort.Ints(out)
	return out
}

// TierSelectionFrom восстанавливает выбор из списка уровней (параметр URL).
// Присутствие StudioTier перекрывает числовые уровни, как и при кликах.
func TierSelectionFrom(tiers []int) TierSelection {
	s := NewTierSelection()
	for _, t := range tiers {
		if t == StudioTier {
			return TierSelection{studio: true}
		}
	}
	for _, t := range tiers {
		if t > StudioTier && t <= MaxTier {
			if s.tiers == nil {
				s.tiers = make(map[int]bool)
			}
			s.tiers[t] = true
		}
	}
	return s
}
