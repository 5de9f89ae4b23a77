// internal/system/modifier.go
package system

import (
	"log"

	"go-wave-arena/internal/config"
	"go-wave-arena/internal/defs"
	"go-wave-arena/internal/utils"
)

// ModifierSystem выбирает модификаторы волны и держит их активный набор.
// Набор живет ровно одну волну.
type ModifierSystem struct {
	catalog []defs.WaveModifierDefinition
	rng     utils.RandomSource
	active  defs.ActiveModifierSet
}

func NewModifierSystem(catalog []defs.WaveModifierDefinition, rng utils.RandomSource) *ModifierSystem {
	return &ModifierSystem{
		catalog: catalog,
		rng:     rng,
		active:  defs.IdentityModifierSet(),
	}
}

// Roll выбирает 1..2 разных модификатора без повторов и комбинирует их.
func (s *ModifierSystem) Roll() defs.ActiveModifierSet {
	if len(s.catalog) == 0 {
		s.active = defs.IdentityModifierSet()
		return s.active
	}

	k := s.rng.Intn(config.MaxModifiersPerWave) + 1
	if k > len(s.catalog) {
		k = len(s.catalog)
	}

	// Частичная перетасовка Фишера-Йетса по копии индексов
	idx := make([]int, len(s.catalog))
	for i := range idx {
		idx[i] = i
	}
	chosen := make([]defs.WaveModifierDefinition, 0, k)
	for i := 0; i < k; i++ {
		j := i + s.rng.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		chosen = append(chosen, s.catalog[idx[i]])
	}

	s.active = defs.CombineModifiers(chosen...)
	for _, m := range chosen {
		log.Printf("wave modifier rolled: %s", m.Type)
	}
	return s.active
}

// Clear сбрасывает набор к единичным множителям.
func (s *ModifierSystem) Clear() {
	s.active = defs.IdentityModifierSet()
}

// Active возвращает текущий набор (копию).
func (s *ModifierSystem) Active() defs.ActiveModifierSet {
	return s.active
}

func (s *ModifierSystem) Announcement() string {
	return s.active.Announcement()
}
