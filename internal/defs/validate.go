package defs

import (
	"fmt"
	"strings"
)

// Validate checks semantic constraints of the catalog and reports all of them at once.
func (l *Library) Validate() error {
	var errs []string

	for id, e := range l.Enemies {
		if id == "" {
			errs = append(errs, "enemies: id is required")
		}
		if e.Health <= 0 {
			errs = append(errs, fmt.Sprintf("enemies.%s.health must be > 0", id))
		}
		if e.Speed < 0 {
			errs = append(errs, fmt.Sprintf("enemies.%s.speed must be >= 0", id))
		}
		if e.MinGold < 0 || e.MaxGold < e.MinGold {
			errs = append(errs, fmt.Sprintf("enemies.%s: gold range must satisfy 0 <= min_gold <= max_gold", id))
		}
		if e.ChestChance < 0 || e.ChestChance > 1 {
			errs = append(errs, fmt.Sprintf("enemies.%s.chest_chance must be in [0,1]", id))
		}
		switch e.Behavior {
		case "", BehaviorMelee, BehaviorDodger:
		case BehaviorRanged:
			if e.Ranged == nil {
				errs = append(errs, fmt.Sprintf("enemies.%s.ranged is required for behavior=ranged", id))
			} else if e.Ranged.RetreatDistance > e.Ranged.PreferredDistance {
				errs = append(errs, fmt.Sprintf("enemies.%s.ranged: retreat_distance must be <= preferred_distance", id))
			}
		case BehaviorBuffer:
			if e.Buffer == nil {
				errs = append(errs, fmt.Sprintf("enemies.%s.buffer is required for behavior=buffer", id))
			}
		case BehaviorChampion:
			if e.Champion == nil {
				errs = append(errs, fmt.Sprintf("enemies.%s.champion is required for behavior=champion", id))
			} else {
				if _, ok := l.Enemies[e.Champion.ChildID]; !ok {
					errs = append(errs, fmt.Sprintf("enemies.%s.champion.child_id %q is unknown", id, e.Champion.ChildID))
				}
				if e.Champion.MinChildren < 0 || e.Champion.MaxChildren < e.Champion.MinChildren {
					errs = append(errs, fmt.Sprintf("enemies.%s.champion: children range is invalid", id))
				}
			}
		default:
			errs = append(errs, fmt.Sprintf("enemies.%s.behavior %q is unknown", id, e.Behavior))
		}
	}

	for i, m := range l.Modifiers {
		if m.Type == "" {
			errs = append(errs, fmt.Sprintf("modifiers[%d].type is required", i))
		}
		for name, v := range map[string]float64{
			"scale": m.ScaleMultiplier, "count": m.CountMultiplier, "health": m.HealthMultiplier,
			"speed": m.SpeedMultiplier, "gold": m.GoldMultiplier, "knockback": m.KnockbackMultiplier,
		} {
			if v < 0 {
				errs = append(errs, fmt.Sprintf("modifiers[%d].%s must be > 0", i, name))
			}
		}
		if m.Transparency < 0 || m.Transparency > 1 {
			errs = append(errs, fmt.Sprintf("modifiers[%d].transparency must be in [0,1]", i))
		}
	}

	for kind, w := range l.Weapons {
		if w.Cost < 0 {
			errs = append(errs, fmt.Sprintf("weapons.%s.cost must be >= 0", kind))
		}
		if w.Cooldown <= 0 {
			errs = append(errs, fmt.Sprintf("weapons.%s.cooldown must be > 0", kind))
		}
		switch w.Style {
		case AttackMelee, AttackHoming, AttackSpread, AttackExplosive:
		default:
			errs = append(errs, fmt.Sprintf("weapons.%s.style %q is unknown", kind, w.Style))
		}
	}

	for kind, tiers := range l.Upgrades {
		for i, t := range tiers {
			if t.DiamondCost < 0 {
				errs = append(errs, fmt.Sprintf("upgrades.%s[%d].diamond_cost must be >= 0", kind, i))
			}
			if t.DamageMultiplier < 0 || t.CooldownMultiplier < 0 {
				errs = append(errs, fmt.Sprintf("upgrades.%s[%d]: multipliers must be > 0", kind, i))
			}
		}
	}

	for i, w := range l.Waves {
		for j, g := range w.Groups {
			if _, ok := l.Enemies[g.EnemyID]; !ok {
				errs = append(errs, fmt.Sprintf("waves[%d].groups[%d].enemy %q is unknown", i, j, g.EnemyID))
			}
			if g.Count < 0 {
				errs = append(errs, fmt.Sprintf("waves[%d].groups[%d].count must be >= 0", i, j))
			}
		}
	}

	for i, c := range l.Chests {
		if c.Weight < 0 {
			errs = append(errs, fmt.Sprintf("chests[%d].weight must be >= 0", i))
		}
	}

	for kind, cost := range l.BuffCosts {
		if cost < 0 {
			errs = append(errs, fmt.Sprintf("buff_costs.%s must be >= 0", kind))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
