// internal/buff/registry.go
package buff

import (
	"fmt"
	"log"

	"go-wave-arena/internal/config"
	"go-wave-arena/internal/defs"
	"go-wave-arena/internal/economy"
	"go-wave-arena/internal/utils"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Damageable — цель ответного урона (шипы, огненное касание).
type Damageable interface {
	TakeDamage(amount int)
}

// HealEnv — окружение формулы вампиризма.
type HealEnv struct {
	Level     int `expr:"level"`
	MaxHealth int `expr:"max_health"`
}

// Registry хранит уровни постоянных баффов одной игровой сессии.
// Уровни только растут; исключение - ExtraLife, которая тратится при спасении от смерти.
type Registry struct {
	levels map[defs.BuffKind]int
	costs  map[defs.BuffKind]int

	vampireExpr    string
	vampireProgram *vm.Program
}

// NewRegistry компилирует формулу вампиризма и создает пустой реестр.
func NewRegistry(costs map[defs.BuffKind]int, vampireExpr string) (*Registry, error) {
	if vampireExpr == "" {
		vampireExpr = "level"
	}
	program, err := expr.Compile(vampireExpr, expr.Env(HealEnv{}))
	if err != nil {
		return nil, fmt.Errorf("failed to compile vampire heal expression %q: %w", vampireExpr, err)
	}

	r := &Registry{
		levels:         make(map[defs.BuffKind]int),
		costs:          make(map[defs.BuffKind]int, len(costs)),
		vampireExpr:    vampireExpr,
		vampireProgram: program,
	}
	for k, v := range costs {
		r.costs[k] = v
	}
	return r, nil
}

// Level возвращает текущий уровень баффа.
func (r *Registry) Level(kind defs.BuffKind) int {
	return r.levels[kind]
}

// Cost возвращает цену следующего уровня в алмазах.
func (r *Registry) Cost(kind defs.BuffKind) int {
	if c, ok := r.costs[kind]; ok {
		return c
	}
	return defs.DefaultBuffCost
}

// Purchase покупает один уровень за алмазы. Без денег ничего не меняется.
func (r *Registry) Purchase(wallet economy.Spender, kind defs.BuffKind) bool {
	if !wallet.Spend(economy.Diamonds, r.Cost(kind)) {
		return false
	}
	r.levels[kind]++
	return true
}

// ApplyGiantSlayer добавляет +50% за уровень против врагов крупнее порога.
func (r *Registry) ApplyGiantSlayer(baseDamage int, targetScale float64) int {
	level := r.levels[defs.BuffGiantSlayer]
	if level <= 0 || targetScale <= config.GiantSlayerScaleThreshold {
		return baseDamage
	}
	return baseDamage + int(float64(baseDamage)*0.5*float64(level))
}

// ApplyMoneyIsStrength добавляет level*gold/100 к урону. Считается на каждый удар.
func (r *Registry) ApplyMoneyIsStrength(baseDamage, currentGold int) int {
	level := r.levels[defs.BuffMoneyIsStrength]
	if level <= 0 || currentGold <= 0 {
		return baseDamage
	}
	return baseDamage + level*currentGold/100
}

// ResolveImpact — полный конвейер урона в момент попадания:
// база (с апгрейдом) -> MoneyIsStrength -> GiantSlayer.
func (r *Registry) ResolveImpact(effectiveDamage, currentGold int, targetScale float64) int {
	return r.ApplyGiantSlayer(r.ApplyMoneyIsStrength(effectiveDamage, currentGold), targetScale)
}

// ApplyThornsOnEnemyHit возвращает врагу урон, равный уровню шипов.
func (r *Registry) ApplyThornsOnEnemyHit(attacker Damageable) {
	level := r.levels[defs.BuffThorns]
	if level <= 0 || attacker == nil {
		return
	}
	attacker.TakeDamage(level)
}

// ApplyFireTouch обжигает врага, который коснулся игрока.
func (r *Registry) ApplyFireTouch(enemy Damageable) {
	level := r.levels[defs.BuffFireTouch]
	if level <= 0 || enemy == nil {
		return
	}
	enemy.TakeDamage(level)
}

// RollChainReaction срабатывает с вероятностью level*10%.
func (r *Registry) RollChainReaction(rng utils.RandomSource) bool {
	return ChainReactionTriggers(rng, r.levels[defs.BuffChainReaction])
}

// ChainReactionTriggers: 0 - никогда, 10 и выше - всегда.
func ChainReactionTriggers(rng utils.RandomSource, level int) bool {
	if level <= 0 {
		return false
	}
	if level >= 10 {
		return true
	}
	return rng.Intn(100) < level*10
}

// ConsumeExtraLife тратит одну запасную жизнь, если она есть.
func (r *Registry) ConsumeExtraLife() bool {
	if r.levels[defs.BuffExtraLife] <= 0 {
		return false
	}
	r.levels[defs.BuffExtraLife]--
	return true
}

// VampireHeal — сколько здоровья игрок получает за убийство.
func (r *Registry) VampireHeal(maxHealth int) int {
	level := r.levels[defs.BuffVampire]
	if level <= 0 {
		return 0
	}
	out, err := expr.Run(r.vampireProgram, HealEnv{Level: level, MaxHealth: maxHealth})
	if err != nil {
		log.Printf("vampire heal %q failed: %v", r.vampireExpr, err)
		return 0
	}
	var heal int
	switch v := out.(type) {
	case int:
		heal = v
	case int64:
		heal = int(v)
	case float64:
		heal = int(v)
	default:
		log.Printf("vampire heal %q returned %T, expected a number", r.vampireExpr, out)
		return 0
	}
	if heal < 0 {
		return 0
	}
	return heal
}

// Snapshot возвращает копию уровней для HUD.
func (r *Registry) Snapshot() map[defs.BuffKind]int {
	out := make(map[defs.BuffKind]int, len(r.levels))
	for k, v := range r.levels {
		out[k] = v
	}
	return out
}

// SetLevel выставляет уровень напрямую. Используется тестами и отладочным стартом.
func (r *Registry) SetLevel(kind defs.BuffKind, level int) {
	if level < 0 {
		level = 0
	}
	r.levels[kind] = level
}
