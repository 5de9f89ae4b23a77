// internal/defs/loader.go
package defs

import (
	_ "embed"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/default.yaml
var defaultCatalog []byte

// DefaultBuffCost is the diamond price of a buff level without an override.
const DefaultBuffCost = 20

// catalogFile is the on-disk shape of a catalog. Lists are indexed into maps by Library.
type catalogFile struct {
	Enemies     []EnemyDefinition            `yaml:"enemies"`
	Modifiers   []WaveModifierDefinition     `yaml:"modifiers"`
	Weapons     []WeaponDefinition           `yaml:"weapons"`
	Upgrades    map[WeaponKind][]UpgradeTier `yaml:"upgrades"`
	Waves       []WaveManifest               `yaml:"waves"`
	Chests      []LootEntry                  `yaml:"chests"`
	BuffCosts   map[BuffKind]int             `yaml:"buff_costs"`
	VampireHeal string                       `yaml:"vampire_heal"`
}

// Library is the immutable catalog shared by a game session.
type Library struct {
	Enemies     map[string]EnemyDefinition
	Modifiers   []WaveModifierDefinition
	Weapons     map[WeaponKind]WeaponDefinition
	Upgrades    map[WeaponKind][]UpgradeTier
	Waves       []WaveManifest
	Chests      []LootEntry
	BuffCosts   map[BuffKind]int
	VampireHeal string // выражение expr, переменная окружения: level
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Library, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}

	lib := &Library{
		Enemies:     make(map[string]EnemyDefinition, len(file.Enemies)),
		Weapons:     make(map[WeaponKind]WeaponDefinition, len(file.Weapons)),
		Upgrades:    file.Upgrades,
		Waves:       file.Waves,
		Chests:      file.Chests,
		BuffCosts:   file.BuffCosts,
		VampireHeal: file.VampireHeal,
	}
	for _, def := range file.Enemies {
		if def.Scale == 0 {
			def.Scale = 1
		}
		lib.Enemies[def.ID] = def
	}
	for _, def := range file.Weapons {
		lib.Weapons[def.Kind] = def
	}
	for _, mod := range file.Modifiers {
		mod.normalize()
		lib.Modifiers = append(lib.Modifiers, mod)
	}
	if lib.Upgrades == nil {
		lib.Upgrades = make(map[WeaponKind][]UpgradeTier)
	}
	for kind, tiers := range lib.Upgrades {
		for i := range tiers {
			if tiers[i].DamageMultiplier == 0 {
				tiers[i].DamageMultiplier = 1
			}
			if tiers[i].CooldownMultiplier == 0 {
				tiers[i].CooldownMultiplier = 1
			}
		}
		lib.Upgrades[kind] = tiers
	}
	if lib.BuffCosts == nil {
		lib.BuffCosts = make(map[BuffKind]int)
	}
	if lib.VampireHeal == "" {
		lib.VampireHeal = "level"
	}

	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return lib, nil
}

// Load reads the catalog file at path.
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	lib, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	log.Printf("Loaded catalog %s: %d enemies, %d modifiers, %d waves", path, len(lib.Enemies), len(lib.Modifiers), len(lib.Waves))
	return lib, nil
}

// Default returns the catalog embedded into the binary.
func Default() (*Library, error) {
	lib, err := Parse(defaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return lib, nil
}

// BuffCost returns the diamond price of one level of kind.
func (l *Library) BuffCost(kind BuffKind) int {
	if cost, ok := l.BuffCosts[kind]; ok {
		return cost
	}
	return DefaultBuffCost
}

// Enemy looks up an enemy definition by ID.
func (l *Library) Enemy(id string) (EnemyDefinition, bool) {
	def, ok := l.Enemies[id]
	return def, ok
}
