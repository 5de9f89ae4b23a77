// internal/defs/loot_tables.go
package defs

// LootEntry представляет одну запись в таблице выпадения сундуков.
// Weight - ее "вес" или относительный шанс выпадения.
type LootEntry struct {
	Kind   ChestKind `yaml:"kind"`
	Weight int       `yaml:"weight"`
}
