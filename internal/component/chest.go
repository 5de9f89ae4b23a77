package component

import "go-wave-arena/internal/defs"

// Chest — сундук с временным баффом, лежащий на арене.
type Chest struct {
	Kind      defs.ChestKind
	ExpiresAt float64
}
