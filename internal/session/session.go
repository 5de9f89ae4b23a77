// internal/session/session.go
package session

import (
	"fmt"

	"go-wave-arena/internal/buff"
	"go-wave-arena/internal/defs"
	"go-wave-arena/internal/economy"
	"go-wave-arena/internal/event"
	"go-wave-arena/internal/utils"

	"github.com/google/uuid"
)

// GameSession — контекст одной игры: кошелек, баффы, генератор случайных чисел
// и каталог. Передается во все системы явно, глобального состояния нет.
type GameSession struct {
	ID      uuid.UUID
	Library *defs.Library
	Ledger  *economy.Ledger
	Buffs   *buff.Registry
	Rng     *utils.PRNGService
	Events  *event.Dispatcher
}

// New создает сессию. seed == 0 означает сид от текущего времени.
func New(lib *defs.Library, seed int64) (*GameSession, error) {
	if lib == nil {
		return nil, fmt.Errorf("session: library is required")
	}
	buffs, err := buff.NewRegistry(lib.BuffCosts, lib.VampireHeal)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	return &GameSession{
		ID:      uuid.New(),
		Library: lib,
		Ledger:  economy.NewLedger(),
		Buffs:   buffs,
		Rng:     utils.NewPRNGService(seed),
		Events:  event.NewDispatcher(),
	}, nil
}

// ShortID — первые символы идентификатора для логов.
func (s *GameSession) ShortID() string {
	return s.ID.String()[:8]
}
