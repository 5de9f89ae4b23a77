// internal/system/mine.go
package system

import (
	"fmt"
	"log"

	"go-wave-arena/internal/config"
	"go-wave-arena/internal/economy"
	"go-wave-arena/internal/scheduler"
	"go-wave-arena/internal/session"
)

const mineGroup = "mines"

// MineSystem manages diamond mines bought with gold.
// Each mine yields diamonds on build and then on a fixed interval of game time,
// so nothing is produced while the shop or menu is open.
type MineSystem struct {
	session   *session.GameSession
	scheduler *scheduler.Scheduler

	count       int
	yield       int
	cost        int
	upgradeCost int
}

// NewMineSystem creates a MineSystem with starting prices.
func NewMineSystem(sess *session.GameSession, sched *scheduler.Scheduler) *MineSystem {
	return &MineSystem{
		session:     sess,
		scheduler:   sched,
		yield:       config.MineBaseYield,
		cost:        config.MineInitialCost,
		upgradeCost: config.MineUpgradeInitialCost,
	}
}

// Buy builds a mine. The next one costs cost*3+1.
func (s *MineSystem) Buy() bool {
	if !s.session.Ledger.Spend(economy.Gold, s.cost) {
		return false
	}
	s.count++
	s.cost = s.cost*3 + 1

	s.produce()
	s.scheduler.Every(mineGroup, config.MineYieldInterval, s.produce)
	log.Printf("[%s] mine #%d built, next costs %d", s.session.ShortID(), s.count, s.cost)
	return true
}

// Upgrade raises the yield of every mine by one. The next upgrade costs x4.
func (s *MineSystem) Upgrade() bool {
	if s.count == 0 {
		return false
	}
	if !s.session.Ledger.Spend(economy.Gold, s.upgradeCost) {
		return false
	}
	s.yield++
	s.upgradeCost *= 4
	return true
}

// produce credits one mine's yield.
func (s *MineSystem) produce() {
	s.session.Ledger.Credit(economy.Diamonds, s.yield)
}

// Stop cancels production (end of the run).
func (s *MineSystem) Stop() {
	s.scheduler.CancelGroup(mineGroup)
}

func (s *MineSystem) Count() int       { return s.count }
func (s *MineSystem) Yield() int       { return s.yield }
func (s *MineSystem) Cost() int        { return s.cost }
func (s *MineSystem) UpgradeCost() int { return s.upgradeCost }

// Label is the shop line for the HUD.
func (s *MineSystem) Label() string {
	return fmt.Sprintf("Mines: %d (+%d/%.0fs)  buy %dg  upgrade %dg",
		s.count, s.yield, config.MineYieldInterval, s.cost, s.upgradeCost)
}
