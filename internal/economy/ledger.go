// internal/economy/ledger.go
package economy

import "go-wave-arena/internal/config"

// Currency — валюта, которой оперирует игрок.
type Currency int

const (
	Gold Currency = iota
	Diamonds
)

func (c Currency) String() string {
	switch c {
	case Gold:
		return "gold"
	case Diamonds:
		return "diamonds"
	}
	return "unknown"
}

// Spender — единственная точка списания, через которую проходят все покупки.
type Spender interface {
	CanSpend(c Currency, amount int) bool
	Spend(c Currency, amount int) bool
}

// Ledger хранит два счётчика: золото и алмазы.
// Баланс никогда не уходит в минус: списание либо проходит целиком, либо не проходит.
type Ledger struct {
	gold     int
	diamonds int
}

// NewLedger создает пустой кошелек.
func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) counter(c Currency) *int {
	if c == Diamonds {
		return &l.diamonds
	}
	return &l.gold
}

// CanSpend сообщает, хватает ли средств.
func (l *Ledger) CanSpend(c Currency, amount int) bool {
	if amount < 0 {
		return false
	}
	return amount <= *l.counter(c)
}

// Spend списывает сумму, только если ее хватает. Иначе ничего не меняет.
func (l *Ledger) Spend(c Currency, amount int) bool {
	if !l.CanSpend(c, amount) {
		return false
	}
	*l.counter(c) -= amount
	return true
}

// Credit зачисляет награду или пассивный доход. Отрицательные суммы игнорируются.
func (l *Ledger) Credit(c Currency, amount int) {
	if amount <= 0 {
		return
	}
	*l.counter(c) += amount
}

// Gold и Diamonds — текущие балансы.
func (l *Ledger) Gold() int     { return l.gold }
func (l *Ledger) Diamonds() int { return l.diamonds }

// Convert обменивает золото на один алмаз по курсу config.ConversionRate.
func (l *Ledger) Convert() bool {
	if !l.Spend(Gold, config.ConversionRate) {
		return false
	}
	l.Credit(Diamonds, 1)
	return true
}
