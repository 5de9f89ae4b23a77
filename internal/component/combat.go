package component

// Health — компонент здоровья
type Health struct {
	Value int
	Max   int
}

// Alive сообщает, осталось ли здоровье.
func (h *Health) Alive() bool {
	return h.Value > 0
}
