package component

// GameMode — глобальный режим игры.
type GameMode int

const (
	ModeActive GameMode = iota
	ModeShop
	ModeMainMenu // пауза / подтверждение выхода
	ModeEnd
)

func (m GameMode) String() string {
	switch m {
	case ModeActive:
		return "Active"
	case ModeShop:
		return "Shop"
	case ModeMainMenu:
		return "MainMenu"
	case ModeEnd:
		return "End"
	}
	return "Unknown"
}

// WavePhase — стадия текущей волны в оркестраторе.
type WavePhase int

const (
	PhaseCountdown WavePhase = iota
	PhaseSpawning
	PhaseDraining
	PhaseCleared
	PhaseRunComplete
)

// WaveProgress — то, что хост показывает игроку о текущей волне.
type WaveProgress struct {
	Number       int // с единицы
	Total        int
	Phase        WavePhase
	Spawned      int
	ToSpawn      int
	Alive        int
	Countdown    int // целых секунд до старта, 0 если отсчет не идет
	Announcement string
}
