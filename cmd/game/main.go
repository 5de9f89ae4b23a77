// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-wave-arena/internal/config"
	"go-wave-arena/internal/defs"
	"go-wave-arena/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"
)

const startFromGame = true // true — начинать с боя, false — с титульного экрана

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.Done() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "seed генератора (0 — от времени)")
	defsPath := flag.String("defs", "", "путь к YAML-каталогу (пусто — встроенный)")
	pprofAddr := flag.String("pprof", "", "адрес pprof, например localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	var (
		lib *defs.Library
		err error
	)
	if *defsPath != "" {
		lib, err = defs.Load(*defsPath)
	} else {
		lib, err = defs.Default()
	}
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	face := basicfont.Face7x13
	sm := state.NewStateMachine()
	if startFromGame {
		gs, err := state.NewGameState(sm, lib, *seed, face)
		if err != nil {
			log.Fatal(err)
		}
		sm.SetState(gs)
	} else {
		sm.SetState(state.NewMenuState(sm, lib, *seed, face, "Survive every wave"))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Wave Arena")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
