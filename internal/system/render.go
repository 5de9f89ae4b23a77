// internal/system/render.go
package system

import (
	"image/color"
	"sort"

	"go-wave-arena/internal/config"
	"go-wave-arena/internal/entity"
	"go-wave-arena/internal/types"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// WorldToScreen проецирует плоскость XZ на экран сверху. Ось Z смотрит вверх.
func WorldToScreen(p mgl64.Vec3) (float32, float32) {
	x := float64(config.ScreenWidth)/2 + p.X()*config.WorldScale
	y := float64(config.ScreenHeight)/2 - (p.Z()-config.CameraCenterZ)*config.WorldScale
	return float32(x), float32(y)
}

type namedEffect struct {
	name     string
	position mgl64.Vec3
	ttl      float64
}

// RenderSystem рисует сущности отладочными кругами. Заодно служит
// проигрывателем эффектов: показывает имя эффекта там, где он сработал.
type RenderSystem struct {
	ecs     *entity.ECS
	face    font.Face
	effects []namedEffect
}

func NewRenderSystem(ecs *entity.ECS, face font.Face) *RenderSystem {
	return &RenderSystem{ecs: ecs, face: face}
}

// PlayEffect запоминает эффект на короткое время.
func (s *RenderSystem) PlayEffect(name string, position mgl64.Vec3, _ float64) {
	s.effects = append(s.effects, namedEffect{name: name, position: position, ttl: config.FloatingTextDuration})
}

// Update старит подписи эффектов по реальному времени кадра.
func (s *RenderSystem) Update(deltaTime float64) {
	alive := s.effects[:0]
	for _, e := range s.effects {
		e.ttl -= deltaTime
		if e.ttl > 0 {
			alive = append(alive, e)
		}
	}
	s.effects = alive
}

func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(float64(c.A) * alpha)
	return c
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	// Сначала круги взрывов, чтобы не перекрывать врагов
	for id, aoe := range s.ecs.AoeEffects {
		t, ok := s.ecs.Transforms[id]
		r, hasRender := s.ecs.Renderables[id]
		if !ok || !hasRender || aoe.MaxRadius <= 0 {
			continue
		}
		x, y := WorldToScreen(t.Position)
		vector.StrokeCircle(screen, x, y, r.Radius*config.WorldScale, 2, withAlpha(r.Color, r.Alpha), true)
	}

	ids := make([]types.EntityID, 0, len(s.ecs.Renderables))
	for id := range s.ecs.Renderables {
		if _, isAoe := s.ecs.AoeEffects[id]; !isAoe {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		render := s.ecs.Renderables[id]
		t, hasPos := s.ecs.Transforms[id]
		if !hasPos {
			continue
		}
		c := render.Color
		if _, frozen := s.ecs.Frozen[id]; frozen {
			c = config.FrozenColor
		}
		if _, flashing := s.ecs.DamageFlashes[id]; flashing {
			c = config.TextLightColor
		}
		x, y := WorldToScreen(t.Position)
		vector.DrawFilledCircle(screen, x, y, render.Radius*config.WorldScale, withAlpha(c, render.Alpha), true)
	}

	if s.face == nil {
		return
	}
	for id, ft := range s.ecs.Texts {
		t, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		x, y := WorldToScreen(t.Position)
		// подъем по Y мира рисуем как сдвиг вверх по экрану
		y -= float32(t.Position.Y() * config.WorldScale)
		text.Draw(screen, ft.Text, s.face, int(x), int(y), ft.Color)
	}
	for _, e := range s.effects {
		x, y := WorldToScreen(e.position)
		text.Draw(screen, e.name, s.face, int(x)+8, int(y)-8, config.HostileColor)
	}
}
