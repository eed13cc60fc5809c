package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/afflict/ecs"
	"github.com/milk9111/afflict/ecs/component"
)

// DrawZoneDebug renders zone bounds for debug visualization.
func DrawZoneDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	ecs.ForEach2(w, component.DamageZoneComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, z *component.DamageZone, t *component.Transform) {
		if z == nil || t == nil {
			return
		}
		x := float32(t.X - z.Width/2)
		y := float32(t.Y - z.Height/2)
		wdt := float32(z.Width)
		hgt := float32(z.Height)
		// semi-transparent fill + outline
		vector.FillRect(screen, x, y, wdt, hgt, color.RGBA{R: 255, G: 80, B: 0, A: 48}, false)
		vector.StrokeRect(screen, x, y, wdt, hgt, 1.0, color.RGBA{R: 255, G: 80, B: 0, A: 200}, false)
		text.Draw(screen, z.Name, basicfont.Face7x13, int(x), int(y)-4, color.RGBA{R: 255, G: 160, B: 80, A: 255})
	})
}

// DrawVictimDebug renders each victim with a health bar and its active
// ledger size.
func DrawVictimDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	ecs.ForEach2(w, component.HealthComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, h *component.Health, t *component.Transform) {
		if h == nil || t == nil {
			return
		}

		bodyColor := color.RGBA{R: 80, G: 200, B: 120, A: 255}
		if ecs.Has(w, e, component.DeadTagComponent.Kind()) {
			bodyColor = color.RGBA{R: 90, G: 90, B: 90, A: 255}
		}
		vector.FillRect(screen, float32(t.X-12), float32(t.Y-12), 24, 24, bodyColor, false)

		const barW = 30.0
		x := float32(t.X - barW/2)
		y := float32(t.Y - 22)
		vector.FillRect(screen, x, y, barW, 4, color.RGBA{R: 40, G: 40, B: 40, A: 255}, false)
		if h.Max > 0 && h.Current > 0 {
			fill := float32(barW * h.Current / h.Max)
			vector.FillRect(screen, x, y, fill, 4, color.RGBA{R: 220, G: 40, B: 40, A: 255}, false)
		}

		if list, ok := ecs.Get(w, e, component.DotListComponent.Kind()); ok && list.Len() > 0 {
			text.Draw(screen, fmt.Sprintf("x%d", list.Len()), basicfont.Face7x13, int(t.X)+16, int(t.Y)-14, color.White)
		}
	})
}
