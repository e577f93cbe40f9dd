package scenes

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/pollen/pkg/components"
	"github.com/decker502/pollen/pkg/ecs"
	"github.com/decker502/pollen/pkg/flower"
	"github.com/decker502/pollen/pkg/utils"
)

var (
	backgroundColor = color.RGBA{R: 34, G: 52, B: 30, A: 255}
	gridLineColor   = color.RGBA{R: 20, G: 30, B: 18, A: 255}
	collectorColor  = color.RGBA{R: 250, G: 190, B: 30, A: 255}
	reachColor      = color.RGBA{R: 250, G: 190, B: 30, A: 90}
	deadHeadColor   = color.RGBA{R: 90, G: 80, B: 70, A: 255}
)

// Draw 绘制地块、花朵、采集者和状态栏
func (s *GardenScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	s.drawTiles(screen)
	s.drawFlowerHeads(screen)
	s.renderer.Draw(screen)
	s.drawCollectors(screen)
	s.drawHUD(screen)
}

// tileColor 地块颜色随肥力（偏绿）和湿度（偏暗）变化
func tileColor(tile *components.MapTileComponent) color.RGBA {
	fertility := unitRange(tile.Attribute(components.AttrFertility) / 10)
	moisture := unitRange(tile.Attribute(components.AttrMoisture) / 10)
	return color.RGBA{
		R: uint8(120 - 40*moisture),
		G: uint8(90 + 80*fertility),
		B: uint8(50 + 20*moisture),
		A: 255,
	}
}

func unitRange(v float64) float64 {
	return math.Max(0, math.Min(v, 1))
}

func (s *GardenScene) drawTiles(screen *ebiten.Image) {
	cell := float32(s.layout.CellSize)
	tiles := s.garden.Tiles()

	for _, id := range tiles.TileEntities() {
		tile, ok := tiles.Tile(id)
		if !ok {
			continue
		}
		x, y := s.layout.GridToScreen(float64(tile.Col), float64(tile.Row))
		vector.DrawFilledRect(screen, float32(x), float32(y), cell, cell, tileColor(tile), false)
		vector.StrokeRect(screen, float32(x), float32(y), cell, cell, 1, gridLineColor, false)
	}
}

// drawFlowerHeads 花头颜色取自种类，大小随储量变化
func (s *GardenScene) drawFlowerHeads(screen *ebiten.Image) {
	em := s.garden.EntityManager()
	cell := s.layout.CellSize

	for _, id := range s.garden.Flowers() {
		f, ok := ecs.GetComponent[*flower.Flower](em, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}

		x, y := s.layout.GridToScreen(float64(pos.X)+0.5, float64(pos.Y)+0.5)
		fill := f.CurrentPollen() / f.Type().MaxPollen
		radius := cell * (0.12 + 0.13*fill)

		head := f.Type().Color
		if f.IsRegenning() {
			head.A = 140
		}
		if f.IsDead() {
			head = deadHeadColor
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), head, true)
	}
}

func (s *GardenScene) drawCollectors(screen *ebiten.Image) {
	em := s.garden.EntityManager()
	cell := s.layout.CellSize

	for _, id := range s.garden.Collectors() {
		c, ok := ecs.GetComponent[*components.CollectorComponent](em, id)
		if !ok {
			continue
		}
		cx, cy := c.Position()
		x, y := s.layout.GridToScreen(cx, cy)

		// 基础采集范围
		rx, ry := s.layout.GridToScreen(c.X-float64(c.Reach), c.Y-float64(c.Reach))
		size := float32(float64(2*c.Reach+1) * cell)
		vector.StrokeRect(screen, float32(rx), float32(ry), size, size, 2, reachColor, false)

		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(cell*0.15), collectorColor, true)
		ebitenutil.DebugPrintAt(screen, c.Name, int(x)-len(c.Name)*3, int(y+cell*0.2))
	}
}

func (s *GardenScene) drawHUD(screen *ebiten.Image) {
	_, selected := s.state.GetPlantingMode()

	var keys []string
	for i, name := range s.catalog.Names() {
		if i >= len(selectKeys) {
			break
		}
		marker := " "
		if name == selected {
			marker = "*"
		}
		keys = append(keys, fmt.Sprintf("%s%d:%s", marker, i+1, name))
	}

	status := fmt.Sprintf("Pollen: %.1f  Flowers: %d  Time: %.1fs  Speed: x%.2f",
		s.garden.TotalInventory(), len(s.garden.Flowers()), s.garden.Elapsed(), s.state.Speed)
	if s.state.Paused {
		status += "  [PAUSED]"
	}

	ebitenutil.DebugPrintAt(screen, status, 10, 10)
	ebitenutil.DebugPrintAt(screen, strings.Join(keys, "  "), 10, 28)
	hint := "LMB plant/uproot  RMB uproot  SPACE pause  +/- speed  F5 save  F9 load  R restart"
	if utils.IsMobile() {
		hint = "Tap empty tile to plant, tap flower to uproot"
	}
	ebitenutil.DebugPrintAt(screen, hint, 10, 46)

	if s.messageTimer > 0 && s.message != "" {
		y := int(s.layout.StartY + s.layout.Height() + 10)
		ebitenutil.DebugPrintAt(screen, s.message, 10, y)
	}
}
