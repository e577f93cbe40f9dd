// Package render 提供基于 Ebitengine 的花朵视觉句柄
//
// PollenRenderer 实现 flower.VisualFactory。花朵只通过句柄接口设置状态，
// 实际绘制在 Draw 中统一完成。句柄释放后不再绘制；已发射的花粉会飞完全程。
package render

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/pollen/pkg/flower"
	"github.com/decker502/pollen/pkg/utils"
)

// 花粉粒子参数
const (
	DotsPerEmit    = 6   // 每次 Emit(1) 生成的花粉点数量
	DotLifetime    = 0.8 // 花粉点飞行时间（秒）
	DotRadius      = 3.0 // 花粉点半径（像素）
	DotScatter     = 0.2 // 起点随机偏移（格子）
	DotRiseDefault = 0.8 // 无目标时向上漂浮的距离（格子）
)

// 进度条参数（相对格子大小的比例）
const (
	barHeightRatio = 0.08
	barInsetRatio  = 0.1
)

var (
	barBackground = color.RGBA{R: 40, G: 40, B: 40, A: 200}
	barFill       = color.RGBA{R: 250, G: 210, B: 60, A: 255}
	barMaxedFill  = color.RGBA{R: 200, G: 120, B: 40, A: 255}
	stemColor     = color.RGBA{R: 60, G: 140, B: 50, A: 255}
)

// PollenRenderer 花朵视觉句柄工厂和渲染器
type PollenRenderer struct {
	layout utils.GridLayout
	rng    *rand.Rand

	bars       []*barHandle
	emitters   []*particleHandle
	transforms []*transformHandle
	dots       []*pollenDot
}

// NewPollenRenderer 创建渲染器
func NewPollenRenderer(layout utils.GridLayout, seed int64) *PollenRenderer {
	return &PollenRenderer{
		layout: layout,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// CreatePollenBar 实现 flower.VisualFactory
func (r *PollenRenderer) CreatePollenBar() flower.PollenBar {
	bar := &barHandle{}
	r.bars = append(r.bars, bar)
	return bar
}

// CreatePollenParticles 实现 flower.VisualFactory
func (r *PollenRenderer) CreatePollenParticles() flower.PollenParticles {
	p := &particleHandle{renderer: r}
	r.emitters = append(r.emitters, p)
	return p
}

// CreateFlowerTransform 实现 flower.VisualFactory
func (r *PollenRenderer) CreateFlowerTransform() flower.Transform {
	tr := &transformHandle{}
	r.transforms = append(r.transforms, tr)
	return tr
}

// Update 推进花粉点的飞行，并清理已释放的句柄
func (r *PollenRenderer) Update(deltaTime float64) {
	alive := r.dots[:0]
	for _, d := range r.dots {
		d.age += deltaTime
		if d.age < DotLifetime {
			alive = append(alive, d)
		}
	}
	r.dots = alive

	r.bars = pruneDestroyed(r.bars)
	r.emitters = pruneDestroyed(r.emitters)
	r.transforms = pruneDestroyed(r.transforms)
}

// LiveHandles 返回尚未释放的句柄数量
func (r *PollenRenderer) LiveHandles() int {
	count := 0
	for _, b := range r.bars {
		if !b.destroyed {
			count++
		}
	}
	for _, e := range r.emitters {
		if !e.destroyed {
			count++
		}
	}
	for _, tr := range r.transforms {
		if !tr.destroyed {
			count++
		}
	}
	return count
}

// DotCount 返回正在飞行的花粉点数量
func (r *PollenRenderer) DotCount() int {
	return len(r.dots)
}

// Draw 绘制花茎、进度条和花粉点
func (r *PollenRenderer) Draw(screen *ebiten.Image) {
	cell := r.layout.CellSize

	for _, tr := range r.transforms {
		if tr.destroyed || !tr.placed {
			continue
		}
		x, y := r.layout.GridToScreen(tr.x, tr.y)
		vector.StrokeLine(screen, float32(x), float32(y), float32(x), float32(y+cell*0.35), 4, stemColor, true)
	}

	for _, b := range r.bars {
		if b.destroyed || !b.placed {
			continue
		}
		r.drawBar(screen, b)
	}

	for _, d := range r.dots {
		gx, gy := d.position()
		x, y := r.layout.GridToScreen(gx, gy)
		c := d.color
		// 末段淡出
		remaining := 1 - d.age/DotLifetime
		if remaining < 0.3 {
			c.A = uint8(float64(c.A) * remaining / 0.3)
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), DotRadius, c, true)
	}
}

// drawBar 进度条位于格子底部，左右各留出内边距
func (r *PollenRenderer) drawBar(screen *ebiten.Image, b *barHandle) {
	cell := r.layout.CellSize
	x, y := r.layout.GridToScreen(b.x, b.y)
	x += cell * barInsetRatio
	y += cell * (1 - barInsetRatio - barHeightRatio)
	width := cell * (1 - 2*barInsetRatio)
	height := cell * barHeightRatio

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), barBackground, false)

	fill := barFill
	if b.maxed {
		fill = barMaxedFill
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width*b.percentage), float32(height), fill, false)
}

// emit 从发射器位置生成花粉点
func (r *PollenRenderer) emit(p *particleHandle, count int, c color.RGBA) {
	for i := 0; i < count*DotsPerEmit; i++ {
		d := &pollenDot{
			startX: p.x + (r.rng.Float64()*2-1)*DotScatter,
			startY: p.y + (r.rng.Float64()*2-1)*DotScatter,
			color:  c,
		}
		if p.target != nil {
			d.target = p.target
		} else {
			d.endX = d.startX
			d.endY = d.startY - DotRiseDefault
		}
		r.dots = append(r.dots, d)
	}
}

// pollenDot 一个飞行中的花粉点
// 目标在飞行过程中移动时，花粉点会追踪目标的最新位置
type pollenDot struct {
	startX, startY float64
	endX, endY     float64
	target         flower.Target
	age            float64
	color          color.RGBA
}

func (d *pollenDot) position() (float64, float64) {
	endX, endY := d.endX, d.endY
	if d.target != nil {
		endX, endY = d.target.Position()
	}
	t := utils.EaseOutCubic(d.age / DotLifetime)
	return utils.Lerp(d.startX, endX, t), utils.Lerp(d.startY, endY, t)
}

type destroyable interface {
	isDestroyed() bool
}

func pruneDestroyed[T destroyable](handles []T) []T {
	kept := handles[:0]
	for _, h := range handles {
		if !h.isDestroyed() {
			kept = append(kept, h)
		}
	}
	return kept
}

// handleBase 句柄的公共字段
type handleBase struct {
	x, y      float64
	placed    bool
	destroyed bool
}

func (h *handleBase) SetPosition(x, y float64) {
	h.x, h.y = x, y
	h.placed = true
}

func (h *handleBase) Destroy() {
	h.destroyed = true
}

func (h *handleBase) isDestroyed() bool {
	return h.destroyed
}

type barHandle struct {
	handleBase
	percentage float64
	maxed      bool
}

func (b *barHandle) SetPercentage(p float64) {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	b.percentage = p
}

func (b *barHandle) SetMaxed() {
	b.maxed = true
}

type particleHandle struct {
	handleBase
	renderer *PollenRenderer
	target   flower.Target
}

func (p *particleHandle) Emit(count int, c color.RGBA) {
	if p.destroyed || count <= 0 {
		return
	}
	p.renderer.emit(p, count, c)
}

func (p *particleHandle) SetTarget(target flower.Target) {
	p.target = target
}

type transformHandle struct {
	handleBase
}
