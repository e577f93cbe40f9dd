// Package visual 提供无界面运行时使用的花朵视觉句柄
//
// Recorder 实现 flower.VisualFactory，不绘制任何内容，只记录调用情况。
// 无界面模拟（cmd/simulate）用它统计粒子发射、进度条状态和句柄泄漏。
package visual

import (
	"image/color"

	"github.com/decker502/pollen/pkg/flower"
)

// Stats 记录器统计数据
type Stats struct {
	BarsCreated       int
	ParticlesCreated  int
	TransformsCreated int

	Released int // 已释放的句柄数
	Live     int // 尚未释放的句柄数

	Emitted     int // 发射的粒子总数
	MaxedEvents int // SetMaxed 调用次数
	DoubleFrees int // 重复 Destroy 次数（应始终为 0）
}

// Recorder 记录所有句柄调用的视觉工厂
type Recorder struct {
	stats Stats

	bars      []*Bar
	particles []*Particles
}

// NewRecorder 创建记录器
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Stats 返回统计数据快照
func (r *Recorder) Stats() Stats {
	return r.stats
}

// Bars 返回创建过的所有进度条（包括已释放的）
func (r *Recorder) Bars() []*Bar {
	return r.bars
}

// Particles 返回创建过的所有粒子句柄（包括已释放的）
func (r *Recorder) Particles() []*Particles {
	return r.particles
}

// CreatePollenBar 实现 flower.VisualFactory
func (r *Recorder) CreatePollenBar() flower.PollenBar {
	r.stats.BarsCreated++
	r.stats.Live++
	bar := &Bar{handle: handle{recorder: r}}
	r.bars = append(r.bars, bar)
	return bar
}

// CreatePollenParticles 实现 flower.VisualFactory
func (r *Recorder) CreatePollenParticles() flower.PollenParticles {
	r.stats.ParticlesCreated++
	r.stats.Live++
	p := &Particles{handle: handle{recorder: r}}
	r.particles = append(r.particles, p)
	return p
}

// CreateFlowerTransform 实现 flower.VisualFactory
func (r *Recorder) CreateFlowerTransform() flower.Transform {
	r.stats.TransformsCreated++
	r.stats.Live++
	return &handle{recorder: r}
}

// handle 所有句柄共用的位置和释放逻辑
type handle struct {
	recorder  *Recorder
	X, Y      float64
	destroyed bool
}

// SetPosition 记录位置
func (h *handle) SetPosition(x, y float64) {
	h.X, h.Y = x, y
}

// Destroy 释放句柄，重复释放会被计入 DoubleFrees
func (h *handle) Destroy() {
	if h.destroyed {
		h.recorder.stats.DoubleFrees++
		return
	}
	h.destroyed = true
	h.recorder.stats.Released++
	h.recorder.stats.Live--
}

// Destroyed 是否已释放
func (h *handle) Destroyed() bool {
	return h.destroyed
}

// Bar 记录进度条状态
type Bar struct {
	handle
	Percentage float64
	Maxed      bool
}

// SetPercentage 记录填充比例
func (b *Bar) SetPercentage(p float64) {
	b.Percentage = p
}

// SetMaxed 记录"已满"状态
func (b *Bar) SetMaxed() {
	if !b.Maxed {
		b.recorder.stats.MaxedEvents++
	}
	b.Maxed = true
}

// Particles 记录粒子发射
type Particles struct {
	handle
	Emitted   int
	LastColor color.RGBA
	Target    flower.Target
}

// Emit 记录发射次数和颜色
func (p *Particles) Emit(count int, c color.RGBA) {
	p.Emitted += count
	p.LastColor = c
	p.recorder.stats.Emitted += count
}

// SetTarget 记录目标
func (p *Particles) SetTarget(target flower.Target) {
	p.Target = target
}
