package flower

import (
	"math"

	"github.com/decker502/pollen/pkg/components"
)

// AttributeEffect 一次性增减地块属性
// 常用于放置/移除配对：放置时 +Amount，移除时 -Amount
type AttributeEffect struct {
	Attribute string
	Amount    float64
}

// Apply 实现 Effect 接口
func (e AttributeEffect) Apply(tile *components.MapTileComponent, _ float64) {
	tile.AddAttribute(e.Attribute, e.Amount)
}

// AttributeRateEffect 按秒速率增减地块属性
type AttributeRateEffect struct {
	Attribute string
	PerSecond float64
}

// Apply 实现 Effect 接口，增量为 PerSecond*dt
func (e AttributeRateEffect) Apply(tile *components.MapTileComponent, dt float64) {
	tile.AddAttribute(e.Attribute, e.PerSecond*dt)
}

// AttributeDecayEffect 按比例衰减地块属性
// 每秒衰减 Fraction 比例，单帧衰减系数下限为 0
type AttributeDecayEffect struct {
	Attribute string
	Fraction  float64
}

// Apply 实现 Effect 接口
func (e AttributeDecayEffect) Apply(tile *components.MapTileComponent, dt float64) {
	factor := math.Max(0, 1-e.Fraction*dt)
	tile.SetAttribute(e.Attribute, tile.Attribute(e.Attribute)*factor)
}

// AttributeClampEffect 将地块属性限制在 [Min, Max] 区间
type AttributeClampEffect struct {
	Attribute string
	Min       float64
	Max       float64
}

// Apply 实现 Effect 接口
func (e AttributeClampEffect) Apply(tile *components.MapTileComponent, _ float64) {
	value := tile.Attribute(e.Attribute)
	if value < e.Min {
		value = e.Min
	}
	if value > e.Max {
		value = e.Max
	}
	tile.SetAttribute(e.Attribute, value)
}
