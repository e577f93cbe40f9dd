package flower

import "image/color"

// FlowerType 花朵种类的共享配置
//
// 同一种类的所有花朵共享同一个 *FlowerType 实例。
// 构造完成后视为只读，多个 Flower 可以不加锁地并发读取。
type FlowerType struct {
	// Name 种类名称，如 "daisy"
	Name string
	// PollenGenerationRate 花粉生产速率（单位/秒）
	PollenGenerationRate float64
	// MaxPollen 花粉容量上限（> 0）
	MaxPollen float64
	// LifetimePollen 一生累计可生产的花粉上限，达到后停止生产
	LifetimePollen float64
	// RegenTimer 采集后的强制休眠时间（秒）
	RegenTimer float64

	// OnAddedEffects 放置到地块时按顺序触发（dt=0）
	OnAddedEffects []Effect
	// OnRemovedEffects 从地块移除时按顺序触发（dt=0）
	OnRemovedEffects []Effect
	// OnUpdateEffects 每帧按顺序触发（dt=帧间隔）
	OnUpdateEffects []Effect

	// Color 采集时花粉粒子的颜色
	Color color.RGBA
}
