package flower

import "github.com/decker502/pollen/pkg/components"

// Effect 花朵效果钩子
//
// 在三个时机被调用：放置到地块、从地块移除、每帧更新。
// 效果本身不持有花朵状态，需要累积的数据应存放在地块属性或效果实例中。
type Effect interface {
	Apply(tile *components.MapTileComponent, dt float64)
}

// EffectFunc 让普通函数实现 Effect 接口
type EffectFunc func(tile *components.MapTileComponent, dt float64)

// Apply 调用函数本身
func (f EffectFunc) Apply(tile *components.MapTileComponent, dt float64) {
	f(tile, dt)
}

// applyEffects 按顺序对地块应用一组效果
func applyEffects(effects []Effect, tile *components.MapTileComponent, dt float64) {
	for _, effect := range effects {
		effect.Apply(tile, dt)
	}
}
