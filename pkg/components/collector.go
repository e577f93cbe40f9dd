package components

// CollectorComponent 采集者（蜜蜂/玩家）
// 按冷却周期采集可达范围内的花粉，存入同实体上的 InventoryComponent
type CollectorComponent struct {
	// Name 采集者名称，用于日志
	Name string
	// X, Y 采集者所在格子
	X, Y float64
	// Reach 基础采集距离（格子，切比雪夫距离），花朵的 RangeBonus 会加到该值上
	Reach int
	// HarvestAmount 单次向每朵花请求的花粉量
	HarvestAmount float64
	// Cooldown 两次采集之间的间隔（秒）
	Cooldown float64
	// CooldownLeft 距下次采集剩余时间（秒）
	CooldownLeft float64
	// OnlyFull 为 true 时只采集已满的花朵
	OnlyFull bool
}

// Position 返回采集者位置，使花粉粒子可以追踪采集者
func (c *CollectorComponent) Position() (float64, float64) {
	return c.X + 0.5, c.Y + 0.5
}
