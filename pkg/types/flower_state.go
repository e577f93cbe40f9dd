package types

// FlowerState 花朵状态机的状态
type FlowerState int

const (
	FlowerGrowing   FlowerState = iota // 生长中：无冷却且未满
	FlowerFull                         // 已满：花粉达到容量上限
	FlowerRegenning                    // 冷却中：采集后暂停生产
	FlowerDead                         // 死亡（终态）
)

// String 返回状态名称
func (s FlowerState) String() string {
	switch s {
	case FlowerGrowing:
		return "Growing"
	case FlowerFull:
		return "Full"
	case FlowerRegenning:
		return "Regenning"
	case FlowerDead:
		return "Dead"
	default:
		return "Unknown"
	}
}
