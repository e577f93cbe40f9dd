package components

// PositionComponent 实体在花园网格中的位置（格子坐标）
type PositionComponent struct {
	X int // 列
	Y int // 行
}
