package components

import "github.com/decker502/pollen/pkg/ecs"

// GardenGridComponent 标识花园网格管理器实体
// 记录每个格子对应的地块实体
//
// Tiles 按行优先存储：Tiles[row*Cols+col] = 地块实体ID
type GardenGridComponent struct {
	Rows  int
	Cols  int
	Tiles []ecs.EntityID
}

// TileAt 返回 (row, col) 处的地块实体ID，越界返回 0
func (g *GardenGridComponent) TileAt(row, col int) ecs.EntityID {
	if !g.InBounds(row, col) {
		return 0
	}
	return g.Tiles[row*g.Cols+col]
}

// InBounds 检查坐标是否在网格内
func (g *GardenGridComponent) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}
