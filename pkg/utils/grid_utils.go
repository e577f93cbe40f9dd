// Package utils 提供网格布局、缓动、输入和平台相关的通用工具函数
package utils

import "math"

// 花园网格的默认屏幕布局
const (
	DefaultGridStartX = 40.0 // 网格起始X坐标
	DefaultGridStartY = 80.0 // 网格起始Y坐标
	DefaultCellSize   = 80.0 // 每格边长
)

// GridLayout 描述花园网格在屏幕上的位置
// 网格坐标以格子为单位，(0,0) 为左上角格子的左上角
type GridLayout struct {
	StartX   float64
	StartY   float64
	CellSize float64
	Rows     int
	Cols     int
}

// NewGridLayout 使用默认起点和格子大小创建布局
func NewGridLayout(rows, cols int) GridLayout {
	return GridLayout{
		StartX:   DefaultGridStartX,
		StartY:   DefaultGridStartY,
		CellSize: DefaultCellSize,
		Rows:     rows,
		Cols:     cols,
	}
}

// MouseToGridCoords 将鼠标屏幕坐标转换为网格坐标
// 参数:
//   - mouseX, mouseY: 鼠标的屏幕坐标
//
// 返回:
//   - col, row: 格子索引
//   - isValid: 是否在网格范围内
func (l GridLayout) MouseToGridCoords(mouseX, mouseY int) (col, row int, isValid bool) {
	x := float64(mouseX) - l.StartX
	y := float64(mouseY) - l.StartY
	if x < 0 || y < 0 || l.CellSize <= 0 {
		return 0, 0, false
	}

	col = int(math.Floor(x / l.CellSize))
	row = int(math.Floor(y / l.CellSize))
	if col >= l.Cols || row >= l.Rows {
		return 0, 0, false
	}
	return col, row, true
}

// GridToScreen 将网格坐标（可为小数）转换为屏幕坐标
// 例如 (col+0.5, row+0.5) 为格子中心
func (l GridLayout) GridToScreen(gx, gy float64) (screenX, screenY float64) {
	return l.StartX + gx*l.CellSize, l.StartY + gy*l.CellSize
}

// Width 网格的屏幕宽度
func (l GridLayout) Width() float64 {
	return float64(l.Cols) * l.CellSize
}

// Height 网格的屏幕高度
func (l GridLayout) Height() float64 {
	return float64(l.Rows) * l.CellSize
}
