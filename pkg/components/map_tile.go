package components

import "github.com/decker502/pollen/pkg/ecs"

// 常用地块属性名称
const (
	AttrFertility  = "fertility"  // 肥力
	AttrMoisture   = "moisture"   // 湿度
	AttrPollinator = "pollinator" // 传粉者吸引度
)

// MapTileComponent 花园中的一个地块
//
// 地块持有其上花朵的实体ID（占用关系），花朵只通过实体ID反向查找地块，
// 不持有地块指针。花朵效果通过 Attributes 在地块上累积状态。
type MapTileComponent struct {
	// Row 所在行 (从上到下，0 起)
	Row int
	// Col 所在列 (从左到右，0 起)
	Col int
	// Flower 占用该地块的花朵实体ID，0 表示空地块
	Flower ecs.EntityID
	// Attributes 地块属性（肥力、湿度等），由花朵效果读写
	Attributes map[string]float64
}

// NewMapTileComponent 创建指定位置的空地块
func NewMapTileComponent(row, col int) *MapTileComponent {
	return &MapTileComponent{
		Row:        row,
		Col:        col,
		Attributes: make(map[string]float64),
	}
}

// HasFlower 地块上是否有花朵
func (t *MapTileComponent) HasFlower() bool {
	return t.Flower != 0
}

// RemoveFlower 清除地块上的花朵占用（不影响花朵自身记录的地块关系）
func (t *MapTileComponent) RemoveFlower() {
	t.Flower = 0
}

// Attribute 读取属性值，不存在时返回 0
func (t *MapTileComponent) Attribute(name string) float64 {
	return t.Attributes[name]
}

// SetAttribute 设置属性值
func (t *MapTileComponent) SetAttribute(name string, value float64) {
	if t.Attributes == nil {
		t.Attributes = make(map[string]float64)
	}
	t.Attributes[name] = value
}

// AddAttribute 在属性上累加 delta
func (t *MapTileComponent) AddAttribute(name string, delta float64) {
	t.SetAttribute(name, t.Attribute(name)+delta)
}
