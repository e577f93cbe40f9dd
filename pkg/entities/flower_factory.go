package entities

import (
	"fmt"

	"github.com/decker502/pollen/pkg/components"
	"github.com/decker502/pollen/pkg/ecs"
	"github.com/decker502/pollen/pkg/flower"
)

// NewFlowerEntity 创建花朵实体
// 创建实体并挂载 *flower.Flower 和 PositionComponent，设置显示位置。
// 不会放置到地块上：地块占用和放置效果由 TileSystem 负责。
//
// 参数:
//   - em: 实体管理器
//   - flowerType: 共享的花朵种类配置
//   - visuals: 视觉句柄工厂，nil 时不创建可见句柄
//   - tiles: 地块查找器（通常是 TileSystem）
//   - rangeBonus: 采集距离加成
//   - col: 网格列索引
//   - row: 网格行索引
//
// 返回:
//   - ecs.EntityID: 创建的花朵实体ID
//   - *flower.Flower: 花朵组件
//   - error: flowerType 为 nil 或容量非法时返回错误
func NewFlowerEntity(em *ecs.EntityManager, flowerType *flower.FlowerType, visuals flower.VisualFactory, tiles flower.TileLookup, rangeBonus int, col, row int) (ecs.EntityID, *flower.Flower, error) {
	if flowerType == nil {
		return 0, nil, fmt.Errorf("flower type is nil")
	}
	if flowerType.MaxPollen <= 0 {
		return 0, nil, fmt.Errorf("flower type %q has non-positive max pollen %.2f", flowerType.Name, flowerType.MaxPollen)
	}

	entityID := em.CreateEntity()

	f := flower.NewFlower(flowerType, visuals, tiles)
	f.RangeBonus = rangeBonus
	f.SetPosition(col, row)

	ecs.AddComponent(em, entityID, f)
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: col, Y: row})

	return entityID, f, nil
}
