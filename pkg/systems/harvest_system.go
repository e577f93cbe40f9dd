package systems

import (
	"log"
	"math"

	"github.com/decker502/pollen/pkg/components"
	"github.com/decker502/pollen/pkg/ecs"
	"github.com/decker502/pollen/pkg/flower"
)

// HarvestSystem 采集者按冷却周期采集附近花朵的花粉
//
// 每个采集者冷却结束后，对距离（切比雪夫距离）不超过 Reach + RangeBonus
// 的花朵调用 HarvestPollen，取得的花粉存入采集者的 InventoryComponent。
// 冷却中、已死亡或没有花粉的花朵会被跳过。
type HarvestSystem struct {
	entityManager *ecs.EntityManager

	// 统计数据（遥测使用）
	totalHarvested float64
	harvestCount   int
}

// NewHarvestSystem 创建采集系统
func NewHarvestSystem(em *ecs.EntityManager) *HarvestSystem {
	return &HarvestSystem{
		entityManager: em,
	}
}

// Update 更新所有采集者
func (s *HarvestSystem) Update(deltaTime float64) {
	collectors := ecs.GetEntitiesWith2[*components.CollectorComponent, *components.InventoryComponent](s.entityManager)
	if len(collectors) == 0 {
		return
	}
	flowers := ecs.GetEntitiesWith2[*flower.Flower, *components.PositionComponent](s.entityManager)

	for _, id := range collectors {
		collector, _ := ecs.GetComponent[*components.CollectorComponent](s.entityManager, id)
		inventory, _ := ecs.GetComponent[*components.InventoryComponent](s.entityManager, id)

		if collector.CooldownLeft > 0 {
			collector.CooldownLeft -= deltaTime
			if collector.CooldownLeft > 0 {
				continue
			}
			collector.CooldownLeft = 0
		}

		if s.harvestAround(collector, inventory, flowers) {
			collector.CooldownLeft = collector.Cooldown
		}
	}
}

// harvestAround 采集一个采集者范围内的所有花朵，返回是否采到了花粉
func (s *HarvestSystem) harvestAround(collector *components.CollectorComponent, inventory *components.InventoryComponent, flowers []ecs.EntityID) bool {
	harvested := false

	for _, flowerID := range flowers {
		if s.entityManager.IsMarkedForDestroy(flowerID) {
			continue
		}
		f, _ := ecs.GetComponent[*flower.Flower](s.entityManager, flowerID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, flowerID)

		if !CanHarvest(collector, f, pos) {
			continue
		}

		f.SetParticlesTarget(collector)
		taken := f.HarvestPollen(collector.HarvestAmount)
		if taken <= 0 {
			continue
		}

		inventory.AddPollen(taken)
		s.totalHarvested += taken
		s.harvestCount++
		harvested = true

		if f.IsDead() {
			log.Printf("[HarvestSystem] %s drained %s (entity %d) to death", collector.Name, f.Type().Name, flowerID)
		}
	}

	return harvested
}

// CanHarvest 判断采集者当前能否采集该花朵
func CanHarvest(collector *components.CollectorComponent, f *flower.Flower, pos *components.PositionComponent) bool {
	if f == nil || pos == nil {
		return false
	}
	if f.IsDead() || f.IsDestroyed() || f.IsRegenning() || f.CurrentPollen() <= 0 {
		return false
	}
	if collector.OnlyFull && !f.IsFull() {
		return false
	}

	reach := float64(collector.Reach + f.RangeBonus)
	return ChebyshevDistance(collector.X, collector.Y, float64(pos.X), float64(pos.Y)) <= reach
}

// ChebyshevDistance 计算两个格子坐标之间的切比雪夫距离
func ChebyshevDistance(x1, y1, x2, y2 float64) float64 {
	return math.Max(math.Abs(x1-x2), math.Abs(y1-y2))
}

// TotalHarvested 累计采集的花粉量
func (s *HarvestSystem) TotalHarvested() float64 {
	return s.totalHarvested
}

// HarvestCount 累计成功采集次数
func (s *HarvestSystem) HarvestCount() int {
	return s.harvestCount
}
