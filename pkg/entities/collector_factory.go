package entities

import (
	"github.com/decker502/pollen/pkg/components"
	"github.com/decker502/pollen/pkg/ecs"
)

// NewCollectorEntity 创建采集者实体（CollectorComponent + InventoryComponent）
// collector 按值传入，实体持有其副本；初始冷却为 0，第一帧即可采集
func NewCollectorEntity(em *ecs.EntityManager, collector components.CollectorComponent) ecs.EntityID {
	entityID := em.CreateEntity()

	c := collector
	c.CooldownLeft = 0
	ecs.AddComponent(em, entityID, &c)
	ecs.AddComponent(em, entityID, &components.InventoryComponent{})

	return entityID
}
