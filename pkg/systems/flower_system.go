package systems

import (
	"log"

	"github.com/decker502/pollen/pkg/ecs"
	"github.com/decker502/pollen/pkg/flower"
)

// FlowerSystem 每帧驱动所有花朵
//
// 对存活的花朵调用 Flower.Update；已死亡或已销毁的花朵不再更新，
// 其实体被标记待删除，并在帧末统一清理。
type FlowerSystem struct {
	entityManager *ecs.EntityManager
}

// NewFlowerSystem 创建花朵系统
func NewFlowerSystem(em *ecs.EntityManager) *FlowerSystem {
	return &FlowerSystem{
		entityManager: em,
	}
}

// Update 推进所有花朵一帧，然后清理已销毁的花朵实体
func (s *FlowerSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*flower.Flower](s.entityManager)

	for _, id := range entities {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}

		f, ok := ecs.GetComponent[*flower.Flower](s.entityManager, id)
		if !ok {
			continue
		}

		if f.IsDestroyed() {
			s.sweep(id, f)
			continue
		}

		f.Update(deltaTime)
	}

	s.entityManager.RemoveMarkedEntities()
}

// sweep 标记已销毁的花朵实体待删除
func (s *FlowerSystem) sweep(id ecs.EntityID, f *flower.Flower) {
	if f.IsDead() {
		log.Printf("[FlowerSystem] Removing dead %s (entity %d)", f.Type().Name, id)
	}
	s.entityManager.DestroyEntity(id)
}

// LiveFlowers 返回未销毁的花朵实体ID（升序）
func (s *FlowerSystem) LiveFlowers() []ecs.EntityID {
	var live []ecs.EntityID
	for _, id := range ecs.GetEntitiesWith1[*flower.Flower](s.entityManager) {
		f, ok := ecs.GetComponent[*flower.Flower](s.entityManager, id)
		if !ok || f.IsDestroyed() || s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		live = append(live, id)
	}
	return live
}
