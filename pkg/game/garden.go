package game

import (
	"fmt"
	"log"

	"github.com/decker502/pollen/pkg/components"
	"github.com/decker502/pollen/pkg/config"
	"github.com/decker502/pollen/pkg/ecs"
	"github.com/decker502/pollen/pkg/entities"
	"github.com/decker502/pollen/pkg/flower"
	"github.com/decker502/pollen/pkg/systems"
)

// Garden 一个正在运行的花园模拟
//
// 持有实体管理器和所有系统，按固定顺序推进：先采集，再更新花朵。
// 花朵在采集中死亡后，会在同一帧的花朵更新阶段被清理。
type Garden struct {
	entityManager *ecs.EntityManager
	catalog       *config.FlowerCatalog
	visuals       flower.VisualFactory

	tiles   *systems.TileSystem
	flowers *systems.FlowerSystem
	harvest *systems.HarvestSystem

	elapsed float64 // 模拟已进行时间（秒）
}

// NewGarden 根据花园配置创建模拟
//
// 参数：
//   - cfg: 花园布局配置（已校验）
//   - catalog: 花朵种类集合
//   - visuals: 视觉工厂，nil 时无界面运行
//
// 返回：
//   - *Garden: 已完成初始种植和采集者创建的花园
//   - error: 种植引用了未知种类或放置失败时返回
func NewGarden(cfg *config.GardenConfig, catalog *config.FlowerCatalog, visuals flower.VisualFactory) (*Garden, error) {
	if cfg == nil || catalog == nil {
		return nil, fmt.Errorf("garden config and flower catalog are required")
	}
	if err := cfg.CheckPlantings(catalog); err != nil {
		return nil, err
	}

	g, err := newEmptyGarden(cfg.Rows, cfg.Cols, cfg.InitialAttributes, catalog, visuals)
	if err != nil {
		return nil, err
	}

	for _, p := range cfg.Plantings {
		if _, err := g.Plant(p.Type, p.Row, p.Col); err != nil {
			return nil, fmt.Errorf("initial planting %s at (row=%d, col=%d): %w", p.Type, p.Row, p.Col, err)
		}
	}

	for _, c := range cfg.Collectors {
		g.AddCollector(components.CollectorComponent{
			Name:          c.Name,
			X:             float64(c.X),
			Y:             float64(c.Y),
			Reach:         c.Reach,
			HarvestAmount: c.HarvestAmount,
			Cooldown:      c.Cooldown,
			OnlyFull:      c.OnlyFull,
		})
	}

	log.Printf("[Garden] Created %dx%d garden with %d plantings and %d collectors",
		cfg.Rows, cfg.Cols, len(cfg.Plantings), len(cfg.Collectors))
	return g, nil
}

// newEmptyGarden 创建没有花朵和采集者的花园（存档恢复也使用）
func newEmptyGarden(rows, cols int, attributes map[string]float64, catalog *config.FlowerCatalog, visuals flower.VisualFactory) (*Garden, error) {
	em := ecs.NewEntityManager()
	tiles, err := systems.NewTileSystem(em, rows, cols, attributes, visuals)
	if err != nil {
		return nil, err
	}

	return &Garden{
		entityManager: em,
		catalog:       catalog,
		visuals:       visuals,
		tiles:         tiles,
		flowers:       systems.NewFlowerSystem(em),
		harvest:       systems.NewHarvestSystem(em),
	}, nil
}

// Update 推进模拟一帧
func (g *Garden) Update(deltaTime float64) {
	if deltaTime < 0 {
		deltaTime = 0
	}
	g.harvest.Update(deltaTime)
	g.flowers.Update(deltaTime)
	g.elapsed += deltaTime
}

// Plant 按种类名种下一朵花
func (g *Garden) Plant(typeName string, row, col int) (ecs.EntityID, error) {
	ft, err := g.catalog.Get(typeName)
	if err != nil {
		return 0, err
	}
	return g.tiles.PlantFlower(row, col, ft, g.catalog.RangeBonus(typeName))
}

// Uproot 拔除一朵花（触发移除效果）
func (g *Garden) Uproot(row, col int) error {
	return g.tiles.UprootFlower(row, col)
}

// AddCollector 添加一个采集者
func (g *Garden) AddCollector(collector components.CollectorComponent) ecs.EntityID {
	id := entities.NewCollectorEntity(g.entityManager, collector)
	log.Printf("[Garden] Added collector %s at (%.0f, %.0f), reach %d", collector.Name, collector.X, collector.Y, collector.Reach)
	return id
}

// EntityManager 返回实体管理器
func (g *Garden) EntityManager() *ecs.EntityManager { return g.entityManager }

// Tiles 返回地块系统
func (g *Garden) Tiles() *systems.TileSystem { return g.tiles }

// Catalog 返回花朵种类集合
func (g *Garden) Catalog() *config.FlowerCatalog { return g.catalog }

// Harvest 返回采集系统
func (g *Garden) Harvest() *systems.HarvestSystem { return g.harvest }

// Elapsed 模拟已进行时间（秒）
func (g *Garden) Elapsed() float64 { return g.elapsed }

// Flowers 返回存活花朵的实体ID（升序）
func (g *Garden) Flowers() []ecs.EntityID {
	return g.flowers.LiveFlowers()
}

// Collectors 返回采集者实体ID（升序）
func (g *Garden) Collectors() []ecs.EntityID {
	return ecs.GetEntitiesWith2[*components.CollectorComponent, *components.InventoryComponent](g.entityManager)
}

// TotalInventory 所有采集者持有的花粉总和
func (g *Garden) TotalInventory() float64 {
	total := 0.0
	for _, id := range g.Collectors() {
		if inv, ok := ecs.GetComponent[*components.InventoryComponent](g.entityManager, id); ok {
			total += inv.Pollen
		}
	}
	return total
}
