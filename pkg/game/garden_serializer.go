package game

import (
	"fmt"
	"log"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/decker502/pollen/pkg/components"
	"github.com/decker502/pollen/pkg/config"
	"github.com/decker502/pollen/pkg/ecs"
	"github.com/decker502/pollen/pkg/flower"
)

// GardenSerializer 花园状态序列化器
//
// 架构说明：
//   - 这是一个工具类，不是 ECS 系统
//   - Collect 只读取实体数据，不修改花园
//   - Restore 创建一个新的花园，不修改传入的存档
type GardenSerializer struct{}

// NewGardenSerializer 创建花园序列化器实例
func NewGardenSerializer() *GardenSerializer {
	return &GardenSerializer{}
}

// Collect 收集花园当前状态
func (s *GardenSerializer) Collect(g *Garden) (*GardenSaveData, error) {
	if g == nil {
		return nil, fmt.Errorf("garden is nil")
	}
	grid := g.Tiles().Grid()
	if grid == nil {
		return nil, fmt.Errorf("garden grid missing")
	}

	saveData := NewGardenSaveData()
	saveData.SaveTime = time.Now()
	saveData.Elapsed = g.Elapsed()
	saveData.Rows = grid.Rows
	saveData.Cols = grid.Cols

	saveData.Tiles = s.collectTileData(g)
	saveData.Flowers = s.collectFlowerData(g.EntityManager())
	saveData.Collectors = s.collectCollectorData(g.EntityManager())

	log.Printf("[GardenSerializer] Collected %d tiles, %d flowers, %d collectors",
		len(saveData.Tiles), len(saveData.Flowers), len(saveData.Collectors))
	return saveData, nil
}

// collectTileData 收集地块属性（行优先）
func (s *GardenSerializer) collectTileData(g *Garden) []TileData {
	var tiles []TileData
	for _, id := range g.Tiles().TileEntities() {
		tile, ok := g.Tiles().Tile(id)
		if !ok {
			continue
		}
		data := TileData{Row: tile.Row, Col: tile.Col}
		if len(tile.Attributes) > 0 {
			data.Attributes = make(map[string]float64, len(tile.Attributes))
			for name, value := range tile.Attributes {
				data.Attributes[name] = value
			}
		}
		tiles = append(tiles, data)
	}
	return tiles
}

// collectFlowerData 收集存活且已放置的花朵
func (s *GardenSerializer) collectFlowerData(em *ecs.EntityManager) []FlowerData {
	var flowers []FlowerData
	for _, id := range ecs.GetEntitiesWith2[*flower.Flower, *components.PositionComponent](em) {
		if em.IsMarkedForDestroy(id) {
			continue
		}
		f, _ := ecs.GetComponent[*flower.Flower](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if f.IsDestroyed() || !f.HasTile() {
			continue
		}

		flowers = append(flowers, FlowerData{
			Type:          f.Type().Name,
			Row:           pos.Y,
			Col:           pos.X,
			CurrentPollen: f.CurrentPollen(),
			TotalPollen:   f.TotalPollen(),
			RegenTimer:    f.RegenTimer(),
			RangeBonus:    f.RangeBonus,
		})
	}
	return flowers
}

// collectCollectorData 收集采集者及其库存
func (s *GardenSerializer) collectCollectorData(em *ecs.EntityManager) []CollectorData {
	var collectors []CollectorData
	for _, id := range ecs.GetEntitiesWith2[*components.CollectorComponent, *components.InventoryComponent](em) {
		c, _ := ecs.GetComponent[*components.CollectorComponent](em, id)
		inv, _ := ecs.GetComponent[*components.InventoryComponent](em, id)

		collectors = append(collectors, CollectorData{
			Name:          c.Name,
			X:             c.X,
			Y:             c.Y,
			Reach:         c.Reach,
			HarvestAmount: c.HarvestAmount,
			Cooldown:      c.Cooldown,
			CooldownLeft:  c.CooldownLeft,
			OnlyFull:      c.OnlyFull,
			Pollen:        inv.Pollen,
		})
	}
	return collectors
}

// Restore 从存档创建新的花园
//
// 地块属性按存档覆盖；花朵通过 SetTile 重新建立占用关系，不触发放置效果。
//
// 参数：
//   - saveData: 存档数据
//   - catalog: 花朵种类集合（存档只记录种类名）
//   - visuals: 视觉工厂，nil 时无界面运行
//
// 返回：
//   - *Garden: 恢复后的花园
//   - error: 版本不兼容、种类未知或坐标非法时返回
func (s *GardenSerializer) Restore(saveData *GardenSaveData, catalog *config.FlowerCatalog, visuals flower.VisualFactory) (*Garden, error) {
	if saveData == nil {
		return nil, fmt.Errorf("save data is nil")
	}
	if catalog == nil {
		return nil, fmt.Errorf("flower catalog is required")
	}
	if saveData.Version != GardenSaveVersion {
		return nil, fmt.Errorf("incompatible garden save version %d (expected %d)", saveData.Version, GardenSaveVersion)
	}

	g, err := newEmptyGarden(saveData.Rows, saveData.Cols, nil, catalog, visuals)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild garden: %w", err)
	}
	g.elapsed = saveData.Elapsed

	for _, td := range saveData.Tiles {
		_, tile, err := g.tiles.TileAt(td.Row, td.Col)
		if err != nil {
			return nil, fmt.Errorf("restore tile: %w", err)
		}
		for name, value := range td.Attributes {
			tile.SetAttribute(name, value)
		}
	}

	for _, fd := range saveData.Flowers {
		ft, err := catalog.Get(fd.Type)
		if err != nil {
			return nil, fmt.Errorf("restore flower at (row=%d, col=%d): %w", fd.Row, fd.Col, err)
		}
		if _, err := g.tiles.RestoreFlower(fd.Row, fd.Col, ft, fd.RangeBonus, fd.CurrentPollen, fd.TotalPollen, fd.RegenTimer); err != nil {
			return nil, fmt.Errorf("restore flower %s: %w", fd.Type, err)
		}
	}

	for _, cd := range saveData.Collectors {
		id := g.AddCollector(components.CollectorComponent{
			Name:          cd.Name,
			X:             cd.X,
			Y:             cd.Y,
			Reach:         cd.Reach,
			HarvestAmount: cd.HarvestAmount,
			Cooldown:      cd.Cooldown,
			OnlyFull:      cd.OnlyFull,
		})
		if c, ok := ecs.GetComponent[*components.CollectorComponent](g.entityManager, id); ok {
			c.CooldownLeft = cd.CooldownLeft
		}
		if inv, ok := ecs.GetComponent[*components.InventoryComponent](g.entityManager, id); ok {
			inv.AddPollen(cd.Pollen)
		}
	}

	log.Printf("[GardenSerializer] Restored %dx%d garden: %d flowers, %d collectors (saved %s)",
		saveData.Rows, saveData.Cols, len(saveData.Flowers), len(saveData.Collectors),
		saveData.SaveTime.Format(time.RFC3339))
	return g, nil
}

// Encode 将存档序列化为 YAML
func (s *GardenSerializer) Encode(saveData *GardenSaveData) ([]byte, error) {
	data, err := yaml.Marshal(saveData)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal garden save: %w", err)
	}
	return data, nil
}

// Decode 从 YAML 解析存档
func (s *GardenSerializer) Decode(data []byte) (*GardenSaveData, error) {
	var saveData GardenSaveData
	if err := yaml.Unmarshal(data, &saveData); err != nil {
		return nil, fmt.Errorf("failed to unmarshal garden save: %w", err)
	}
	return &saveData, nil
}
