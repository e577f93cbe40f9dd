package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/pollen/pkg/components"
	"github.com/decker502/pollen/pkg/ecs"
	"github.com/decker502/pollen/pkg/entities"
	"github.com/decker502/pollen/pkg/flower"
)

// 种植相关的错误
var (
	// ErrInvalidTile 坐标超出花园网格
	ErrInvalidTile = errors.New("invalid tile position")
	// ErrTileOccupied 地块已被其他花朵占用
	ErrTileOccupied = errors.New("tile already occupied")
	// ErrTileEmpty 地块上没有花朵
	ErrTileEmpty = errors.New("tile has no flower")
)

// TileSystem 管理花园网格和地块占用
//
// 网格本身是一个挂载 GardenGridComponent 的实体，每个格子是一个挂载
// MapTileComponent 的实体。TileSystem 实现 flower.TileLookup，
// 花朵通过它按实体ID找到所在地块。
type TileSystem struct {
	entityManager *ecs.EntityManager
	gridEntity    ecs.EntityID
	visuals       flower.VisualFactory
}

// NewTileSystem 创建花园网格及所有地块实体
// 参数:
//   - em: EntityManager 实例
//   - rows, cols: 网格尺寸（必须为正数）
//   - initialAttributes: 每个地块的初始属性，可为 nil
//   - visuals: 新种下花朵使用的视觉工厂，nil 时使用 flower.NopVisuals
//
// 返回:
//   - *TileSystem: 网格系统实例
//   - error: 尺寸非法时返回错误
func NewTileSystem(em *ecs.EntityManager, rows, cols int, initialAttributes map[string]float64, visuals flower.VisualFactory) (*TileSystem, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid garden size %dx%d", rows, cols)
	}
	if visuals == nil {
		visuals = flower.NopVisuals{}
	}

	grid := &components.GardenGridComponent{
		Rows:  rows,
		Cols:  cols,
		Tiles: make([]ecs.EntityID, rows*cols),
	}
	gridEntity := em.CreateEntity()
	ecs.AddComponent(em, gridEntity, grid)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			tile := components.NewMapTileComponent(row, col)
			for name, value := range initialAttributes {
				tile.SetAttribute(name, value)
			}
			tileEntity := em.CreateEntity()
			ecs.AddComponent(em, tileEntity, tile)
			ecs.AddComponent(em, tileEntity, &components.PositionComponent{X: col, Y: row})
			grid.Tiles[row*cols+col] = tileEntity
		}
	}

	log.Printf("[TileSystem] Created %dx%d garden (grid entity %d)", rows, cols, gridEntity)

	return &TileSystem{
		entityManager: em,
		gridEntity:    gridEntity,
		visuals:       visuals,
	}, nil
}

// GridEntity 返回网格实体ID
func (s *TileSystem) GridEntity() ecs.EntityID {
	return s.gridEntity
}

// Grid 返回网格组件
func (s *TileSystem) Grid() *components.GardenGridComponent {
	grid, _ := ecs.GetComponent[*components.GardenGridComponent](s.entityManager, s.gridEntity)
	return grid
}

// Tile 实现 flower.TileLookup
func (s *TileSystem) Tile(id ecs.EntityID) (*components.MapTileComponent, bool) {
	if id == 0 {
		return nil, false
	}
	return ecs.GetComponent[*components.MapTileComponent](s.entityManager, id)
}

// TileAt 返回 (row, col) 处的地块实体ID和组件
func (s *TileSystem) TileAt(row, col int) (ecs.EntityID, *components.MapTileComponent, error) {
	grid := s.Grid()
	if grid == nil {
		return 0, nil, fmt.Errorf("garden grid entity %d missing", s.gridEntity)
	}
	if !grid.InBounds(row, col) {
		return 0, nil, fmt.Errorf("%w: row=%d, col=%d (garden is %dx%d)", ErrInvalidTile, row, col, grid.Rows, grid.Cols)
	}

	tileID := grid.TileAt(row, col)
	tile, ok := s.Tile(tileID)
	if !ok {
		return 0, nil, fmt.Errorf("tile entity %d at row=%d, col=%d missing", tileID, row, col)
	}
	return tileID, tile, nil
}

// FlowerAt 返回 (row, col) 处的花朵实体ID和花朵
// 地块为空或坐标非法时 ok 为 false；指向已删除实体的地块会被清空
func (s *TileSystem) FlowerAt(row, col int) (ecs.EntityID, *flower.Flower, bool) {
	_, tile, err := s.TileAt(row, col)
	if err != nil || !tile.HasFlower() {
		return 0, nil, false
	}
	if !s.entityManager.EntityExists(tile.Flower) {
		// 花朵实体已被清理，释放地块
		log.Printf("[TileSystem] Warning: tile (%d, %d) referenced missing flower %d", row, col, tile.Flower)
		tile.RemoveFlower()
		return 0, nil, false
	}
	f, ok := ecs.GetComponent[*flower.Flower](s.entityManager, tile.Flower)
	if !ok {
		return 0, nil, false
	}
	return tile.Flower, f, true
}

// PlantFlower 在 (row, col) 种下一朵花
// 地块记录占用后，花朵才记录地块并触发放置效果
//
// 返回:
//   - ecs.EntityID: 新花朵实体ID
//   - error: 坐标非法（ErrInvalidTile）或已被占用（ErrTileOccupied）
func (s *TileSystem) PlantFlower(row, col int, flowerType *flower.FlowerType, rangeBonus int) (ecs.EntityID, error) {
	tileID, tile, err := s.TileAt(row, col)
	if err != nil {
		return 0, err
	}
	if tile.HasFlower() {
		return 0, fmt.Errorf("%w: row=%d, col=%d holds flower %d", ErrTileOccupied, row, col, tile.Flower)
	}

	flowerID, f, err := entities.NewFlowerEntity(s.entityManager, flowerType, s.visuals, s, rangeBonus, col, row)
	if err != nil {
		return 0, fmt.Errorf("failed to create flower at row=%d, col=%d: %w", row, col, err)
	}

	tile.Flower = flowerID
	f.AddToTile(tileID)

	log.Printf("[TileSystem] Planted %s (entity %d) at row=%d, col=%d", flowerType.Name, flowerID, row, col)
	return flowerID, nil
}

// UprootFlower 拔除 (row, col) 处的花朵
// 触发移除效果，清除地块占用，销毁花朵并标记实体待删除
func (s *TileSystem) UprootFlower(row, col int) error {
	tileID, tile, err := s.TileAt(row, col)
	if err != nil {
		return err
	}
	if !tile.HasFlower() {
		return fmt.Errorf("%w: row=%d, col=%d", ErrTileEmpty, row, col)
	}

	flowerID := tile.Flower
	f, ok := ecs.GetComponent[*flower.Flower](s.entityManager, flowerID)
	if !ok {
		// 地块指向已不存在的花朵，直接清除占用
		log.Printf("[TileSystem] Warning: tile (%d, %d) referenced missing flower %d", row, col, flowerID)
		tile.RemoveFlower()
		return nil
	}

	f.RemoveFromTile(tileID)
	tile.RemoveFlower()
	f.Destroy()
	s.entityManager.DestroyEntity(flowerID)

	log.Printf("[TileSystem] Uprooted %s (entity %d) from row=%d, col=%d", f.Type().Name, flowerID, row, col)
	return nil
}

// TileEntities 返回所有地块实体ID（行优先）
func (s *TileSystem) TileEntities() []ecs.EntityID {
	grid := s.Grid()
	if grid == nil {
		return nil
	}
	ids := make([]ecs.EntityID, len(grid.Tiles))
	copy(ids, grid.Tiles)
	return ids
}

// RestoreFlower 按存档恢复一朵花
// 与 PlantFlower 不同，只建立占用关系（SetTile），不会再次触发放置效果，
// 效果累积的结果已经保存在地块属性中。
func (s *TileSystem) RestoreFlower(row, col int, flowerType *flower.FlowerType, rangeBonus int, currentPollen, totalPollen, regenTimer float64) (ecs.EntityID, error) {
	tileID, tile, err := s.TileAt(row, col)
	if err != nil {
		return 0, err
	}
	if tile.HasFlower() {
		return 0, fmt.Errorf("%w: row=%d, col=%d holds flower %d", ErrTileOccupied, row, col, tile.Flower)
	}

	flowerID, f, err := entities.NewFlowerEntity(s.entityManager, flowerType, s.visuals, s, rangeBonus, col, row)
	if err != nil {
		return 0, fmt.Errorf("failed to restore flower at row=%d, col=%d: %w", row, col, err)
	}

	tile.Flower = flowerID
	f.SetTile(tileID)
	f.Restore(currentPollen, totalPollen, regenTimer)
	return flowerID, nil
}
