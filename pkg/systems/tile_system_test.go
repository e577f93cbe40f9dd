package systems

import (
	"errors"
	"testing"

	"github.com/decker502/pollen/pkg/components"
	"github.com/decker502/pollen/pkg/ecs"
	"github.com/decker502/pollen/pkg/flower"
)

func TestNewTileSystem(t *testing.T) {
	em := ecs.NewEntityManager()
	tiles, err := NewTileSystem(em, 3, 4, map[string]float64{components.AttrFertility: 2}, nil)
	if err != nil {
		t.Fatalf("NewTileSystem() failed: %v", err)
	}

	// 1 个网格实体 + 12 个地块实体
	if em.EntityCount() != 13 {
		t.Errorf("Expected 13 entities, got %d", em.EntityCount())
	}

	grid := tiles.Grid()
	if grid == nil || grid.Rows != 3 || grid.Cols != 4 {
		t.Fatalf("Unexpected grid: %+v", grid)
	}

	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			_, tile, err := tiles.TileAt(row, col)
			if err != nil {
				t.Fatalf("TileAt(%d, %d) failed: %v", row, col, err)
			}
			if tile.Row != row || tile.Col != col {
				t.Errorf("Tile at (%d, %d) reports (%d, %d)", row, col, tile.Row, tile.Col)
			}
			if tile.Attribute(components.AttrFertility) != 2 {
				t.Errorf("Tile (%d, %d) fertility = %f, want 2", row, col, tile.Attribute(components.AttrFertility))
			}
		}
	}

	// 每个地块的属性表相互独立
	_, a, _ := tiles.TileAt(0, 0)
	_, b, _ := tiles.TileAt(0, 1)
	a.AddAttribute(components.AttrFertility, 1)
	if b.Attribute(components.AttrFertility) != 2 {
		t.Error("Tiles should not share attribute maps")
	}
}

func TestNewTileSystemInvalidSize(t *testing.T) {
	for _, size := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		if _, err := NewTileSystem(ecs.NewEntityManager(), size[0], size[1], nil, nil); err == nil {
			t.Errorf("Expected error for size %dx%d", size[0], size[1])
		}
	}
}

func TestTileAtOutOfBounds(t *testing.T) {
	_, tiles := newTestGarden(t, 2, 2, nil)

	tests := []struct{ row, col int }{{-1, 0}, {0, -1}, {2, 0}, {0, 2}}
	for _, tt := range tests {
		if _, _, err := tiles.TileAt(tt.row, tt.col); !errors.Is(err, ErrInvalidTile) {
			t.Errorf("TileAt(%d, %d) error = %v, want ErrInvalidTile", tt.row, tt.col, err)
		}
	}
}

func TestPlantFlower(t *testing.T) {
	em, tiles := newTestGarden(t, 3, 3, nil)
	ft := pollinatorType()

	flowerID, err := tiles.PlantFlower(1, 2, ft, 1)
	if err != nil {
		t.Fatalf("PlantFlower() failed: %v", err)
	}

	tileID, tile, _ := tiles.TileAt(1, 2)
	if tile.Flower != flowerID {
		t.Errorf("Tile should hold flower %d, got %d", flowerID, tile.Flower)
	}

	f, ok := ecs.GetComponent[*flower.Flower](em, flowerID)
	if !ok {
		t.Fatal("Planted entity should carry a flower")
	}
	if f.TileID() != tileID {
		t.Errorf("Flower should record tile %d, got %d", tileID, f.TileID())
	}
	if f.RangeBonus != 1 {
		t.Errorf("RangeBonus = %d, want 1", f.RangeBonus)
	}
	if got := tile.Attribute("pollinator"); got != 1 {
		t.Errorf("Added-effect should run once, pollinator = %f", got)
	}

	gotID, gotFlower, ok := tiles.FlowerAt(1, 2)
	if !ok || gotID != flowerID || gotFlower != f {
		t.Errorf("FlowerAt(1, 2) = (%d, %p, %v), want (%d, %p, true)", gotID, gotFlower, ok, flowerID, f)
	}
	if _, _, ok := tiles.FlowerAt(0, 0); ok {
		t.Error("FlowerAt on empty tile should report false")
	}

	if _, err := tiles.PlantFlower(1, 2, ft, 0); !errors.Is(err, ErrTileOccupied) {
		t.Errorf("Second PlantFlower error = %v, want ErrTileOccupied", err)
	}
	if _, err := tiles.PlantFlower(5, 5, ft, 0); !errors.Is(err, ErrInvalidTile) {
		t.Errorf("Out of bounds PlantFlower error = %v, want ErrInvalidTile", err)
	}
}

func TestUprootFlower(t *testing.T) {
	visuals := &recordingVisuals{}
	em, tiles := newTestGarden(t, 2, 2, visuals)

	flowerID, err := tiles.PlantFlower(0, 0, pollinatorType(), 0)
	if err != nil {
		t.Fatalf("PlantFlower() failed: %v", err)
	}
	f, _ := ecs.GetComponent[*flower.Flower](em, flowerID)

	if err := tiles.UprootFlower(0, 0); err != nil {
		t.Fatalf("UprootFlower() failed: %v", err)
	}

	_, tile, _ := tiles.TileAt(0, 0)
	if tile.HasFlower() {
		t.Error("Tile should be empty after uprooting")
	}
	if got := tile.Attribute("pollinator"); got != 0 {
		t.Errorf("Removed-effect should undo the added-effect, pollinator = %f", got)
	}
	if f.HasTile() {
		t.Error("Flower should no longer record a tile")
	}
	if !f.IsDestroyed() {
		t.Error("Uprooted flower should be destroyed")
	}
	if len(visuals.particles) != 1 || !visuals.particles[0].destroyed {
		t.Error("Uprooted flower should release its particle handle")
	}
	if !em.IsMarkedForDestroy(flowerID) {
		t.Error("Uprooted flower entity should be marked for destroy")
	}

	if err := tiles.UprootFlower(0, 0); !errors.Is(err, ErrTileEmpty) {
		t.Errorf("Uprooting an empty tile error = %v, want ErrTileEmpty", err)
	}

	// 拔除后可以重新种植
	if _, err := tiles.PlantFlower(0, 0, pollinatorType(), 0); err != nil {
		t.Errorf("Replanting after uproot failed: %v", err)
	}
}

func TestFlowerAtClearsStaleReference(t *testing.T) {
	em, tiles := newTestGarden(t, 2, 2, nil)

	flowerID, err := tiles.PlantFlower(1, 1, pollinatorType(), 0)
	if err != nil {
		t.Fatalf("PlantFlower() failed: %v", err)
	}

	// 绕过 UprootFlower 直接删除实体，地块仍保留旧ID
	em.DestroyEntity(flowerID)
	em.RemoveMarkedEntities()

	if _, _, ok := tiles.FlowerAt(1, 1); ok {
		t.Error("FlowerAt should not report a removed flower")
	}
	_, tile, _ := tiles.TileAt(1, 1)
	if tile.HasFlower() {
		t.Error("Stale flower reference should be cleared")
	}
	if _, err := tiles.PlantFlower(1, 1, pollinatorType(), 0); err != nil {
		t.Errorf("Tile should be plantable after clearing stale reference: %v", err)
	}
}

func TestRestoreFlowerSkipsAddedEffects(t *testing.T) {
	em, tiles := newTestGarden(t, 2, 2, nil)

	flowerID, err := tiles.RestoreFlower(1, 1, pollinatorType(), 0, 4, 12, 1.5)
	if err != nil {
		t.Fatalf("RestoreFlower() failed: %v", err)
	}

	tileID, tile, _ := tiles.TileAt(1, 1)
	if tile.Attribute("pollinator") != 0 {
		t.Error("RestoreFlower must not fire added-effects")
	}

	f, _ := ecs.GetComponent[*flower.Flower](em, flowerID)
	if f.TileID() != tileID || tile.Flower != flowerID {
		t.Error("RestoreFlower should link flower and tile both ways")
	}
	if f.CurrentPollen() != 4 || f.TotalPollen() != 12 || f.RegenTimer() != 1.5 {
		t.Errorf("Restored counters = (%f, %f, %f), want (4, 12, 1.5)", f.CurrentPollen(), f.TotalPollen(), f.RegenTimer())
	}

	if _, err := tiles.RestoreFlower(1, 1, pollinatorType(), 0, 0, 0, 0); !errors.Is(err, ErrTileOccupied) {
		t.Errorf("Restoring onto an occupied tile error = %v, want ErrTileOccupied", err)
	}
}
