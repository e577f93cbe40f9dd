package systems

import (
	"testing"

	"github.com/decker502/pollen/pkg/components"
	"github.com/decker502/pollen/pkg/ecs"
	"github.com/decker502/pollen/pkg/flower"
)

func TestFlowerSystemUpdatesFlowers(t *testing.T) {
	em, tiles := newTestGarden(t, 2, 2, nil)
	system := NewFlowerSystem(em)

	ft := &flower.FlowerType{
		Name:                 "clover",
		PollenGenerationRate: 2,
		MaxPollen:            10,
		LifetimePollen:       30,
		OnUpdateEffects:      []flower.Effect{flower.AttributeRateEffect{Attribute: components.AttrFertility, PerSecond: 0.5}},
	}
	flowerID, err := tiles.PlantFlower(0, 1, ft, 0)
	if err != nil {
		t.Fatalf("PlantFlower() failed: %v", err)
	}

	system.Update(1.0)
	system.Update(1.0)

	f, _ := ecs.GetComponent[*flower.Flower](em, flowerID)
	if f.CurrentPollen() != 4 || f.TotalPollen() != 4 {
		t.Errorf("After 2s at rate 2: current=%f total=%f, want 4/4", f.CurrentPollen(), f.TotalPollen())
	}

	_, tile, _ := tiles.TileAt(0, 1)
	if got := tile.Attribute(components.AttrFertility); got != 1 {
		t.Errorf("Update effect should add 0.5/s for 2s, fertility = %f", got)
	}

	// 其他地块不受影响
	_, other, _ := tiles.TileAt(0, 0)
	if other.Attribute(components.AttrFertility) != 0 {
		t.Error("Update effect should only touch the flower's tile")
	}
}

func TestFlowerSystemSweepsDeadFlowers(t *testing.T) {
	em, tiles := newTestGarden(t, 2, 2, nil)
	system := NewFlowerSystem(em)

	ft := &flower.FlowerType{
		Name:                 "short",
		PollenGenerationRate: 2,
		MaxPollen:            10,
		LifetimePollen:       2,
	}
	flowerID, err := tiles.PlantFlower(1, 1, ft, 0)
	if err != nil {
		t.Fatalf("PlantFlower() failed: %v", err)
	}

	system.Update(1.0)
	f, _ := ecs.GetComponent[*flower.Flower](em, flowerID)
	if f.TotalPollen() != 2 {
		t.Fatalf("Expected lifetime reached, total=%f", f.TotalPollen())
	}

	// 终生产量已满后完全采空 → 死亡
	if taken := f.HarvestPollen(10); taken != 2 {
		t.Errorf("HarvestPollen took %f, want 2", taken)
	}
	if !f.IsDead() {
		t.Fatal("Flower should die after full drain at lifetime cap")
	}

	_, tile, _ := tiles.TileAt(1, 1)
	if tile.HasFlower() {
		t.Error("Dead flower should have released its tile")
	}

	if live := system.LiveFlowers(); len(live) != 0 {
		t.Errorf("LiveFlowers should skip dead flowers, got %v", live)
	}

	system.Update(1.0)
	if em.EntityExists(flowerID) {
		t.Error("Dead flower entity should be removed by the next update")
	}

	// 地块可以再次种植
	if _, err := tiles.PlantFlower(1, 1, ft, 0); err != nil {
		t.Errorf("Replanting on a freed tile failed: %v", err)
	}
}

func TestFlowerSystemRemovesUprootedFlowers(t *testing.T) {
	em, tiles := newTestGarden(t, 1, 2, nil)
	system := NewFlowerSystem(em)

	first, _ := tiles.PlantFlower(0, 0, pollinatorType(), 0)
	second, _ := tiles.PlantFlower(0, 1, pollinatorType(), 0)

	if err := tiles.UprootFlower(0, 0); err != nil {
		t.Fatalf("UprootFlower() failed: %v", err)
	}
	system.Update(0.5)

	if em.EntityExists(first) {
		t.Error("Uprooted flower entity should be removed")
	}
	if !em.EntityExists(second) {
		t.Fatal("Other flower should survive")
	}
	f, _ := ecs.GetComponent[*flower.Flower](em, second)
	if f.CurrentPollen() != 1 {
		t.Errorf("Remaining flower should keep growing, current=%f", f.CurrentPollen())
	}

	live := system.LiveFlowers()
	if len(live) != 1 || live[0] != second {
		t.Errorf("LiveFlowers = %v, want [%d]", live, second)
	}
}
