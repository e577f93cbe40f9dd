package systems

import (
	"testing"

	"github.com/decker502/pollen/pkg/components"
	"github.com/decker502/pollen/pkg/ecs"
	"github.com/decker502/pollen/pkg/entities"
	"github.com/decker502/pollen/pkg/flower"
)

func harvestType() *flower.FlowerType {
	return &flower.FlowerType{
		Name:           "daisy",
		MaxPollen:      10,
		LifetimePollen: 100,
		RegenTimer:     2,
	}
}

func TestHarvestSystemCollectsAndCoolsDown(t *testing.T) {
	visuals := &recordingVisuals{}
	em, tiles := newTestGarden(t, 3, 3, visuals)
	system := NewHarvestSystem(em)

	flowerID, _ := tiles.PlantFlower(1, 1, harvestType(), 0)
	f, _ := ecs.GetComponent[*flower.Flower](em, flowerID)
	f.AddPollen(10)

	beeID := entities.NewCollectorEntity(em, components.CollectorComponent{
		Name:          "bee",
		X:             0,
		Y:             0,
		Reach:         1,
		HarvestAmount: 3,
		Cooldown:      1,
	})
	bee, _ := ecs.GetComponent[*components.CollectorComponent](em, beeID)
	inventory, _ := ecs.GetComponent[*components.InventoryComponent](em, beeID)

	system.Update(0.1)
	if inventory.Pollen != 3 {
		t.Errorf("First harvest should deposit 3, got %f", inventory.Pollen)
	}
	if f.CurrentPollen() != 7 {
		t.Errorf("Flower should keep 7, got %f", f.CurrentPollen())
	}
	if !f.IsRegenning() {
		t.Error("Harvested flower should be regenning")
	}
	if bee.CooldownLeft != 1 {
		t.Errorf("Collector cooldown should reset to 1, got %f", bee.CooldownLeft)
	}

	// 粒子飞向采集者，并发射了一次
	p := visuals.particles[0]
	if p.target == nil {
		t.Fatal("Harvest should target the flower's particles at the collector")
	}
	if x, y := p.target.Position(); x != 0.5 || y != 0.5 {
		t.Errorf("Particle target at (%f, %f), want (0.5, 0.5)", x, y)
	}
	if p.emitted != 1 {
		t.Errorf("Expected 1 particle burst, got %d", p.emitted)
	}

	// 冷却中
	system.Update(0.5)
	if inventory.Pollen != 3 {
		t.Errorf("Collector on cooldown should not harvest, got %f", inventory.Pollen)
	}

	// 冷却结束，但花朵仍在休眠
	system.Update(0.5)
	if inventory.Pollen != 3 {
		t.Errorf("Regenning flower should be skipped, got %f", inventory.Pollen)
	}
	if bee.CooldownLeft != 0 {
		t.Errorf("Collector with nothing harvested should stay ready, cooldown=%f", bee.CooldownLeft)
	}

	if system.TotalHarvested() != 3 || system.HarvestCount() != 1 {
		t.Errorf("Stats = (%f, %d), want (3, 1)", system.TotalHarvested(), system.HarvestCount())
	}
}

func TestHarvestSystemRangeBonus(t *testing.T) {
	tests := []struct {
		name       string
		rangeBonus int
		want       float64
	}{
		{name: "out of reach", rangeBonus: 1, want: 0},
		{name: "bonus extends reach", rangeBonus: 2, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em, tiles := newTestGarden(t, 3, 3, nil)
			system := NewHarvestSystem(em)

			flowerID, _ := tiles.PlantFlower(2, 2, harvestType(), tt.rangeBonus)
			f, _ := ecs.GetComponent[*flower.Flower](em, flowerID)
			f.AddPollen(5)

			beeID := entities.NewCollectorEntity(em, components.CollectorComponent{
				Name:          "bee",
				HarvestAmount: 5,
			})
			inventory, _ := ecs.GetComponent[*components.InventoryComponent](em, beeID)

			system.Update(0.1)
			if inventory.Pollen != tt.want {
				t.Errorf("Inventory = %f, want %f", inventory.Pollen, tt.want)
			}
		})
	}
}

func TestHarvestSystemOnlyFull(t *testing.T) {
	em, tiles := newTestGarden(t, 1, 1, nil)
	system := NewHarvestSystem(em)

	flowerID, _ := tiles.PlantFlower(0, 0, harvestType(), 0)
	f, _ := ecs.GetComponent[*flower.Flower](em, flowerID)
	f.AddPollen(5)

	beeID := entities.NewCollectorEntity(em, components.CollectorComponent{
		Name:          "picky",
		HarvestAmount: 10,
		OnlyFull:      true,
	})
	inventory, _ := ecs.GetComponent[*components.InventoryComponent](em, beeID)

	system.Update(0.1)
	if inventory.Pollen != 0 {
		t.Errorf("OnlyFull collector should skip half-full flower, got %f", inventory.Pollen)
	}

	f.AddPollen(5)
	system.Update(0.1)
	if inventory.Pollen != 10 {
		t.Errorf("OnlyFull collector should drain a full flower, got %f", inventory.Pollen)
	}
}

func TestHarvestSystemDrainsToDeath(t *testing.T) {
	em, tiles := newTestGarden(t, 1, 1, nil)
	harvest := NewHarvestSystem(em)
	flowers := NewFlowerSystem(em)

	ft := &flower.FlowerType{Name: "brief", PollenGenerationRate: 4, MaxPollen: 10, LifetimePollen: 4}
	flowerID, _ := tiles.PlantFlower(0, 0, ft, 0)
	beeID := entities.NewCollectorEntity(em, components.CollectorComponent{Name: "bee", HarvestAmount: 10})

	flowers.Update(1.0) // 产出 4，达到终生上限
	harvest.Update(0.1) // 完全采空 → 死亡
	flowers.Update(0.1) // 清理

	inventory, _ := ecs.GetComponent[*components.InventoryComponent](em, beeID)
	if inventory.Pollen != 4 {
		t.Errorf("Inventory = %f, want 4", inventory.Pollen)
	}
	if em.EntityExists(flowerID) {
		t.Error("Drained flower at lifetime cap should be removed")
	}
	if _, _, ok := tiles.FlowerAt(0, 0); ok {
		t.Error("Tile should be free after the flower died")
	}
}

func TestChebyshevDistance(t *testing.T) {
	tests := []struct {
		x1, y1, x2, y2 float64
		want           float64
	}{
		{0, 0, 0, 0, 0},
		{0, 0, 2, 1, 2},
		{4, 2, 1, 3, 3},
		{1.5, 1.5, 2, 0, 1.5},
	}
	for _, tt := range tests {
		if got := ChebyshevDistance(tt.x1, tt.y1, tt.x2, tt.y2); got != tt.want {
			t.Errorf("ChebyshevDistance(%v, %v, %v, %v) = %v, want %v", tt.x1, tt.y1, tt.x2, tt.y2, got, tt.want)
		}
	}
}
