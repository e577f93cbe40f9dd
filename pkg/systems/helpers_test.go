package systems

import (
	"image/color"
	"testing"

	"github.com/decker502/pollen/pkg/ecs"
	"github.com/decker502/pollen/pkg/flower"
)

// recordingVisuals 记录花朵视觉句柄调用的测试工厂
type recordingVisuals struct {
	particles []*recordingParticles
}

func (v *recordingVisuals) CreatePollenBar() flower.PollenBar { return flower.NopVisuals{}.CreatePollenBar() }
func (v *recordingVisuals) CreateFlowerTransform() flower.Transform {
	return flower.NopVisuals{}.CreateFlowerTransform()
}
func (v *recordingVisuals) CreatePollenParticles() flower.PollenParticles {
	p := &recordingParticles{}
	v.particles = append(v.particles, p)
	return p
}

type recordingParticles struct {
	emitted   int
	target    flower.Target
	destroyed bool
}

func (p *recordingParticles) Emit(count int, _ color.RGBA)   { p.emitted += count }
func (p *recordingParticles) SetTarget(target flower.Target) { p.target = target }
func (p *recordingParticles) SetPosition(_, _ float64)       {}
func (p *recordingParticles) Destroy()                       { p.destroyed = true }

// newTestGarden 创建测试用的花园
func newTestGarden(t *testing.T, rows, cols int, visuals flower.VisualFactory) (*ecs.EntityManager, *TileSystem) {
	t.Helper()
	em := ecs.NewEntityManager()
	tiles, err := NewTileSystem(em, rows, cols, nil, visuals)
	if err != nil {
		t.Fatalf("NewTileSystem() failed: %v", err)
	}
	return em, tiles
}

// pollinatorType 放置 +1 / 移除 -1 传粉者属性的种类
func pollinatorType() *flower.FlowerType {
	return &flower.FlowerType{
		Name:                 "daisy",
		PollenGenerationRate: 2,
		MaxPollen:            10,
		LifetimePollen:       30,
		RegenTimer:           3,
		OnAddedEffects:       []flower.Effect{flower.AttributeEffect{Attribute: "pollinator", Amount: 1}},
		OnRemovedEffects:     []flower.Effect{flower.AttributeEffect{Attribute: "pollinator", Amount: -1}},
	}
}
