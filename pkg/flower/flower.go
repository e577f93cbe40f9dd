package flower

import (
	"log"

	"github.com/decker502/pollen/pkg/components"
	"github.com/decker502/pollen/pkg/ecs"
	"github.com/decker502/pollen/pkg/types"
)

// TileLookup 根据实体ID查找地块
// 花朵只保存地块的实体ID（弱引用），需要访问地块时通过该接口查找
type TileLookup interface {
	Tile(id ecs.EntityID) (*components.MapTileComponent, bool)
}

// Flower 花朵实体的状态机
//
// 状态：
//   - Growing: 冷却为 0 且未满，每帧按速率生产花粉
//   - Full: 花粉达到容量上限
//   - Regenning: 采集后冷却中，暂停生产
//   - Dead: 终态，终生产量耗尽后被完全采空时进入
//
// Flower 独占其视觉句柄（进度条、粒子、本体），在所有销毁路径上释放且只释放一次。
// Flower 不拥有地块，只记录地块实体ID。
type Flower struct {
	flowerType *FlowerType

	currentPollen float64
	totalPollen   float64
	regenTimer    float64
	isDead        bool
	destroyed     bool

	tile  ecs.EntityID // 所在地块，0 表示未放置
	tiles TileLookup

	pollenBar       PollenBar
	pollenParticles PollenParticles
	flowerTransform Transform

	// RangeBonus 采集距离加成，由外部放置/采集逻辑使用
	RangeBonus int
}

// NewFlower 创建一朵新花
//
// 参数：
//   - flowerType: 共享的种类配置（不可为 nil）
//   - visuals: 视觉句柄工厂，nil 时使用 NopVisuals
//   - tiles: 地块查找器，nil 时花朵无法对地块触发效果
//
// 返回的花朵所有计数器为 0，且未放置在任何地块上
func NewFlower(flowerType *FlowerType, visuals VisualFactory, tiles TileLookup) *Flower {
	if visuals == nil {
		visuals = NopVisuals{}
	}
	return &Flower{
		flowerType:      flowerType,
		tiles:           tiles,
		pollenBar:       visuals.CreatePollenBar(),
		pollenParticles: visuals.CreatePollenParticles(),
		flowerTransform: visuals.CreateFlowerTransform(),
	}
}

// Type 返回花朵种类
func (f *Flower) Type() *FlowerType { return f.flowerType }

// CurrentPollen 当前储存的花粉
func (f *Flower) CurrentPollen() float64 { return f.currentPollen }

// TotalPollen 一生累计生产的花粉（被采集不会减少）
func (f *Flower) TotalPollen() float64 { return f.totalPollen }

// RegenTimer 剩余冷却时间（秒）
func (f *Flower) RegenTimer() float64 { return f.regenTimer }

// IsDead 是否已死亡
func (f *Flower) IsDead() bool { return f.isDead }

// IsDestroyed 视觉句柄是否已释放
func (f *Flower) IsDestroyed() bool { return f.destroyed }

// TileID 返回所在地块实体ID，未放置时为 0
func (f *Flower) TileID() ecs.EntityID { return f.tile }

// State 返回当前状态机状态
func (f *Flower) State() types.FlowerState {
	switch {
	case f.isDead:
		return types.FlowerDead
	case f.IsRegenning():
		return types.FlowerRegenning
	case f.IsFull():
		return types.FlowerFull
	default:
		return types.FlowerGrowing
	}
}

// AddToTile 记录地块关系，并对传入的地块按顺序触发放置效果
// 效果作用于参数指定的地块，而不是之前记录的地块
func (f *Flower) AddToTile(tileID ecs.EntityID) {
	f.tile = tileID
	tile, ok := f.lookupTile(tileID)
	if !ok {
		log.Printf("[Flower] Warning: tile %d not found, added-effects skipped", tileID)
		return
	}
	applyEffects(f.flowerType.OnAddedEffects, tile, 0)
}

// RemoveFromTile 对当前记录的地块触发移除效果，然后清除地块关系
// 参数仅用于核对，与记录不一致时以记录为准
func (f *Flower) RemoveFromTile(tileID ecs.EntityID) {
	if tileID != f.tile {
		log.Printf("[Flower] Warning: RemoveFromTile(%d) but flower is recorded on tile %d", tileID, f.tile)
	}
	if f.tile != 0 {
		if tile, ok := f.lookupTile(f.tile); ok {
			applyEffects(f.flowerType.OnRemovedEffects, tile, 0)
		}
	}
	f.tile = 0
}

// SetTile 只设置地块关系，不触发任何效果（存档恢复时使用）
func (f *Flower) SetTile(tileID ecs.EntityID) {
	f.tile = tileID
}

// HasTile 是否记录了地块关系
func (f *Flower) HasTile() bool {
	return f.tile != 0
}

// Update 推进一帧
//
// 冷却中只递减冷却（下限 0，本帧不生产）；否则按速率生产花粉。
// 之后上报填充比例，并在存活且已放置时按顺序触发每帧效果。
// 已销毁的花朵不再更新。
func (f *Flower) Update(step float64) {
	if f.destroyed {
		return
	}
	if step < 0 {
		step = 0
	}

	if f.regenTimer > 0 {
		f.regenTimer -= step
		if f.regenTimer < 0 {
			f.regenTimer = 0
		}
	} else {
		f.GeneratePollen(f.flowerType.PollenGenerationRate * step)
	}

	f.pollenBar.SetPercentage(f.currentPollen / f.flowerType.MaxPollen)

	if f.isDead || f.tile == 0 {
		return
	}
	if tile, ok := f.lookupTile(f.tile); ok {
		applyEffects(f.flowerType.OnUpdateEffects, tile, step)
	}
}

// IsFull 花粉是否达到容量上限
func (f *Flower) IsFull() bool {
	return f.currentPollen >= f.flowerType.MaxPollen
}

// IsRegenning 是否处于采集后的冷却中
func (f *Flower) IsRegenning() bool {
	return f.regenTimer > 0
}

// AddPollen 存入花粉，返回实际存入量
// 存入量被限制在剩余容量内；已满或 amount <= 0 时返回 0
func (f *Flower) AddPollen(amount float64) float64 {
	if amount <= 0 || f.IsFull() {
		return 0
	}

	space := f.flowerType.MaxPollen - f.currentPollen
	if amount > space {
		amount = space
	}
	f.currentPollen += amount
	if f.currentPollen > f.flowerType.MaxPollen {
		f.currentPollen = f.flowerType.MaxPollen
	}
	return amount
}

// GeneratePollen 生产花粉
//
// 累计产量达到终生上限后不再生产，只通知进度条显示"已满"。
// 否则通过 AddPollen 存入，并把实际存入量计入累计产量。
// 单次调用不按剩余终生额度截断，一次大步长可以越过上限，下一次调用才会被拦截。
// 已销毁的花朵不再生产。
func (f *Flower) GeneratePollen(amount float64) {
	if f.destroyed {
		return
	}
	if f.totalPollen >= f.flowerType.LifetimePollen {
		f.pollenBar.SetMaxed()
		return
	}
	f.totalPollen += f.AddPollen(amount)
}

// TakePollen 取走花粉，返回实际取走量
//
// 请求量不小于当前储量时视为完全采空；若此时累计产量已达终生上限，花朵死亡。
// 取走量非零时发射一个种类颜色的花粉粒子。
func (f *Flower) TakePollen(amount float64) float64 {
	if amount < 0 {
		amount = 0
	}

	drained := amount >= f.currentPollen
	if drained {
		amount = f.currentPollen
		f.currentPollen = 0
	} else {
		f.currentPollen -= amount
	}

	if amount > 0 && f.pollenParticles != nil {
		f.pollenParticles.Emit(1, f.flowerType.Color)
	}

	if drained && f.totalPollen >= f.flowerType.LifetimePollen {
		f.Die()
	}

	return amount
}

// HarvestPollen 采集花粉
// 无论是否有花粉可取，都会把冷却重置为种类的 RegenTimer
func (f *Flower) HarvestPollen(amount float64) float64 {
	f.regenTimer = f.flowerType.RegenTimer
	return f.TakePollen(amount)
}

// SetPosition 设置花朵在网格中的显示位置
// 进度条位于格子左下角，粒子和本体位于格子中心
func (f *Flower) SetPosition(x, y int) {
	fx, fy := float64(x), float64(y)
	if f.pollenBar != nil {
		f.pollenBar.SetPosition(fx, fy)
	}
	if f.pollenParticles != nil {
		f.pollenParticles.SetPosition(fx+0.5, fy+0.5)
	}
	if f.flowerTransform != nil {
		f.flowerTransform.SetPosition(fx+0.5, fy+0.5)
	}
}

// SetParticlesTarget 让花粉粒子飞向目标
func (f *Flower) SetParticlesTarget(target Target) {
	if f.pollenParticles != nil {
		f.pollenParticles.SetTarget(target)
	}
}

// Die 标记死亡并销毁
func (f *Flower) Die() {
	if f.isDead {
		return
	}
	f.isDead = true
	log.Printf("[Flower] %s died after producing %.2f pollen", f.flowerType.Name, f.totalPollen)
	f.Destroy()
}

// Destroy 释放视觉句柄，并让所在地块清除占用
//
// 不触发移除效果：只有显式的 RemoveFromTile 才会触发。
// 重复调用是安全的。
func (f *Flower) Destroy() {
	if f.destroyed {
		return
	}
	f.destroyed = true

	if f.pollenBar != nil {
		f.pollenBar.Destroy()
		f.pollenBar = nil
	}
	if f.pollenParticles != nil {
		f.pollenParticles.Destroy()
		f.pollenParticles = nil
	}
	if f.flowerTransform != nil {
		f.flowerTransform.Destroy()
		f.flowerTransform = nil
	}

	if f.tile != 0 {
		if tile, ok := f.lookupTile(f.tile); ok {
			tile.RemoveFlower()
		}
		f.tile = 0
	}
}

// Restore 恢复存档中的计数器，数值会被限制在合法范围内
func (f *Flower) Restore(currentPollen, totalPollen, regenTimer float64) {
	if currentPollen < 0 {
		currentPollen = 0
	}
	if currentPollen > f.flowerType.MaxPollen {
		currentPollen = f.flowerType.MaxPollen
	}
	if totalPollen < 0 {
		totalPollen = 0
	}
	if regenTimer < 0 {
		regenTimer = 0
	}
	f.currentPollen = currentPollen
	f.totalPollen = totalPollen
	f.regenTimer = regenTimer
}

func (f *Flower) lookupTile(id ecs.EntityID) (*components.MapTileComponent, bool) {
	if f.tiles == nil || id == 0 {
		return nil, false
	}
	return f.tiles.Tile(id)
}
