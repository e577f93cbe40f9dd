package flower

import "image/color"

// 视觉层接口
// 花朵只调用这些接口，不解释其实现（渲染、粒子、位置由外部提供）

// Target 可被粒子追踪的目标（如采集者）
type Target interface {
	Position() (x, y float64)
}

// PollenBar 花粉进度条句柄
type PollenBar interface {
	// SetPercentage 设置填充比例 [0, 1]
	SetPercentage(p float64)
	// SetMaxed 显示"终生产量已满"状态
	SetMaxed()
	SetPosition(x, y float64)
	Destroy()
}

// PollenParticles 花粉粒子句柄
type PollenParticles interface {
	// Emit 以指定颜色发射 count 个粒子
	Emit(count int, c color.RGBA)
	// SetTarget 让粒子飞向目标
	SetTarget(target Target)
	SetPosition(x, y float64)
	Destroy()
}

// Transform 花朵本体的显示句柄
type Transform interface {
	SetPosition(x, y float64)
	Destroy()
}

// VisualFactory 创建花朵视觉句柄的工厂
// 每次调用返回一个新句柄，句柄归调用的花朵独占
type VisualFactory interface {
	CreatePollenBar() PollenBar
	CreatePollenParticles() PollenParticles
	CreateFlowerTransform() Transform
}

// NopVisuals 不做任何事情的视觉工厂，用于无界面运行
type NopVisuals struct{}

func (NopVisuals) CreatePollenBar() PollenBar             { return nopHandle{} }
func (NopVisuals) CreatePollenParticles() PollenParticles { return nopHandle{} }
func (NopVisuals) CreateFlowerTransform() Transform       { return nopHandle{} }

type nopHandle struct{}

func (nopHandle) SetPercentage(float64)        {}
func (nopHandle) SetMaxed()                    {}
func (nopHandle) Emit(int, color.RGBA)         {}
func (nopHandle) SetTarget(Target)             {}
func (nopHandle) SetPosition(float64, float64) {}
func (nopHandle) Destroy()                     {}
