package game

// 模拟速度范围
const (
	MinSpeed = 0.25
	MaxSpeed = 8.0
)

// GameState 存储玩家交互状态
// 这是一个单例，场景和输入处理共享同一份选择与速度设置
type GameState struct {
	// 种植状态
	IsPlantingMode bool   // 是否处于种植模式
	SelectedFlower string // 当前选择的花朵种类名

	// 模拟控制
	Paused bool    // 是否暂停
	Speed  float64 // 模拟速度倍率
}

// 全局单例实例
var globalGameState *GameState

// GetGameState 返回全局 GameState 单例
// 使用延迟初始化模式，确保整个程序生命周期只有一个实例
func GetGameState() *GameState {
	if globalGameState == nil {
		globalGameState = NewGameState()
	}
	return globalGameState
}

// NewGameState 创建默认状态（正常速度、未选择种类）
func NewGameState() *GameState {
	return &GameState{Speed: 1}
}

// EnterPlantingMode 进入种植模式并记录选择的花朵种类
func (gs *GameState) EnterPlantingMode(flowerName string) {
	gs.IsPlantingMode = true
	gs.SelectedFlower = flowerName
}

// ExitPlantingMode 退出种植模式
func (gs *GameState) ExitPlantingMode() {
	gs.IsPlantingMode = false
}

// GetPlantingMode 返回是否处于种植模式以及选择的种类
func (gs *GameState) GetPlantingMode() (bool, string) {
	return gs.IsPlantingMode, gs.SelectedFlower
}

// TogglePause 切换暂停状态
func (gs *GameState) TogglePause() {
	gs.Paused = !gs.Paused
}

// ScaleSpeed 按倍率调整模拟速度，结果限制在 [MinSpeed, MaxSpeed]
func (gs *GameState) ScaleSpeed(factor float64) {
	speed := gs.Speed * factor
	if speed < MinSpeed {
		speed = MinSpeed
	}
	if speed > MaxSpeed {
		speed = MaxSpeed
	}
	gs.Speed = speed
}

// ScaledDelta 返回按暂停和速度换算后的帧间隔
func (gs *GameState) ScaledDelta(deltaTime float64) float64 {
	if gs.Paused {
		return 0
	}
	return deltaTime * gs.Speed
}
