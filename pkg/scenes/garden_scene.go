package scenes

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/pollen/pkg/config"
	"github.com/decker502/pollen/pkg/game"
	"github.com/decker502/pollen/pkg/render"
	"github.com/decker502/pollen/pkg/utils"
)

// 场景名称（SceneFactory 使用）
const (
	SceneGarden = "garden" // 按配置新建花园
	SceneResume = "resume" // 从快速存档恢复
)

// 提示信息显示时间（秒）
const messageDuration = 2.5

// selectKeys 数字键 1-9 依次选择花朵种类
var selectKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// GardenScene 可交互的花园场景
//
// 操作：
//   - 数字键 1-9: 选择花朵种类
//   - 鼠标左键/触摸: 在空格子上种下选择的花朵，点击有花的格子则拔除
//   - 鼠标右键: 拔除格子上的花朵
//   - 空格: 暂停/继续
//   - +/-: 调整模拟速度
//   - F5/F9: 快速存档/读档
//   - R: 重新开始
type GardenScene struct {
	garden   *game.Garden
	renderer *render.PollenRenderer
	layout   utils.GridLayout

	catalog      *config.FlowerCatalog
	saveManager  *game.GardenSaveManager
	sceneManager *game.SceneManager
	state        *game.GameState

	message      string
	messageTimer float64
}

// NewGardenScene 根据花园配置创建场景
//
// 参数：
//   - gardenCfg: 花园布局配置
//   - catalog: 花朵种类集合
//   - saveManager: 存档管理器，可为 nil（禁用存档）
//   - sceneManager: 场景管理器，用于重新开始
//
// 返回：
//   - *GardenScene: 场景实例
//   - error: 花园创建失败时返回
func NewGardenScene(gardenCfg *config.GardenConfig, catalog *config.FlowerCatalog, saveManager *game.GardenSaveManager, sceneManager *game.SceneManager) (*GardenScene, error) {
	s := newGardenScene(gardenCfg.Rows, gardenCfg.Cols, catalog, saveManager, sceneManager)

	garden, err := game.NewGarden(gardenCfg, catalog, s.renderer)
	if err != nil {
		return nil, fmt.Errorf("failed to create garden: %w", err)
	}
	s.garden = garden
	return s, nil
}

// NewGardenSceneFromSave 从存档槽位恢复场景
func NewGardenSceneFromSave(slot string, catalog *config.FlowerCatalog, saveManager *game.GardenSaveManager, sceneManager *game.SceneManager) (*GardenScene, error) {
	if saveManager == nil {
		return nil, fmt.Errorf("no save manager")
	}
	// 网格尺寸以存档为准，读档后再设置布局
	s := newGardenScene(0, 0, catalog, saveManager, sceneManager)

	garden, err := saveManager.Load(slot, catalog, s.renderer)
	if err != nil {
		return nil, err
	}
	s.setGarden(garden, s.renderer)
	s.showMessage("Loaded " + slot)
	return s, nil
}

func newGardenScene(rows, cols int, catalog *config.FlowerCatalog, saveManager *game.GardenSaveManager, sceneManager *game.SceneManager) *GardenScene {
	layout := utils.NewGridLayout(rows, cols)
	state := game.GetGameState()
	if _, selected := state.GetPlantingMode(); selected == "" {
		if names := catalog.Names(); len(names) > 0 {
			state.EnterPlantingMode(names[0])
		}
	}

	return &GardenScene{
		renderer:     render.NewPollenRenderer(layout, 1),
		layout:       layout,
		catalog:      catalog,
		saveManager:  saveManager,
		sceneManager: sceneManager,
		state:        state,
	}
}

// Garden 返回当前花园
func (s *GardenScene) Garden() *game.Garden {
	return s.garden
}

// Update 处理输入并推进模拟
func (s *GardenScene) Update(deltaTime float64) {
	s.handleInput()

	scaled := s.state.ScaledDelta(deltaTime)
	s.garden.Update(scaled)
	s.renderer.Update(scaled)

	if s.messageTimer > 0 {
		s.messageTimer -= deltaTime
	}
}

func (s *GardenScene) handleInput() {
	names := s.catalog.Names()
	for i, key := range selectKeys {
		if i < len(names) && inpututil.IsKeyJustPressed(key) {
			s.state.EnterPlantingMode(names[i])
			s.showMessage("Selected " + names[i])
		}
	}

	// 点击空地块种花，点击有花的地块拔除
	if pressed, x, y := utils.IsPointerJustPressed(); pressed {
		if col, row, ok := s.layout.MouseToGridCoords(x, y); ok {
			if _, _, occupied := s.garden.Tiles().FlowerAt(row, col); occupied {
				s.uprootAt(row, col)
			} else {
				s.plantAt(row, col)
			}
		}
	}
	if pressed, x, y := utils.IsSecondaryJustPressed(); pressed {
		if col, row, ok := s.layout.MouseToGridCoords(x, y); ok {
			s.uprootAt(row, col)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.state.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		s.state.ScaleSpeed(2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		s.state.ScaleSpeed(0.5)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		s.quickSave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.quickLoad()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && s.sceneManager != nil {
		s.sceneManager.LoadScene(SceneGarden)
	}
}

// plantAt 在格子上种下当前选择的花朵
func (s *GardenScene) plantAt(row, col int) {
	planting, name := s.state.GetPlantingMode()
	if !planting || name == "" {
		s.showMessage("Select a flower with 1-9")
		return
	}
	if _, err := s.garden.Plant(name, row, col); err != nil {
		log.Printf("[GardenScene] Plant %s at (%d, %d) failed: %v", name, row, col, err)
		s.showMessage(err.Error())
	}
}

func (s *GardenScene) uprootAt(row, col int) {
	if err := s.garden.Uproot(row, col); err != nil {
		s.showMessage(err.Error())
	}
}

func (s *GardenScene) quickSave() {
	if s.saveManager == nil {
		s.showMessage("Saving disabled")
		return
	}
	if err := s.saveManager.Save(game.DefaultSaveSlot, s.garden); err != nil {
		log.Printf("[GardenScene] Quick save failed: %v", err)
		s.showMessage("Save failed")
		return
	}
	s.showMessage("Saved")
}

func (s *GardenScene) quickLoad() {
	if s.saveManager == nil {
		s.showMessage("Saving disabled")
		return
	}

	// 花朵句柄属于渲染器，读档时一并替换
	renderer := render.NewPollenRenderer(s.layout, 1)
	garden, err := s.saveManager.Load(game.DefaultSaveSlot, s.catalog, renderer)
	if err != nil {
		if errors.Is(err, game.ErrNoSave) {
			s.showMessage("No quick save")
		} else {
			log.Printf("[GardenScene] Quick load failed: %v", err)
			s.showMessage("Load failed")
		}
		return
	}

	s.setGarden(garden, renderer)
	s.showMessage("Loaded")
}

// setGarden 替换花园和渲染器，并按花园尺寸更新布局
func (s *GardenScene) setGarden(garden *game.Garden, renderer *render.PollenRenderer) {
	s.garden = garden
	s.renderer = renderer
	grid := garden.Tiles().Grid()
	s.layout = utils.NewGridLayout(grid.Rows, grid.Cols)
}

func (s *GardenScene) showMessage(msg string) {
	s.message = msg
	s.messageTimer = messageDuration
}

// SaveOnExit 实现 game.Saveable，退出时写入快速存档
func (s *GardenScene) SaveOnExit() bool {
	if s.saveManager == nil {
		return true
	}
	if err := s.saveManager.Save(game.DefaultSaveSlot, s.garden); err != nil {
		log.Printf("[GardenScene] Save on exit failed: %v", err)
		return false
	}
	return true
}

// Layout 返回网格布局
func (s *GardenScene) Layout() utils.GridLayout {
	return s.layout
}
