// Package app 提供花园应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/pollen/pkg/config"
	"github.com/decker502/pollen/pkg/embedded"
	"github.com/decker502/pollen/pkg/game"
	"github.com/decker502/pollen/pkg/scenes"
	"github.com/decker502/pollen/pkg/utils"
)

// AppName 存档目录使用的应用名
const AppName = "pollen_garden"

// TPS 每秒逻辑帧数
const TPS = 60

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// FlowerTypesPath 花朵种类配置文件，为空时使用内置配置
	FlowerTypesPath string
	// GardenPath 花园布局配置文件，为空时使用内置配置
	GardenPath string
	// Resume 从快速存档恢复，没有存档时按配置新建
	Resume bool
}

// App 是花园应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	layout                   utils.GridLayout
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 使用内置配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	catalog, gardenCfg, err := LoadConfigs(cfg.FlowerTypesPath, cfg.GardenPath)
	if err != nil {
		return nil, err
	}
	log.Printf("[App] Loaded %d flower types, garden %dx%d", len(catalog.Names()), gardenCfg.Rows, gardenCfg.Cols)

	// gdata 不可用时存档管理器退回内存存储
	saveManager := game.NewGardenSaveManager(game.OpenGdataManager(AppName))

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(name string) game.Scene {
		switch name {
		case scenes.SceneResume:
			scene, err := scenes.NewGardenSceneFromSave(game.DefaultSaveSlot, catalog, saveManager, sceneManager)
			if err == nil {
				return scene
			}
			log.Printf("[App] Resume failed, starting new garden: %v", err)
			fallthrough
		case scenes.SceneGarden:
			scene, err := scenes.NewGardenScene(gardenCfg, catalog, saveManager, sceneManager)
			if err != nil {
				log.Printf("[App] Error: failed to create garden scene: %v", err)
				return nil
			}
			return scene
		default:
			log.Printf("[App] Unknown scene: %s", name)
			return nil
		}
	})

	startScene := scenes.SceneGarden
	if cfg.Resume {
		startScene = scenes.SceneResume
	}
	sceneManager.LoadScene(startScene)
	if sceneManager.GetCurrentScene() == nil {
		return nil, fmt.Errorf("failed to start scene %s", startScene)
	}

	return &App{
		sceneManager: sceneManager,
		layout:       utils.NewGridLayout(gardenCfg.Rows, gardenCfg.Cols),
		verbose:      cfg.Verbose,
	}, nil
}

// LoadConfigs 加载花朵种类和花园配置
// 路径为空时读取内置数据文件
func LoadConfigs(flowerTypesPath, gardenPath string) (*config.FlowerCatalog, *config.GardenConfig, error) {
	var (
		typesCfg *config.FlowerTypesConfig
		err      error
	)
	if flowerTypesPath != "" {
		typesCfg, err = config.LoadFlowerTypesConfig(flowerTypesPath)
	} else {
		typesCfg, err = parseEmbedded(embedded.FlowerTypesPath, config.ParseFlowerTypesConfig)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("花朵种类配置加载失败: %w", err)
	}

	catalog, err := config.NewFlowerCatalog(typesCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("花朵种类构建失败: %w", err)
	}

	var gardenCfg *config.GardenConfig
	if gardenPath != "" {
		gardenCfg, err = config.LoadGardenConfig(gardenPath)
	} else {
		gardenCfg, err = parseEmbedded(embedded.GardenPath, config.ParseGardenConfig)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("花园配置加载失败: %w", err)
	}

	return catalog, gardenCfg, nil
}

func parseEmbedded[T any](path string, parse func([]byte) (*T, error)) (*T, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(data)
}

// Update 更新逻辑
// 每个 tick 调用一次
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.WindowSize()
			ebiten.SetWindowSize(w, h)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(1.0 / TPS)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// WindowSize 返回容纳网格、状态栏和边距的窗口尺寸
func (a *App) WindowSize() (int, int) {
	w := int(a.layout.StartX*2 + a.layout.Width())
	h := int(a.layout.StartY + a.layout.Height() + 40)
	return max(w, 640), max(h, 360)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.WindowSize()
}

// GetSceneManager 返回场景管理器
// 用于在关闭时保存存档
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
