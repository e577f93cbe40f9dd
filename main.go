package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/pollen/pkg/app"
	"github.com/decker502/pollen/pkg/embedded"
)

var (
	verbose         = flag.Bool("verbose", false, "显示详细日志")
	flowerTypesPath = flag.String("flowers", "", "花朵种类配置文件（为空使用内置配置）")
	gardenPath      = flag.String("garden", "", "花园布局配置文件（为空使用内置配置）")
	resume          = flag.Bool("resume", false, "从快速存档恢复")
)

func main() {
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gardenApp, err := app.NewApp(app.Config{
		Verbose:         *verbose,
		FlowerTypesPath: *flowerTypesPath,
		GardenPath:      *gardenPath,
		Resume:          *resume,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(gardenApp.WindowSize())
	ebiten.SetWindowTitle("Pollen Garden")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(app.TPS)

	runErr := ebiten.RunGame(gardenApp)

	// 窗口关闭后保存花园
	gardenApp.GetSceneManager().SaveOnExit()

	if runErr != nil {
		log.Fatal(runErr)
	}
}
