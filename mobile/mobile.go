//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
//	ebitenmobile bind -target android -tags mobile -javapkg com.decker.pollen -o build/android/pollen.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Pollen.xcframework ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/pollen/pkg/app"
	"github.com/decker502/pollen/pkg/embedded"
)

func init() {
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	// 移动端总是尝试恢复上次的花园
	gameApp, err := app.NewApp(app.Config{
		Verbose: true,
		Resume:  true,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
