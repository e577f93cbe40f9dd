//go:build mobile

// embed.go - 移动端数据文件嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建前需要把 data/flower_types.yaml 和 data/garden.yaml 复制到 mobile/data/：
//
//	mkdir -p mobile/data && cp data/*.yaml mobile/data/
//	ebitenmobile bind -target android -tags mobile -o build/android/pollen.aar ./mobile
package mobile

import "embed"

//go:embed data/flower_types.yaml data/garden.yaml
var dataFS embed.FS
