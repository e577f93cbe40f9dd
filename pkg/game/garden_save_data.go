package game

import "time"

// GardenSaveVersion 花园存档版本号
// 数据结构发生不兼容变更时递增
const GardenSaveVersion = 1

// GardenSaveData 花园存档数据
//
// 地块属性保存的是效果累积后的结果，恢复时不会重新触发放置效果。
// 使用 YAML 序列化，便于调试时直接查看存档内容。
type GardenSaveData struct {
	Version  int       `yaml:"version"`
	SaveTime time.Time `yaml:"saveTime"`

	Elapsed float64 `yaml:"elapsed"` // 模拟已进行时间（秒）
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`

	Tiles      []TileData      `yaml:"tiles"`
	Flowers    []FlowerData    `yaml:"flowers"`
	Collectors []CollectorData `yaml:"collectors"`
}

// TileData 地块序列化数据
type TileData struct {
	Row        int                `yaml:"row"`
	Col        int                `yaml:"col"`
	Attributes map[string]float64 `yaml:"attributes,omitempty"`
}

// FlowerData 花朵序列化数据
// 字段与 flower.Flower 的计数器对应
type FlowerData struct {
	Type          string  `yaml:"type"`
	Row           int     `yaml:"row"`
	Col           int     `yaml:"col"`
	CurrentPollen float64 `yaml:"currentPollen"`
	TotalPollen   float64 `yaml:"totalPollen"`
	RegenTimer    float64 `yaml:"regenTimer"`
	RangeBonus    int     `yaml:"rangeBonus"`
}

// CollectorData 采集者序列化数据（含库存）
type CollectorData struct {
	Name          string  `yaml:"name"`
	X             float64 `yaml:"x"`
	Y             float64 `yaml:"y"`
	Reach         int     `yaml:"reach"`
	HarvestAmount float64 `yaml:"harvestAmount"`
	Cooldown      float64 `yaml:"cooldown"`
	CooldownLeft  float64 `yaml:"cooldownLeft"`
	OnlyFull      bool    `yaml:"onlyFull"`
	Pollen        float64 `yaml:"pollen"`
}

// NewGardenSaveData 创建带当前版本号的空存档
func NewGardenSaveData() *GardenSaveData {
	return &GardenSaveData{
		Version: GardenSaveVersion,
	}
}
