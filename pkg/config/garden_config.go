package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 花园默认参数
const (
	DefaultGardenRows = 5
	DefaultGardenCols = 9
	DefaultTickRate   = 60
)

// GardenConfig 花园布局配置
type GardenConfig struct {
	Rows     int `yaml:"rows" validate:"gte=0,lte=64"`      // 行数，默认 5
	Cols     int `yaml:"cols" validate:"gte=0,lte=64"`      // 列数，默认 9
	TickRate int `yaml:"tickRate" validate:"gte=0,lte=240"` // 每秒模拟帧数，默认 60

	InitialAttributes map[string]float64 `yaml:"initialAttributes"`          // 所有地块的初始属性
	Plantings         []PlantingConfig   `yaml:"plantings" validate:"dive"`  // 初始种植
	Collectors        []CollectorConfig  `yaml:"collectors" validate:"dive"` // 采集者
}

// PlantingConfig 初始种植
type PlantingConfig struct {
	Type string `yaml:"type" validate:"required"` // 花朵种类名
	Row  int    `yaml:"row" validate:"gte=0"`
	Col  int    `yaml:"col" validate:"gte=0"`
}

// CollectorConfig 采集者配置
type CollectorConfig struct {
	Name          string  `yaml:"name" validate:"required"`
	X             int     `yaml:"x" validate:"gte=0"`
	Y             int     `yaml:"y" validate:"gte=0"`
	Reach         int     `yaml:"reach" validate:"gte=0"`
	HarvestAmount float64 `yaml:"harvestAmount" validate:"gt=0"`
	Cooldown      float64 `yaml:"cooldown" validate:"gte=0"`
	OnlyFull      bool    `yaml:"onlyFull"`
}

// LoadGardenConfig 从YAML文件加载花园配置
func LoadGardenConfig(filepath string) (*GardenConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read garden config file %s: %w", filepath, err)
	}

	cfg, err := ParseGardenConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid garden config in %s: %w", filepath, err)
	}
	return cfg, nil
}

// ParseGardenConfig 从YAML数据解析花园配置
func ParseGardenConfig(data []byte) (*GardenConfig, error) {
	var cfg GardenConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse garden YAML: %w", err)
	}

	applyGardenDefaults(&cfg)

	if err := validateGardenConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyGardenDefaults 为缺失的可选字段设置默认值
func applyGardenDefaults(cfg *GardenConfig) {
	if cfg.Rows == 0 {
		cfg.Rows = DefaultGardenRows
	}
	if cfg.Cols == 0 {
		cfg.Cols = DefaultGardenCols
	}
	if cfg.TickRate == 0 {
		cfg.TickRate = DefaultTickRate
	}
	if cfg.InitialAttributes == nil {
		cfg.InitialAttributes = map[string]float64{}
	}
}

// validateGardenConfig 校验花园配置
// 除结构体约束外，还要求种植和采集者坐标落在网格内、种植格子不重复
func validateGardenConfig(cfg *GardenConfig) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("garden validation failed: %w", err)
	}

	occupied := make(map[[2]int]bool, len(cfg.Plantings))
	for i, p := range cfg.Plantings {
		if p.Row >= cfg.Rows || p.Col >= cfg.Cols {
			return fmt.Errorf("planting %d (%s): position (row=%d, col=%d) outside %dx%d garden",
				i, p.Type, p.Row, p.Col, cfg.Rows, cfg.Cols)
		}
		key := [2]int{p.Row, p.Col}
		if occupied[key] {
			return fmt.Errorf("planting %d (%s): tile (row=%d, col=%d) planted twice", i, p.Type, p.Row, p.Col)
		}
		occupied[key] = true
	}

	for _, c := range cfg.Collectors {
		if c.X >= cfg.Cols || c.Y >= cfg.Rows {
			return fmt.Errorf("collector %s: position (%d, %d) outside %dx%d garden", c.Name, c.X, c.Y, cfg.Rows, cfg.Cols)
		}
	}
	return nil
}

// CheckPlantings 确认初始种植引用的种类都存在于种类集合中
func (cfg *GardenConfig) CheckPlantings(catalog *FlowerCatalog) error {
	for i, p := range cfg.Plantings {
		if _, err := catalog.Get(p.Type); err != nil {
			return fmt.Errorf("planting %d: %w", i, err)
		}
	}
	return nil
}
