package config

import (
	"errors"
	"fmt"

	"github.com/decker502/pollen/pkg/flower"
)

// ErrUnknownFlowerType 请求了未配置的花朵种类
var ErrUnknownFlowerType = errors.New("unknown flower type")

// FlowerCatalog 已构建的花朵种类集合
// 每个种类只有一个 *flower.FlowerType 实例，被该种类的所有花朵共享
type FlowerCatalog struct {
	types      map[string]*flower.FlowerType
	rangeBonus map[string]int
	names      []string // 配置文件中的顺序
}

// NewFlowerCatalog 根据配置构建种类集合
func NewFlowerCatalog(cfg *FlowerTypesConfig) (*FlowerCatalog, error) {
	if cfg == nil {
		return nil, fmt.Errorf("flower types config is nil")
	}

	catalog := &FlowerCatalog{
		types:      make(map[string]*flower.FlowerType, len(cfg.FlowerTypes)),
		rangeBonus: make(map[string]int, len(cfg.FlowerTypes)),
		names:      make([]string, 0, len(cfg.FlowerTypes)),
	}

	for _, ftc := range cfg.FlowerTypes {
		ft, err := ftc.Build()
		if err != nil {
			return nil, err
		}
		catalog.types[ftc.Name] = ft
		catalog.rangeBonus[ftc.Name] = ftc.RangeBonus
		catalog.names = append(catalog.names, ftc.Name)
	}
	return catalog, nil
}

// Get 按名称获取种类
func (c *FlowerCatalog) Get(name string) (*flower.FlowerType, error) {
	ft, ok := c.types[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFlowerType, name)
	}
	return ft, nil
}

// RangeBonus 返回种类的默认采集距离加成
func (c *FlowerCatalog) RangeBonus(name string) int {
	return c.rangeBonus[name]
}

// Names 返回配置顺序的种类名列表
func (c *FlowerCatalog) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}
