package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/decker502/pollen/pkg/flower"
	"github.com/decker502/pollen/pkg/types"
)

// validate 共享的结构体校验器（validator 内部缓存结构体信息，可复用）
var validate = validator.New()

// FlowerTypesConfig 花朵种类配置文件
type FlowerTypesConfig struct {
	FlowerTypes []FlowerTypeConfig `yaml:"flowerTypes" validate:"required,min=1,dive"`
}

// FlowerTypeConfig 单个花朵种类配置
type FlowerTypeConfig struct {
	Name                 string  `yaml:"name" validate:"required"`              // 种类ID，如 "daisy"
	PollenGenerationRate float64 `yaml:"pollenGenerationRate" validate:"gte=0"` // 花粉/秒
	MaxPollen            float64 `yaml:"maxPollen" validate:"gt=0"`             // 容量上限
	LifetimePollen       float64 `yaml:"lifetimePollen" validate:"gte=0"`       // 终生产量上限
	RegenTimer           float64 `yaml:"regenTimer" validate:"gte=0"`           // 采集后冷却（秒）
	RangeBonus           int     `yaml:"rangeBonus" validate:"gte=0"`           // 新种下的花朵的采集距离加成
	Color                string  `yaml:"color"`                                 // "#RRGGBB" 或 "#RRGGBBAA"，默认白色

	OnAdded   []EffectConfig `yaml:"onAdded" validate:"dive"`   // 放置效果
	OnRemoved []EffectConfig `yaml:"onRemoved" validate:"dive"` // 移除效果
	OnUpdate  []EffectConfig `yaml:"onUpdate" validate:"dive"`  // 每帧效果
}

// EffectConfig 效果配置
// 不同 Kind 使用不同字段：
//   - attribute: Amount
//   - attribute_rate: PerSecond
//   - attribute_decay: Fraction
//   - attribute_clamp: Min, Max
type EffectConfig struct {
	Kind      string  `yaml:"kind" validate:"required,oneof=attribute attribute_rate attribute_decay attribute_clamp"`
	Attribute string  `yaml:"attribute" validate:"required"`
	Amount    float64 `yaml:"amount"`
	PerSecond float64 `yaml:"perSecond"`
	Fraction  float64 `yaml:"fraction" validate:"gte=0"`
	Min       float64 `yaml:"min"`
	Max       float64 `yaml:"max"`
}

// LoadFlowerTypesConfig 从YAML文件加载花朵种类配置
// 参数：
//
//	filepath - 配置文件路径
//
// 返回：
//
//	*FlowerTypesConfig - 解析并校验后的配置
//	error - 读取、解析或校验失败时返回
func LoadFlowerTypesConfig(filepath string) (*FlowerTypesConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read flower types config file %s: %w", filepath, err)
	}

	cfg, err := ParseFlowerTypesConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid flower types config in %s: %w", filepath, err)
	}
	return cfg, nil
}

// ParseFlowerTypesConfig 从YAML数据解析花朵种类配置（嵌入资源使用）
func ParseFlowerTypesConfig(data []byte) (*FlowerTypesConfig, error) {
	var cfg FlowerTypesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse flower types YAML: %w", err)
	}

	if err := validateFlowerTypesConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validateFlowerTypesConfig 校验结构体约束、种类名唯一性和跨字段约束
func validateFlowerTypesConfig(cfg *FlowerTypesConfig) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("flower types validation failed: %w", err)
	}

	seen := make(map[string]bool, len(cfg.FlowerTypes))
	for i, ft := range cfg.FlowerTypes {
		if seen[ft.Name] {
			return fmt.Errorf("flower type %d: duplicate name %q", i, ft.Name)
		}
		seen[ft.Name] = true

		if _, err := ParseColor(ft.Color); err != nil {
			return fmt.Errorf("flower type %q: %w", ft.Name, err)
		}

		for _, list := range [][]EffectConfig{ft.OnAdded, ft.OnRemoved, ft.OnUpdate} {
			for _, ec := range list {
				if ec.Kind == types.EffectAttributeClamp.String() && ec.Min > ec.Max {
					return fmt.Errorf("flower type %q: clamp effect on %q has min %.2f > max %.2f",
						ft.Name, ec.Attribute, ec.Min, ec.Max)
				}
			}
		}
	}
	return nil
}

// BuildEffect 将效果配置转换为效果实例
func BuildEffect(ec EffectConfig) (flower.Effect, error) {
	kind, err := types.ParseEffectKind(ec.Kind)
	if err != nil {
		return nil, err
	}

	switch kind {
	case types.EffectAttribute:
		return flower.AttributeEffect{Attribute: ec.Attribute, Amount: ec.Amount}, nil
	case types.EffectAttributeRate:
		return flower.AttributeRateEffect{Attribute: ec.Attribute, PerSecond: ec.PerSecond}, nil
	case types.EffectAttributeDecay:
		return flower.AttributeDecayEffect{Attribute: ec.Attribute, Fraction: ec.Fraction}, nil
	case types.EffectAttributeClamp:
		return flower.AttributeClampEffect{Attribute: ec.Attribute, Min: ec.Min, Max: ec.Max}, nil
	default:
		return nil, fmt.Errorf("unsupported effect kind %v", kind)
	}
}

func buildEffects(list []EffectConfig) ([]flower.Effect, error) {
	effects := make([]flower.Effect, 0, len(list))
	for _, ec := range list {
		effect, err := BuildEffect(ec)
		if err != nil {
			return nil, err
		}
		effects = append(effects, effect)
	}
	return effects, nil
}

// Build 将配置转换为共享的 FlowerType 实例
func (c FlowerTypeConfig) Build() (*flower.FlowerType, error) {
	clr, err := ParseColor(c.Color)
	if err != nil {
		return nil, fmt.Errorf("flower type %q: %w", c.Name, err)
	}

	added, err := buildEffects(c.OnAdded)
	if err != nil {
		return nil, fmt.Errorf("flower type %q onAdded: %w", c.Name, err)
	}
	removed, err := buildEffects(c.OnRemoved)
	if err != nil {
		return nil, fmt.Errorf("flower type %q onRemoved: %w", c.Name, err)
	}
	update, err := buildEffects(c.OnUpdate)
	if err != nil {
		return nil, fmt.Errorf("flower type %q onUpdate: %w", c.Name, err)
	}

	return &flower.FlowerType{
		Name:                 c.Name,
		PollenGenerationRate: c.PollenGenerationRate,
		MaxPollen:            c.MaxPollen,
		LifetimePollen:       c.LifetimePollen,
		RegenTimer:           c.RegenTimer,
		OnAddedEffects:       added,
		OnRemovedEffects:     removed,
		OnUpdateEffects:      update,
		Color:                clr,
	}, nil
}

// ParseColor 解析 "#RRGGBB" / "#RRGGBBAA" 颜色，空字符串返回白色
func ParseColor(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #RRGGBB or #RRGGBBAA", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
