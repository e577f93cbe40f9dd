// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// EffectKind 定义花朵效果的种类
// 配置文件通过字符串名称选择效果种类，由 config 包解析为具体效果实例
type EffectKind int

const (
	// EffectUnknown 未知效果类型
	EffectUnknown EffectKind = iota
	// EffectAttribute 一次性增减地块属性
	EffectAttribute
	// EffectAttributeRate 按秒速率增减地块属性
	EffectAttributeRate
	// EffectAttributeDecay 按比例衰减地块属性
	EffectAttributeDecay
	// EffectAttributeClamp 将地块属性限制在区间内
	EffectAttributeClamp
)

// String 返回效果种类的配置名称
func (k EffectKind) String() string {
	switch k {
	case EffectAttribute:
		return "attribute"
	case EffectAttributeRate:
		return "attribute_rate"
	case EffectAttributeDecay:
		return "attribute_decay"
	case EffectAttributeClamp:
		return "attribute_clamp"
	default:
		return "unknown"
	}
}

// ParseEffectKind 将配置名称解析为效果种类
func ParseEffectKind(name string) (EffectKind, error) {
	switch name {
	case "attribute":
		return EffectAttribute, nil
	case "attribute_rate":
		return EffectAttributeRate, nil
	case "attribute_decay":
		return EffectAttributeDecay, nil
	case "attribute_clamp":
		return EffectAttributeClamp, nil
	default:
		return EffectUnknown, fmt.Errorf("unknown effect kind %q", name)
	}
}
