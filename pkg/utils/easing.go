package utils

import "math"

// 缓动函数
// 输入进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]

// EaseLinear 线性缓动（匀速）
func EaseLinear(t float64) float64 {
	return clamp01(t)
}

// EaseOutCubic 三次方缓出
// 开始快，结束慢，用于花粉"飞向采集者"
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	t = clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// Lerp 在 a、b 之间按 t 线性插值
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
