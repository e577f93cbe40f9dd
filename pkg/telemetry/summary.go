package telemetry

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Summary 一次模拟的汇总统计
type Summary struct {
	Samples        int
	Duration       float64
	FinalInventory float64
	Harvests       int
	Removed        int

	// 采集速率（花粉/秒），按相邻快照的库存增量计算
	RateMean float64
	RateStd  float64

	FlowersMean float64
	PeakFlowers int
}

// Summarize 汇总快照序列，空序列返回零值
func Summarize(snapshots []Snapshot) Summary {
	if len(snapshots) == 0 {
		return Summary{}
	}

	first, last := snapshots[0], snapshots[len(snapshots)-1]
	sum := Summary{
		Samples:        len(snapshots),
		Duration:       last.Time - first.Time,
		FinalInventory: last.Inventory,
		Harvests:       last.Harvests,
		Removed:        last.Removed,
	}

	flowers := make([]float64, len(snapshots))
	for i, s := range snapshots {
		flowers[i] = float64(s.Flowers)
		sum.PeakFlowers = max(sum.PeakFlowers, s.Flowers)
	}
	sum.FlowersMean = stat.Mean(flowers, nil)

	var rates []float64
	for i := 1; i < len(snapshots); i++ {
		dt := snapshots[i].Time - snapshots[i-1].Time
		if dt <= 0 {
			continue
		}
		rates = append(rates, (snapshots[i].Inventory-snapshots[i-1].Inventory)/dt)
	}
	if len(rates) > 0 {
		sum.RateMean = stat.Mean(rates, nil)
	}
	// 样本标准差至少需要两个样本
	if len(rates) > 1 {
		sum.RateStd = stat.StdDev(rates, nil)
	}

	return sum
}

// String 返回单行可读摘要
func (s Summary) String() string {
	return fmt.Sprintf("samples=%d duration=%.2fs inventory=%.2f harvests=%d removed=%d rate=%.3f±%.3f/s flowers(mean=%.2f peak=%d)",
		s.Samples, s.Duration, s.FinalInventory, s.Harvests, s.Removed, s.RateMean, s.RateStd, s.FlowersMean, s.PeakFlowers)
}
