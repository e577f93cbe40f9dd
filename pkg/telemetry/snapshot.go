// Package telemetry 记录花园模拟的逐帧指标，并导出 CSV 和汇总统计
package telemetry

import (
	"github.com/decker502/pollen/pkg/ecs"
	"github.com/decker502/pollen/pkg/flower"
	"github.com/decker502/pollen/pkg/game"
)

// Snapshot 某一时刻的花园指标
type Snapshot struct {
	Tick int     `csv:"tick"`
	Time float64 `csv:"time"`

	// 花朵状态
	Flowers   int `csv:"flowers"`
	Full      int `csv:"full"`
	Regenning int `csv:"regenning"`
	Removed   int `csv:"removed"` // 自开始记录以来消失的花朵（死亡或被拔除）

	// 花粉
	StoredPollen   float64 `csv:"stored_pollen"`   // 存活花朵当前储量之和
	ProducedPollen float64 `csv:"produced_pollen"` // 存活花朵累计产量之和
	Inventory      float64 `csv:"inventory"`       // 采集者持有总量
	Harvests       int     `csv:"harvests"`        // 产生花粉的采集次数

	Entities int `csv:"entities"` // 实体总数（含网格、地块和采集者）
}

// Recorder 按帧记录花园快照
type Recorder struct {
	tick      int
	seen      map[ecs.EntityID]bool
	snapshots []Snapshot
}

// NewRecorder 创建快照记录器
func NewRecorder() *Recorder {
	return &Recorder{seen: make(map[ecs.EntityID]bool)}
}

// Record 记录花园当前状态，并返回本次快照
func (r *Recorder) Record(g *game.Garden) Snapshot {
	em := g.EntityManager()
	live := g.Flowers()

	s := Snapshot{
		Tick:      r.tick,
		Time:      g.Elapsed(),
		Flowers:   len(live),
		Inventory: g.TotalInventory(),
		Harvests:  g.Harvest().HarvestCount(),
		Entities:  em.EntityCount(),
	}

	current := make(map[ecs.EntityID]bool, len(live))
	for _, id := range live {
		current[id] = true
		r.seen[id] = true

		f, ok := ecs.GetComponent[*flower.Flower](em, id)
		if !ok {
			continue
		}
		if f.IsFull() {
			s.Full++
		}
		if f.IsRegenning() {
			s.Regenning++
		}
		s.StoredPollen += f.CurrentPollen()
		s.ProducedPollen += f.TotalPollen()
	}

	for id := range r.seen {
		if !current[id] {
			s.Removed++
		}
	}

	r.tick++
	r.snapshots = append(r.snapshots, s)
	return s
}

// Snapshots 返回已记录的全部快照
func (r *Recorder) Snapshots() []Snapshot {
	return r.snapshots
}
