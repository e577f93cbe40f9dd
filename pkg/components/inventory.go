package components

// InventoryComponent 花粉库存
type InventoryComponent struct {
	Pollen float64 // 当前持有花粉
}

// AddPollen 存入花粉，负数被忽略
func (inv *InventoryComponent) AddPollen(amount float64) {
	if amount > 0 {
		inv.Pollen += amount
	}
}

