package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/pollen/pkg/config"
	"github.com/decker502/pollen/pkg/flower"
	"github.com/decker502/pollen/pkg/utils"
)

// ErrNoSave 指定的存档槽位没有存档
var ErrNoSave = errors.New("no garden save in slot")

// 存储路径常量
const (
	gardenSaveObject = "garden"
	// DefaultSaveSlot 快速存档使用的槽位
	DefaultSaveSlot = "quick"
)

// GardenSaveManager 花园存档管理器
// 以槽位为单位把花园存档写入 gdata 跨平台存储
type GardenSaveManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，只保存在内存中）
	serializer   *GardenSerializer

	memory map[string][]byte // 降级模式下的存档
}

// NewGardenSaveManager 创建存档管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
func NewGardenSaveManager(gdataManager *gdata.Manager) *GardenSaveManager {
	if gdataManager == nil {
		log.Printf("[GardenSaveManager] Warning: no gdata manager, saves are kept in memory only")
	}
	return &GardenSaveManager{
		gdataManager: gdataManager,
		serializer:   NewGardenSerializer(),
		memory:       make(map[string][]byte),
	}
}

// OpenGdataManager 以应用名打开 gdata 存储
// 失败时返回 nil，调用方应进入降级模式
func OpenGdataManager(appName string) *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[GardenSaveManager] Warning: %v", err)
	}

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[GardenSaveManager] Warning: failed to open gdata storage for %s: %v", appName, err)
		return nil
	}
	return manager
}

// Save 将花园写入存档槽位
func (m *GardenSaveManager) Save(slot string, g *Garden) error {
	saveData, err := m.serializer.Collect(g)
	if err != nil {
		return fmt.Errorf("failed to collect garden state: %w", err)
	}

	data, err := m.serializer.Encode(saveData)
	if err != nil {
		return err
	}

	if m.gdataManager == nil {
		m.memory[slot] = data
		return nil
	}

	if err := m.gdataManager.SaveObjectProp(gardenSaveObject, slot, data); err != nil {
		return fmt.Errorf("failed to save garden slot %s: %w", slot, err)
	}

	log.Printf("[GardenSaveManager] Saved garden to slot %s (%d bytes)", slot, len(data))
	return nil
}

// Load 从存档槽位恢复花园
//
// 返回：
//   - *Garden: 恢复后的新花园
//   - error: 槽位为空时返回 ErrNoSave
func (m *GardenSaveManager) Load(slot string, catalog *config.FlowerCatalog, visuals flower.VisualFactory) (*Garden, error) {
	data, err := m.readSlot(slot)
	if err != nil {
		return nil, err
	}

	saveData, err := m.serializer.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("garden slot %s: %w", slot, err)
	}

	g, err := m.serializer.Restore(saveData, catalog, visuals)
	if err != nil {
		return nil, fmt.Errorf("garden slot %s: %w", slot, err)
	}

	log.Printf("[GardenSaveManager] Loaded garden from slot %s", slot)
	return g, nil
}

// HasSave 槽位中是否有存档
func (m *GardenSaveManager) HasSave(slot string) bool {
	if m.gdataManager == nil {
		_, ok := m.memory[slot]
		return ok
	}
	return m.gdataManager.ObjectPropExists(gardenSaveObject, slot)
}

func (m *GardenSaveManager) readSlot(slot string) ([]byte, error) {
	if m.gdataManager == nil {
		data, ok := m.memory[slot]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNoSave, slot)
		}
		return data, nil
	}

	if !m.gdataManager.ObjectPropExists(gardenSaveObject, slot) {
		return nil, fmt.Errorf("%w: %s", ErrNoSave, slot)
	}
	data, err := m.gdataManager.LoadObjectProp(gardenSaveObject, slot)
	if err != nil {
		return nil, fmt.Errorf("failed to load garden slot %s: %w", slot, err)
	}
	return data, nil
}
