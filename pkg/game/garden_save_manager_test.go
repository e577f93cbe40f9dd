package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// createTestGdataManager 创建用于测试的 gdata Manager
func createTestGdataManager(t *testing.T, testName string) *gdata.Manager {
	appName := fmt.Sprintf("pollen_test_%s_%d", testName, time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil
	}

	// 测试结束后删除测试目录
	t.Cleanup(func() {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			os.RemoveAll(filepath.Join(homeDir, ".local", "share", appName))
		}
	})

	return manager
}

func TestGardenSaveManagerDegradedMode(t *testing.T) {
	m := NewGardenSaveManager(nil)
	catalog := newTestCatalog(t)

	if m.HasSave(DefaultSaveSlot) {
		t.Error("New manager should have no saves")
	}
	if _, err := m.Load(DefaultSaveSlot, catalog, nil); !errors.Is(err, ErrNoSave) {
		t.Errorf("Loading empty slot: got %v, want ErrNoSave", err)
	}

	g := newTestGarden(t)
	g.Update(1.0)
	if err := m.Save(DefaultSaveSlot, g); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if !m.HasSave(DefaultSaveSlot) {
		t.Error("Slot should hold a save after Save()")
	}

	restored, err := m.Load(DefaultSaveSlot, catalog, nil)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(restored.Flowers()) != len(g.Flowers()) {
		t.Errorf("Restored %d flowers, want %d", len(restored.Flowers()), len(g.Flowers()))
	}
}

func TestGardenSaveManagerGdata(t *testing.T) {
	manager := createTestGdataManager(t, "slots")
	if manager == nil {
		t.Skip("Cannot create gdata manager for testing")
	}

	m := NewGardenSaveManager(manager)
	catalog := newTestCatalog(t)

	g := newTestGarden(t)
	g.Update(0.5)
	if err := m.Save("slot1", g); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if !m.HasSave("slot1") {
		t.Error("gdata slot should exist after Save()")
	}
	if m.HasSave("slot2") {
		t.Error("Unused slot should not exist")
	}

	restored, err := m.Load("slot1", catalog, nil)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if restored.Elapsed() != g.Elapsed() {
		t.Errorf("Elapsed = %f, want %f", restored.Elapsed(), g.Elapsed())
	}

	if _, err := m.Load("slot2", catalog, nil); !errors.Is(err, ErrNoSave) {
		t.Errorf("Loading unused slot: got %v, want ErrNoSave", err)
	}
}
