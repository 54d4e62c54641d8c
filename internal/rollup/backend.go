package rollup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"CreativeSentinel/internal/model"
)

// Backend persists the snapshot collection and the spend draft.
type Backend interface {
	LoadSnapshots() ([]model.DailySnapshot, error)
	SaveSnapshots([]model.DailySnapshot) error
	LoadSpendDraft() (map[string]float64, error)
	SaveSpendDraft(map[string]float64) error
}

// FileBackend stores both collections as JSON files in a directory. Writes go
// to a temp file first and are renamed into place, so a crash mid-write never
// leaves a partially updated store.
type FileBackend struct {
	Dir string
}

const (
	snapshotsFile  = "snapshots.json"
	spendDraftFile = "spend.json"
)

// NewFileBackend creates the data directory if needed.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileBackend{Dir: dir}, nil
}

func (b *FileBackend) LoadSnapshots() ([]model.DailySnapshot, error) {
	var snaps []model.DailySnapshot
	if err := b.readJSON(snapshotsFile, &snaps); err != nil {
		return nil, err
	}
	return snaps, nil
}

func (b *FileBackend) SaveSnapshots(snaps []model.DailySnapshot) error {
	return b.writeJSON(snapshotsFile, snaps)
}

func (b *FileBackend) LoadSpendDraft() (map[string]float64, error) {
	var draft map[string]float64
	if err := b.readJSON(spendDraftFile, &draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (b *FileBackend) SaveSpendDraft(draft map[string]float64) error {
	return b.writeJSON(spendDraftFile, draft)
}

func (b *FileBackend) readJSON(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(b.Dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func (b *FileBackend) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	path := filepath.Join(b.Dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}

// MemoryBackend keeps everything in process, for tests and ephemeral runs.
type MemoryBackend struct {
	Snapshots []model.DailySnapshot
	Draft     map[string]float64
	FailWrite error // when set, save operations return this error
}

func NewMemoryBackend() *MemoryBackend { return &MemoryBackend{} }

func (b *MemoryBackend) LoadSnapshots() ([]model.DailySnapshot, error) {
	return b.Snapshots, nil
}

func (b *MemoryBackend) SaveSnapshots(snaps []model.DailySnapshot) error {
	if b.FailWrite != nil {
		return b.FailWrite
	}
	b.Snapshots = snaps
	return nil
}

func (b *MemoryBackend) LoadSpendDraft() (map[string]float64, error) {
	return b.Draft, nil
}

func (b *MemoryBackend) SaveSpendDraft(draft map[string]float64) error {
	if b.FailWrite != nil {
		return b.FailWrite
	}
	b.Draft = draft
	return nil
}
