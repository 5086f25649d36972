package snapshot

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/renameio/v2"

	"github.com/ptitevents/eventapp/internal/domain/entity"
	"github.com/ptitevents/eventapp/internal/domain/repository"
)

// FileRepository persists the whole snapshot to a single JSON document.
// Writes go through a temp-file-then-rename so a failed write never
// clobbers the previous snapshot.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) Load() (*entity.Snapshot, repository.LoadStatus, error) {
	raw, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return entity.NewSnapshot(), repository.LoadFresh, nil
	}
	if err != nil {
		return entity.NewSnapshot(), repository.LoadCorrupt, fmt.Errorf("read snapshot %s: %w", r.path, err)
	}

	snap := entity.NewSnapshot()
	if err := json.Unmarshal(raw, snap); err != nil {
		return entity.NewSnapshot(), repository.LoadCorrupt, fmt.Errorf("decode snapshot %s: %w", r.path, err)
	}
	snap.Normalize()
	return snap, repository.LoadOK, nil
}

func (r *FileRepository) Save(s *entity.Snapshot) error {
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := renameio.WriteFile(r.path, raw, 0o644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", r.path, err)
	}
	return nil
}

var _ repository.SnapshotRepository = (*FileRepository)(nil)
