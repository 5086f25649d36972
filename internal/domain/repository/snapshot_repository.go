package repository

import "github.com/ptitevents/eventapp/internal/domain/entity"

// LoadStatus reports how a snapshot load went. A fresh start (no file yet)
// and a corrupt file both yield an empty snapshot, but callers must be able
// to tell them apart so corruption is surfaced instead of swallowed.
type LoadStatus int

const (
	LoadOK LoadStatus = iota
	LoadFresh
	LoadCorrupt
)

// SnapshotRepository is the persistence boundary for the durable snapshot.
// The Store is the only caller; every mutating operation saves the whole
// snapshot before reporting success.
type SnapshotRepository interface {
	Load() (*entity.Snapshot, LoadStatus, error)
	Save(s *entity.Snapshot) error
}
