package application

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ptitevents/eventapp/internal/clock"
	"github.com/ptitevents/eventapp/internal/domain/entity"
	"github.com/ptitevents/eventapp/internal/domain/repository"
)

// Store is the sole mutator and sole persistence boundary for accounts and
// events. One interactive session operates against one local snapshot at a
// time; every mutation is staged on a deep clone, written durably, and only
// then committed to memory, so a failed write leaves both memory and disk
// at the previous state.
type Store struct {
	repo   repository.SnapshotRepository
	clock  clock.Clock
	creds  CredentialScheme
	logger *logrus.Logger

	state *entity.Snapshot
}

// CredentialScheme mirrors helpers.CredentialScheme; declared here so the
// application layer depends only on the behavior it needs.
type CredentialScheme interface {
	Seal(plain string) (string, error)
	Verify(stored, plain string) bool
}

// Open loads the snapshot and returns a ready store. A missing file is a
// fresh start; a corrupt file is logged and replaced with an empty snapshot
// (availability over preservation — the operator sees the warning). In both
// cases the default state is persisted immediately.
func Open(repo repository.SnapshotRepository, clk clock.Clock, creds CredentialScheme, logger *logrus.Logger) (*Store, error) {
	snap, status, err := repo.Load()
	s := &Store{repo: repo, clock: clk, creds: creds, logger: logger, state: snap}

	switch status {
	case repository.LoadFresh:
		logger.Info("no snapshot file found, starting fresh")
	case repository.LoadCorrupt:
		logger.WithError(err).Warn("snapshot unreadable, starting from empty state")
	}
	if status != repository.LoadOK {
		if err := repo.Save(snap); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
	}

	logger.WithFields(logrus.Fields{
		"accounts": len(snap.Accounts),
		"events":   len(snap.Events),
	}).Info("store opened")
	return s, nil
}

// mutate stages fn on a clone of the current state, persists the clone and
// commits it on success.
func (s *Store) mutate(fn func(st *entity.Snapshot) error) error {
	next := s.state.Clone()
	if err := fn(next); err != nil {
		return err
	}
	if err := s.repo.Save(next); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	s.state = next
	return nil
}
