package session

import (
	"sync/atomic"
	"time"
)

// Snapshot is one published view of the loaded data. Nil fields mean the
// corresponding collaborator has not delivered anything.
type Snapshot struct {
	Projects []Project
	Bio      *Bio
	Links    *LinkIndex
	Files    []File
	LoadedAt time.Time
}

// HasProjects reports whether at least one project is loaded.
func (s *Snapshot) HasProjects() bool {
	return s != nil && len(s.Projects) > 0
}

// HasBio reports whether bio data is loaded.
func (s *Snapshot) HasBio() bool {
	return s != nil && s.Bio != nil
}

// HasSkills reports whether the bio lists any skills.
func (s *Snapshot) HasSkills() bool {
	return s.HasBio() && len(s.Bio.Skills) > 0
}

// HasLinks reports whether any link is loaded.
func (s *Snapshot) HasLinks() bool {
	return s != nil && s.Links.Len() > 0
}

// HasFiles reports whether any file is listed.
func (s *Snapshot) HasFiles() bool {
	return s != nil && len(s.Files) > 0
}

// Store publishes snapshots. Readers always see a complete snapshot; a
// reload replaces it wholesale.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore returns a store holding an empty snapshot.
func NewStore() *Store {
	s := &Store{}
	s.current.Store(&Snapshot{})
	return s
}

// Load returns the current snapshot. It is never nil.
func (s *Store) Load() *Snapshot {
	if snap := s.current.Load(); snap != nil {
		return snap
	}
	return &Snapshot{}
}

// Replace publishes snap as the current snapshot.
func (s *Store) Replace(snap *Snapshot) {
	if snap == nil {
		snap = &Snapshot{}
	}
	s.current.Store(snap)
}
