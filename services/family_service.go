package services

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/camden-git/familytree/genealogy"
	"github.com/camden-git/familytree/lineage"
	"github.com/camden-git/familytree/logger"
	"github.com/camden-git/familytree/models"
	"github.com/camden-git/familytree/repository"
)

// ErrNoRoot is returned by DefaultRoot for a family without ancestors.
var ErrNoRoot = errors.Mark(errors.Mark(errors.New("no root person found in data"), genealogy.ErrRootNotFound), genealogy.ErrQuery)

// FamilyService is the read-only query facade over one validated, built family.
// Construction validates and builds eagerly; every method afterwards only reads,
// so a single service may be shared by concurrent readers.
type FamilyService struct {
	family    *models.Family
	roots     []*models.Person
	timeline  genealogy.MigrationTimeline
	lineage   *lineage.System
	sessionID string
	loadedAt  time.Time
}

// ServiceOption configures optional collaborators of a FamilyService.
type ServiceOption func(*FamilyService)

// WithLineage attaches a generational naming overlay used by DisplayName.
func WithLineage(sys *lineage.System) ServiceOption {
	return func(s *FamilyService) {
		s.lineage = sys
	}
}

// NewFamilyService validates family, builds its adjacency and returns the service.
// Any violation fails construction; no partially built service is returned.
func NewFamilyService(family *models.Family, opts ...ServiceOption) (*FamilyService, error) {
	if family == nil {
		return nil, errors.New("family is nil")
	}
	if err := genealogy.Validate(family); err != nil {
		return nil, errors.Wrap(err, "family validation failed")
	}
	roots, err := genealogy.BuildTree(family)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build family tree")
	}

	s := &FamilyService{
		family:    family,
		roots:     roots,
		timeline:  genealogy.BuildMigrationTimeline(family),
		sessionID: uuid.NewString(),
		loadedAt:  time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}

	logger.Named("family").Infow("family tree ready",
		logger.FieldSession, s.sessionID,
		logger.FieldPersons, family.Len(),
		logger.FieldRoots, len(roots),
		logger.FieldEdges, genealogy.EdgeCount(family),
	)
	return s, nil
}

// LoadFamilyService loads from repo and hands the result to NewFamilyService.
func LoadFamilyService(repo repository.FamilyRepository, opts ...ServiceOption) (*FamilyService, error) {
	family, err := repo.LoadFamily()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load family")
	}
	return NewFamilyService(family, opts...)
}

// SessionID identifies this load of the data.
func (s *FamilyService) SessionID() string { return s.sessionID }

// LoadedAt is when the tree was built.
func (s *FamilyService) LoadedAt() time.Time { return s.loadedAt }

// Family exposes the validated mapping for presentation layers. Callers must not mutate it.
func (s *FamilyService) Family() *models.Family { return s.family }

// Roots returns the persons without a parent, in source order.
func (s *FamilyService) Roots() []*models.Person {
	roots := make([]*models.Person, len(s.roots))
	copy(roots, s.roots)
	return roots
}

// DefaultRoot returns the first root in source order.
func (s *FamilyService) DefaultRoot() (*models.Person, error) {
	if len(s.roots) == 0 {
		return nil, ErrNoRoot
	}
	return s.roots[0], nil
}

// Person looks up a person by id.
func (s *FamilyService) Person(id int) (*models.Person, bool) {
	return s.family.Get(id)
}

// Children resolves the children of p.
func (s *FamilyService) Children(p *models.Person) []*models.Person {
	return s.family.ChildrenOf(p)
}

// DisplayName is the name with the generation character inserted when a lineage
// overlay is configured, else the plain name.
func (s *FamilyService) DisplayName(p *models.Person) string {
	if s.lineage == nil {
		return p.Name
	}
	return s.lineage.AnnotateName(p.Name, p.EffectiveGeneration())
}

// HasLineage reports whether a lineage overlay is configured.
func (s *FamilyService) HasLineage() bool { return s.lineage != nil }

// Subtree runs genealogy.FilterSubtree over the built tree.
func (s *FamilyService) Subtree(opts ...genealogy.Option) ([]*models.Person, error) {
	return genealogy.FilterSubtree(s.family, opts...)
}

// MigrationTimeline returns the year-ordered timeline computed at construction.
func (s *FamilyService) MigrationTimeline() genealogy.MigrationTimeline {
	return s.timeline
}

// Stats summarises the loaded tree.
type Stats struct {
	SessionID string    `json:"session_id"`
	LoadedAt  time.Time `json:"loaded_at"`
	Persons   int       `json:"persons"`
	Roots     int       `json:"roots"`
	Edges     int       `json:"edges"`
	Years     int       `json:"timeline_years"`
}

// Stats returns counts for health reporting.
func (s *FamilyService) Stats() Stats {
	return Stats{
		SessionID: s.sessionID,
		LoadedAt:  s.loadedAt,
		Persons:   s.family.Len(),
		Roots:     len(s.roots),
		Edges:     genealogy.EdgeCount(s.family),
		Years:     len(s.timeline),
	}
}
