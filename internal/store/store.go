package store

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rhyrak/krsplan/pkg/model"
)

var (
	ErrCatalogNotFound  = errors.New("catalog not found")
	ErrPlanNotFound     = errors.New("plan not found")
	ErrSubjectNotInPlan = errors.New("subject not in plan")
	ErrClassNotFound    = errors.New("class not found")
)

// CatalogEntry is a named, parsed catalog.
type CatalogEntry struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	CreatedAt time.Time      `json:"createdAt"`
	Catalog   *model.Catalog `json:"catalog"`
}

// Plan is a set of wanted subjects from one catalog plus the class chosen
// for each of them.
type Plan struct {
	ID                       string            `json:"id"`
	Name                     string            `json:"name"`
	CreatedAt                time.Time         `json:"createdAt"`
	CatalogID                string            `json:"catalogId"`
	SelectedSubjectIDs       []string          `json:"selectedSubjectIds"`
	SelectedClassBySubjectID map[string]string `json:"selectedClassBySubjectId"`
}

// Store keeps catalogs and plans in memory. Deleting a catalog deletes its
// plans. Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	catalogs []*CatalogEntry
	plans    []*Plan
}

func New() *Store {
	return &Store{}
}

// AddCatalog registers a catalog and returns its id. Newest first.
func (s *Store) AddCatalog(name string, catalog *model.Catalog) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := &CatalogEntry{ID: uuid.NewString(), Name: name, CreatedAt: time.Now(), Catalog: catalog}
	s.catalogs = append([]*CatalogEntry{entry}, s.catalogs...)
	return entry.ID
}

func (s *Store) Catalogs() []*CatalogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.catalogs)
}

func (s *Store) Catalog(id string) (*CatalogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog(id)
}

func (s *Store) catalog(id string) (*CatalogEntry, error) {
	for _, c := range s.catalogs {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, id)
}

// DeleteCatalog removes the catalog and every plan built on it.
func (s *Store) DeleteCatalog(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.catalog(id); err != nil {
		return err
	}
	s.catalogs = slices.DeleteFunc(s.catalogs, func(c *CatalogEntry) bool { return c.ID == id })
	s.plans = slices.DeleteFunc(s.plans, func(p *Plan) bool { return p.CatalogID == id })
	return nil
}

// AddPlan creates a plan over catalogID for the given subjects. Unknown
// subject ids are rejected.
func (s *Store) AddPlan(name, catalogID string, subjectIDs []string) (*Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.catalog(catalogID)
	if err != nil {
		return nil, err
	}
	for _, id := range subjectIDs {
		if entry.Catalog.Subject(id) == nil {
			return nil, fmt.Errorf("%w: %s", ErrSubjectNotInPlan, id)
		}
	}

	plan := &Plan{
		ID:                       uuid.NewString(),
		Name:                     name,
		CreatedAt:                time.Now(),
		CatalogID:                catalogID,
		SelectedSubjectIDs:       slices.Clone(subjectIDs),
		SelectedClassBySubjectID: map[string]string{},
	}
	s.plans = append([]*Plan{plan}, s.plans...)
	return clonePlan(plan), nil
}

func (s *Store) Plans() []*Plan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Plan, 0, len(s.plans))
	for _, p := range s.plans {
		out = append(out, clonePlan(p))
	}
	return out
}

func (s *Store) Plan(id string) (*Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, err := s.plan(id)
	if err != nil {
		return nil, err
	}
	return clonePlan(p), nil
}

func (s *Store) plan(id string) (*Plan, error) {
	for _, p := range s.plans {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPlanNotFound, id)
}

func (s *Store) DeletePlan(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.plan(id); err != nil {
		return err
	}
	s.plans = slices.DeleteFunc(s.plans, func(p *Plan) bool { return p.ID == id })
	return nil
}

// SelectClass picks classID for subjectID. Picking the class that is already
// selected unselects it.
func (s *Store) SelectClass(planID, subjectID, classID string) (*Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.plan(planID)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(p.SelectedSubjectIDs, subjectID) {
		return nil, fmt.Errorf("%w: %s", ErrSubjectNotInPlan, subjectID)
	}
	entry, err := s.catalog(p.CatalogID)
	if err != nil {
		return nil, err
	}
	if entry.Catalog.Subject(subjectID).Class(classID) == nil {
		return nil, fmt.Errorf("%w: %s", ErrClassNotFound, classID)
	}

	if p.SelectedClassBySubjectID[subjectID] == classID {
		delete(p.SelectedClassBySubjectID, subjectID)
	} else {
		p.SelectedClassBySubjectID[subjectID] = classID
	}
	return clonePlan(p), nil
}

// SetClasses replaces the whole subject to class mapping.
func (s *Store) SetClasses(planID string, classes map[string]string) (*Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.plan(planID)
	if err != nil {
		return nil, err
	}
	p.SelectedClassBySubjectID = make(map[string]string, len(classes))
	for k, v := range classes {
		p.SelectedClassBySubjectID[k] = v
	}
	return clonePlan(p), nil
}

// Subjects returns the plan's wanted subjects in plan order.
func (s *Store) Subjects(planID string) ([]*model.Subject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, err := s.plan(planID)
	if err != nil {
		return nil, err
	}
	entry, err := s.catalog(p.CatalogID)
	if err != nil {
		return nil, err
	}

	var out []*model.Subject
	for _, id := range p.SelectedSubjectIDs {
		if sub := entry.Catalog.Subject(id); sub != nil {
			out = append(out, sub)
		}
	}
	return out, nil
}

// Selections resolves the plan's chosen classes in plan subject order.
// Dangling references are skipped.
func (s *Store) Selections(planID string) ([]model.Selection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, err := s.plan(planID)
	if err != nil {
		return nil, err
	}
	entry, err := s.catalog(p.CatalogID)
	if err != nil {
		return nil, err
	}

	var out []model.Selection
	for _, subjectID := range p.SelectedSubjectIDs {
		classID, ok := p.SelectedClassBySubjectID[subjectID]
		if !ok {
			continue
		}
		sub := entry.Catalog.Subject(subjectID)
		if sub == nil {
			continue
		}
		if cls := sub.Class(classID); cls != nil {
			out = append(out, model.Selection{Subject: sub, Class: cls})
		}
	}
	return out, nil
}

func clonePlan(p *Plan) *Plan {
	c := *p
	c.SelectedSubjectIDs = slices.Clone(p.SelectedSubjectIDs)
	c.SelectedClassBySubjectID = make(map[string]string, len(p.SelectedClassBySubjectID))
	for k, v := range p.SelectedClassBySubjectID {
		c.SelectedClassBySubjectID[k] = v
	}
	return &c
}
