package service

import (
	"sync"

	"github.com/google/uuid"
)

// WizardStore garde les sessions de saisie en mémoire. Elles sont transitoires
// par nature: un dossier n'existe dans le store durable qu'après Submit.
type WizardStore struct {
	mu       sync.RWMutex
	sessions map[string]Wizard
	byOrder  map[string]string // order id → session id
}

func NewWizardStore() *WizardStore {
	return &WizardStore{
		sessions: make(map[string]Wizard),
		byOrder:  make(map[string]string),
	}
}

func (s *WizardStore) New() *Wizard {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := Wizard{ID: uuid.NewString(), Step: 1}
	s.sessions[w.ID] = w
	return &w
}

// Find retourne une copie de la session; la sauvegarde est explicite.
func (s *WizardStore) Find(id string) (*Wizard, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	return &w, true
}

func (s *WizardStore) FindByOrder(orderID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byOrder[orderID]
	return id, ok
}

func (s *WizardStore) Save(w *Wizard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[w.ID] = *w
	if w.OrderID != "" {
		s.byOrder[w.OrderID] = w.ID
	}
}

func (s *WizardStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok := s.sessions[id]; ok && w.OrderID != "" {
		delete(s.byOrder, w.OrderID)
	}
	delete(s.sessions, id)
}
