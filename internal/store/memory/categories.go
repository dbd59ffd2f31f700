package memory

import "github.com/cesargomez89/audiovault/internal/domain"

func (s *Store) CreateCategory(c *domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextCategoryID++
	c.ID = s.nextCategoryID
	s.categories[c.ID] = *c
	return nil
}

func (s *Store) GetCategory(id int) (*domain.Category, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	if !ok {
		return nil, false, nil
	}
	return &c, true, nil
}

func (s *Store) ListCategoriesByOwner(userID int) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Category{}
	for _, c := range s.categories {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Store) UpdateCategory(id int, patch domain.CategoryPatch) (*domain.Category, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[id]
	if !ok {
		return nil, false, nil
	}

	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Icon != nil {
		c.Icon = *patch.Icon
	}
	if patch.Color != nil {
		c.Color = *patch.Color
	}

	s.categories[id] = c
	return &c, true, nil
}

// DeleteCategory removes only the category; tracks keep their category id
// dangling on purpose (no cascade for categories).
func (s *Store) DeleteCategory(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return false, nil
	}
	delete(s.categories, id)
	return true, nil
}
