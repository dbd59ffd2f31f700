package memory

import "github.com/cesargomez89/audiovault/internal/domain"

func (s *Store) CreateUser(u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextUserID++
	u.ID = s.nextUserID
	s.users[u.ID] = *u
	return nil
}

func (s *Store) GetUser(id int) (*domain.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, false, nil
	}
	return &u, true, nil
}

func (s *Store) GetUserByUsername(username string) (*domain.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return &u, true, nil
		}
	}
	return nil, false, nil
}

func (s *Store) UpdateUser(id int, patch domain.UserPatch) (*domain.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, false, nil
	}

	if patch.Username != nil {
		u.Username = *patch.Username
	}
	if patch.Password != nil {
		u.Password = *patch.Password
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Phone != nil {
		u.Phone = *patch.Phone
	}
	if patch.FullName != nil {
		u.FullName = *patch.FullName
	}
	if patch.AvatarColor != nil {
		u.AvatarColor = *patch.AvatarColor
	}

	s.users[id] = u
	return &u, true, nil
}
