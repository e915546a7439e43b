package session

import "sync"

// Store хранит сессии пользователей в памяти процесса. Цикл обработки
// обновлений однопоточный, но доступ к мапе все равно закрыт мьютексом,
// чтобы хранилище оставалось корректным при любом способе запуска.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]*UserSession
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[int64]*UserSession),
	}
}

func (s *Store) Get(chatID int64) (*UserSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[chatID]
	return sess, ok
}

func (s *Store) Put(chatID int64, sess *UserSession) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[chatID] = sess
}
