// Пакет session содержит хранилище сведений о текущем пользователе в оперативной памяти.
package session

import (
	"sync"

	"tablepay/internal/client/identity"
)

// UserInfoStorage - потокобезопасная структура для хранения сведений о вошедшем пользователе
// (имя, портал, id) в оперативной памяти. Сведения живут до завершения приложения.
type UserInfoStorage struct {
	mu   sync.RWMutex
	info identity.UserInfo
}

// Установка сведений о пользователе.
func (s *UserInfoStorage) Set(info identity.UserInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info = info
}

// Получение сведений о пользователе.
func (s *UserInfoStorage) Get() identity.UserInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.info
}

// NewUserInfoStorage - фабричная функция структуры хранения сведений о пользователе UserInfoStorage.
func NewUserInfoStorage() *UserInfoStorage {
	return &UserInfoStorage{}
}
