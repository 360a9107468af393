package session

import (
	"fmt"
	"sync"
	"time"
)

// Session 是一個管理者的編輯流程，保存編輯中的資料直到儲存或過期
type Session[T any] struct {
	ID        string
	Owner     string
	CreatedAt time.Time

	mu    sync.Mutex // 同一個 session 可能同時收到多個請求，操作 value 前必須取得鎖
	value T
}

func newSession[T any](id, owner string, value T) *Session[T] {
	return &Session[T]{
		ID:        id,
		Owner:     owner,
		CreatedAt: time.Now(),
		value:     value,
	}
}

// Do 在持有鎖的情況下操作 session 的資料
func (s *Session[T]) Do(fn func(value T) error) error {
	const op = "Session.Do"
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.value); err != nil {
		return fmt.Errorf("[%s] err=%w", op, err)
	}
	return nil
}
