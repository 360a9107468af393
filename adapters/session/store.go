package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

var ErrSessionNotFound = errors.New("session not found")

// StoreOptions 定義了 Store 的配置選項
type StoreOptions struct {
	TTL             time.Duration // 沒有任何操作後多久過期
	CleanupInterval time.Duration // 清除過期 session 的間隔
}

type StoreOption func(*StoreOptions)

// WithTTL 設定 session 閒置多久後過期
func WithTTL(ttl time.Duration) StoreOption {
	return func(o *StoreOptions) {
		o.TTL = ttl
	}
}

// WithCleanupInterval 設定清除過期 session 的間隔
func WithCleanupInterval(interval time.Duration) StoreOption {
	return func(o *StoreOptions) {
		o.CleanupInterval = interval
	}
}

// Store 以記憶體保存編輯 session，只適用於單一節點
//
// 過期 session 由 Store 自己的 goroutine 定期清除，使用完必須呼叫 Close
type Store[T any] struct {
	cache   *cache.Cache
	options StoreOptions

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewStore 建立一個新的 Store 實例
func NewStore[T any](opts ...StoreOption) *Store[T] {
	options := StoreOptions{
		TTL:             30 * time.Minute,
		CleanupInterval: 10 * time.Minute,
	}
	for _, opt := range opts {
		opt(&options)
	}
	// cleanup interval 為 0 時 go-cache 不會啟動無法停止的 janitor
	s := &Store[T]{
		cache:   cache.New(options.TTL, 0),
		options: options,
		done:    make(chan struct{}),
	}
	if options.CleanupInterval > 0 {
		s.wg.Add(1)
		go s.cleanup(options.CleanupInterval)
	}
	return s
}

func (s *Store[T]) cleanup(interval time.Duration) {
	defer s.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.cache.DeleteExpired()
		case <-s.done:
			return
		}
	}
}

// Close 停止清除過期 session 的 goroutine，可以重複呼叫
func (s *Store[T]) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
	s.wg.Wait()
}

// Create 建立一個屬於 owner 的新 session
func (s *Store[T]) Create(owner string, value T) (*Session[T], error) {
	const op = "session.Store.Create"
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to generate session id, err=%w", op, err)
	}
	session := newSession(id.String(), owner, value)
	s.cache.Set(session.ID, session, cache.DefaultExpiration)
	return session, nil
}

// Get 取得 session 並延長過期時間；不存在、已過期或不屬於 owner 時回傳 ErrSessionNotFound
func (s *Store[T]) Get(id, owner string) (*Session[T], error) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	session, ok := v.(*Session[T])
	if !ok || session.Owner != owner {
		return nil, ErrSessionNotFound
	}
	s.cache.Set(id, session, cache.DefaultExpiration)
	return session, nil
}

func (s *Store[T]) Delete(id string) {
	s.cache.Delete(id)
}

// Count 回傳目前尚未過期的 session 數量
func (s *Store[T]) Count() int {
	return len(s.cache.Items())
}
