package session

// IStore 定義了編輯 session 的儲存介面
type IStore[T any] interface {
	Create(owner string, value T) (*Session[T], error)
	Get(id, owner string) (*Session[T], error)
	Delete(id string)
	Count() int
	Close()
}
