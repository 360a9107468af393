package session_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"folio/adapters/session"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type counter struct {
	n int
}

func TestStore_CreateAndGet(t *testing.T) {
	store := session.NewStore[*counter]()
	t.Cleanup(store.Close)

	created, err := store.Create("owner", &counter{})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "owner", created.Owner)
	assert.Equal(t, 1, store.Count())

	got, err := store.Get(created.ID, "owner")
	require.NoError(t, err)
	assert.Same(t, created, got)
}

func TestStore_GetNotFound(t *testing.T) {
	tests := []struct {
		name  string
		id    func(created *session.Session[*counter]) string
		owner string
	}{
		{
			name:  "unknown id",
			id:    func(*session.Session[*counter]) string { return "unknown" },
			owner: "owner",
		},
		{
			name:  "another owner",
			id:    func(created *session.Session[*counter]) string { return created.ID },
			owner: "intruder",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := session.NewStore[*counter]()
			t.Cleanup(store.Close)
			created, err := store.Create("owner", &counter{})
			require.NoError(t, err)

			_, err = store.Get(tt.id(created), tt.owner)
			assert.ErrorIs(t, err, session.ErrSessionNotFound)
		})
	}
}

func TestStore_Delete(t *testing.T) {
	store := session.NewStore[*counter]()
	t.Cleanup(store.Close)
	created, err := store.Create("owner", &counter{})
	require.NoError(t, err)

	store.Delete(created.ID)
	_, err = store.Get(created.ID, "owner")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	assert.Equal(t, 0, store.Count())
}

func TestStore_Expire(t *testing.T) {
	store := session.NewStore[*counter](session.WithTTL(20*time.Millisecond), session.WithCleanupInterval(0))
	t.Cleanup(store.Close)
	created, err := store.Create("owner", &counter{})
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	_, err = store.Get(created.ID, "owner")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestStore_CloseStopsCleanup(t *testing.T) {
	store := session.NewStore[*counter](session.WithTTL(10*time.Millisecond), session.WithCleanupInterval(5*time.Millisecond))
	_, err := store.Create("owner", &counter{})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return store.Count() == 0
	}, time.Second, 5*time.Millisecond)

	store.Close()
	store.Close()
	goleak.VerifyNone(t)
}

func TestSession_Do(t *testing.T) {
	store := session.NewStore[*counter]()
	t.Cleanup(store.Close)
	created, err := store.Create("owner", &counter{})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = created.Do(func(c *counter) error {
				c.n++
				return nil
			})
		}()
	}
	wg.Wait()

	err = created.Do(func(c *counter) error {
		assert.Equal(t, 50, c.n)
		return errors.New("stop")
	})
	assert.EqualError(t, err, "[Session.Do] err=stop")
}
