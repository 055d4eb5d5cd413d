package store

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/franzhentze92/botanic-care-backend/models"
)

func TestPersistenceRoundTrip(t *testing.T) {
	storage := NewMemoryStorage()

	s := New("user-1", storage, zap.NewNop())
	s.AddToCart(product(1, 12.50), 2)
	s.AddToCart(product(2, 3.75), 1)
	s.AddToWishlist(product(3, 99))
	s.Close()

	restored := New("user-1", storage, zap.NewNop())
	defer restored.Close()

	want := s.State()
	got := restored.State()
	assert.Equal(t, want.Items, got.Items)
	assert.Equal(t, want.Wishlist, got.Wishlist)
	assert.Equal(t, want.CartTotal(), got.CartTotal())
}

func TestHydrateFallsBackOnCorruptState(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Save(context.Background(), keyPrefix+"user-1", []byte("{not json")))

	s := New("user-1", storage, zap.NewNop())
	defer s.Close()

	assert.Empty(t, s.State().Items)
	assert.Equal(t, 0, s.ItemCount())
}

func TestHydrateMissingKeyStartsEmpty(t *testing.T) {
	s := New("nobody", NewMemoryStorage(), zap.NewNop())
	defer s.Close()

	assert.Empty(t, s.State().Items)
	assert.Empty(t, s.State().Wishlist)
}

func TestDerivedReads(t *testing.T) {
	s := New("user-1", NewMemoryStorage(), zap.NewNop())
	defer s.Close()

	s.AddToCart(product(1, 100), 2)
	s.AddToCart(product(2, 50), 1)
	s.AddToWishlist(product(3, 10))

	assert.Equal(t, 250.0, s.CartTotal())
	assert.Equal(t, 3, s.ItemCount())
	assert.Equal(t, 1, s.WishlistCount())
	assert.True(t, s.IsInWishlist(3))
	assert.False(t, s.IsInWishlist(1))
}

func TestSubscribeSeesCommittedState(t *testing.T) {
	s := New("user-1", NewMemoryStorage(), zap.NewNop())
	defer s.Close()

	var seen []int
	s.Subscribe(func(state models.CartState) {
		seen = append(seen, state.ItemCount())
	})

	s.AddToCart(product(1, 10), 1)
	s.AddToCart(product(1, 10), 2)
	s.ClearCart()

	assert.Equal(t, []int{1, 3, 0}, seen)
}

func TestManagerReturnsSameInstancePerKey(t *testing.T) {
	m := NewManager(NewMemoryStorage(), zap.NewNop())
	defer m.Close()

	a := m.For("user-1")
	b := m.For("user-1")
	c := m.For("user-2")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}

func TestStorageFailureDoesNotBlockMutations(t *testing.T) {
	s := New("user-1", failingStorage{}, zap.NewNop())
	defer s.Close()

	outcome := s.AddToCart(product(1, 10), 1)
	assert.Equal(t, OutcomeItemAdded, outcome)
	assert.Equal(t, 1, s.ItemCount())
}

// Every dispatch below adds a distinct product, so the line count of each
// committed state is strictly larger than the one before it. The recorded
// writes must show the same strictly increasing counts, ending on the final
// state; an out-of-order enqueue would leave a stale last write.
func TestPersisterReceivesStatesInCommitOrder(t *testing.T) {
	storage := &recordingStorage{}
	s := New("user-1", storage, zap.NewNop())

	const dispatches = 50
	var wg sync.WaitGroup
	for i := 0; i < dispatches; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			s.AddToCart(product(id, 10), 1)
		}(int64(i + 1))
	}
	wg.Wait()
	s.Close()

	saves := storage.snapshot()
	require.Len(t, saves, dispatches)
	prev := 0
	for i, data := range saves {
		var doc persistedState
		require.NoError(t, json.Unmarshal(data, &doc))
		assert.Equal(t, prev+1, len(doc.Items), "write %d", i)
		prev = len(doc.Items)
	}
	assert.Equal(t, dispatches, prev)
}

type recordingStorage struct {
	mu    sync.Mutex
	saves [][]byte
}

func (r *recordingStorage) Load(context.Context, string) ([]byte, error) {
	return nil, ErrNotFound
}

func (r *recordingStorage) Save(_ context.Context, _ string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves = append(r.saves, append([]byte(nil), data...))
	return nil
}

func (r *recordingStorage) snapshot() [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]byte(nil), r.saves...)
}

type failingStorage struct{}

func (failingStorage) Load(context.Context, string) ([]byte, error) {
	return nil, &StorageError{Op: "load", Err: assert.AnError}
}

func (failingStorage) Save(context.Context, string, []byte) error {
	return &StorageError{Op: "save", Err: assert.AnError}
}
