package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Lifecycle(t *testing.T) {
	store := NewStore()
	m := NewMachine(nil)

	id, state, err := store.Create()
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.Equal(t, NewState(), state)
	assert.Equal(t, 1, store.Len())

	updated, err := store.Update(id, func(s State) State { return m.Apply(s, CycleSort{}) })
	require.NoError(t, err)

	got, err := store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	require.NoError(t, store.Delete(id))
	assert.Equal(t, 0, store.Len())

	_, err = store.Get(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = store.Update(id, func(s State) State { return s })
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, store.Delete(id), ErrSessionNotFound)
}

func TestStore_SessionsAreIndependent(t *testing.T) {
	store := NewStore()
	m := NewMachine(nil)

	a, _, err := store.Create()
	require.NoError(t, err)
	b, _, err := store.Create()
	require.NoError(t, err)
	require.NotEqual(t, a, b)

	_, err = store.Update(a, func(s State) State { return m.Apply(s, SetRatingFilter{Rating: 1}) })
	require.NoError(t, err)

	got, err := store.Get(b)
	require.NoError(t, err)
	assert.Equal(t, NewState(), got)
}

func TestStore_ConcurrentUpdates(t *testing.T) {
	store := NewStore()
	m := NewMachine(nil)
	id, _, err := store.Create()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 60; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := store.Update(id, func(s State) State { return m.Apply(s, CycleSort{}) })
			assert.NoError(t, err, fmt.Sprintf("update %d", n))
		}(i)
	}
	wg.Wait()

	got, err := store.Get(id)
	require.NoError(t, err)
	// 60 cycles of a 6-step cycle land back on the start
	assert.Equal(t, NewState(), got)
}

func TestStore_MaxSessions(t *testing.T) {
	store := NewStore(WithMaxSessions(3))

	ids := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		id, _, err := store.Create()
		require.NoError(t, err)
		ids = append(ids, id)
	}

	_, _, err := store.Create()
	assert.ErrorIs(t, err, ErrTooManySessions)
	assert.Equal(t, 3, store.Len())

	// deleting a session frees a slot
	require.NoError(t, store.Delete(ids[0]))
	_, _, err = store.Create()
	require.NoError(t, err)
	assert.Equal(t, 3, store.Len())
}

func TestStore_NoCapByDefault(t *testing.T) {
	store := NewStore(WithMaxSessions(0))

	for i := 0; i < 100; i++ {
		_, _, err := store.Create()
		require.NoError(t, err)
	}
	assert.Equal(t, 100, store.Len())
}
