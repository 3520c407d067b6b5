package blockstore

import (
	"context"
	"sort"
	"sync"
)

type MemBlockStore struct {
	lk   sync.RWMutex
	data map[string]Entry
}

func NewMemBlockStore() *MemBlockStore {
	return &MemBlockStore{
		data: make(map[string]Entry),
	}
}

func (s *MemBlockStore) Get(ctx context.Context, did string) (*Entry, error) {
	s.lk.RLock()
	defer s.lk.RUnlock()
	e, ok := s.data[did]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (s *MemBlockStore) Put(ctx context.Context, entry Entry) error {
	s.lk.Lock()
	defer s.lk.Unlock()
	s.data[entry.DID] = entry
	return nil
}

func (s *MemBlockStore) Remove(ctx context.Context, did string) error {
	s.lk.Lock()
	defer s.lk.Unlock()
	delete(s.data, did)
	return nil
}

func (s *MemBlockStore) List(ctx context.Context) ([]Entry, error) {
	s.lk.RLock()
	defer s.lk.RUnlock()
	out := make([]Entry, 0, len(s.data))
	for _, e := range s.data {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DID < out[j].DID })
	return out, nil
}

func (s *MemBlockStore) Len(ctx context.Context) (int, error) {
	s.lk.RLock()
	defer s.lk.RUnlock()
	return len(s.data), nil
}

func (s *MemBlockStore) ReplaceAll(ctx context.Context, entries []Entry) error {
	next := make(map[string]Entry, len(entries))
	for _, e := range entries {
		next[e.DID] = e
	}
	s.lk.Lock()
	defer s.lk.Unlock()
	s.data = next
	return nil
}
