package memory

import (
	"context"
	"sync"

	"github.com/samikhan1239/StayFinder/internal/domain"
)

type ListingStore struct {
	mu       sync.RWMutex
	listings map[string]*domain.Listing
}

func NewListingStore(listings ...*domain.Listing) *ListingStore {
	s := &ListingStore{listings: make(map[string]*domain.Listing, len(listings))}
	for _, l := range listings {
		s.listings[l.ID] = l
	}
	return s
}

func (s *ListingStore) GetByID(_ context.Context, id string) (*domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.listings[id]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	cp := *l
	return &cp, nil
}
