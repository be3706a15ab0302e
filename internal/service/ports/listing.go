package ports

import (
	"context"

	"github.com/samikhan1239/StayFinder/internal/domain"
)

type ListingRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
}
