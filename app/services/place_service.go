package services

import (
	"context"
	"sync"

	"github.com/map-api/app/models"
	"go.uber.org/zap"
)

// PlaceService resolves batches of place records into map-ready outputs.
type PlaceService struct {
	geocoder *GeocodeService
	logger   *zap.Logger
}

// BatchResult is the aggregate outcome of one batch. Failed items carry no
// entry in Places; FailedCount is their only trace.
type BatchResult struct {
	Places       []models.PlaceOutput
	SuccessCount int
	FailedCount  int
}

// NewPlaceService creates a PlaceService.
func NewPlaceService(geocoder *GeocodeService, logger *zap.Logger) *PlaceService {
	return &PlaceService{
		geocoder: geocoder,
		logger:   logger,
	}
}

// ResolveAll geocodes every item concurrently and independently: no item's
// failure blocks or cancels a sibling, and the handler gets control back only
// once every item has settled. Output order follows input order; ids are
// synthesized from each item's original index.
func (ps *PlaceService) ResolveAll(ctx context.Context, items []models.PlaceInput, source string) BatchResult {
	slots := make([]*models.PlaceOutput, len(items))

	var wg sync.WaitGroup
	for i := range items {
		wg.Add(1)
		go func(index int, item models.PlaceInput) {
			defer wg.Done()

			geo, err := ps.geocoder.Resolve(ctx, item.Location)
			if err != nil {
				ps.logger.Warn("Place dropped from batch",
					zap.String("name", item.Name),
					zap.String("location", item.Location),
					zap.Error(err))
				return
			}

			out := FormatPlace(item, geo, index, source)
			slots[index] = &out
		}(i, items[i])
	}
	wg.Wait()

	places := make([]models.PlaceOutput, 0, len(items))
	for _, out := range slots {
		if out != nil {
			places = append(places, *out)
		}
	}

	return BatchResult{
		Places:       places,
		SuccessCount: len(places),
		FailedCount:  len(items) - len(places),
	}
}
