package repositories

import (
	"context"
	"fmt"
	"net/http"
	"rental-booking-service/internal/module/booking/models/response"
	"rental-booking-service/internal/pkg/errors"

	"github.com/goccy/go-json"
	"go.elastic.co/apm"
)

// GetListing implements Repositories. Listings are owned by the listing
// service and read on every create or quote.
func (r *repositories) GetListing(ctx context.Context, listingID int64) (response.Listing, error) {
	span, ctx := apm.StartSpan(ctx, "GetListing", "external.http")
	defer span.End()

	url := fmt.Sprintf("http://%s:%s/api/private/listings/%d", r.cfg.ListingService.Host, r.cfg.ListingService.Port, listingID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return response.Listing{}, errors.InternalServerError("error build listing request")
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.log.Error(ctx, "error call listing service", err)
		return response.Listing{}, errors.InternalServerError("error call listing service")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return response.Listing{}, errors.NotFound("listing not found")
	case resp.StatusCode != http.StatusOK:
		r.log.Error(ctx, "unexpected listing service status", resp.StatusCode)
		return response.Listing{}, errors.InternalServerError("error call listing service")
	}

	var listing response.Listing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return response.Listing{}, errors.InternalServerError("error decode listing")
	}
	return listing, nil
}
