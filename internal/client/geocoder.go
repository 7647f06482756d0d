package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"
)

var ErrNoGeocodeResult = errors.New("no geocoding result for postal code")

// Geocoder resolves Singapore postal codes through OpenCage.
type Geocoder struct {
	endpoint string
	key      string
	http     *http.Client
}

func NewGeocoder(endpoint, key string, timeout time.Duration) *Geocoder {
	return &Geocoder{
		endpoint: endpoint,
		key:      key,
		http:     newHTTPClient(timeout),
	}
}

func (g *Geocoder) Lookup(ctx context.Context, postalCode string) (float64, float64, error) {
	q := url.Values{}
	q.Set("q", postalCode)
	q.Set("key", g.key)
	q.Set("countrycode", "sg")
	q.Set("limit", "1")
	var resp struct {
		Results []struct {
			Geometry struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"geometry"`
		} `json:"results"`
	}
	if err := doJSON(ctx, g.http, http.MethodGet, g.endpoint+"?"+q.Encode(), nil, nil, &resp); err != nil {
		return 0, 0, err
	}
	if len(resp.Results) == 0 {
		return 0, 0, ErrNoGeocodeResult
	}
	return resp.Results[0].Geometry.Lat, resp.Results[0].Geometry.Lng, nil
}
