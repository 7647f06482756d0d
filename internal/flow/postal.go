package flow

import (
	"context"
	"sync"
)

const postalCodeLength = 6

// PostalCodeWatcher follows a postal code field as it is typed and geocodes
// each distinct complete code once.
type PostalCodeWatcher struct {
	geo    GeocodeLookup
	mu     sync.Mutex
	looked map[string]struct{}
}

func NewPostalCodeWatcher(geo GeocodeLookup) *PostalCodeWatcher {
	return &PostalCodeWatcher{geo: geo, looked: make(map[string]struct{})}
}

func completePostalCode(value string) bool {
	if len(value) != postalCodeLength {
		return false
	}
	for _, c := range value {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Feed receives the whole field value after a keystroke. ok is true only
// when this call performed a lookup.
func (w *PostalCodeWatcher) Feed(ctx context.Context, value string) (lat, lon float64, ok bool, err error) {
	if !completePostalCode(value) {
		return 0, 0, false, nil
	}
	w.mu.Lock()
	if _, seen := w.looked[value]; seen {
		w.mu.Unlock()
		return 0, 0, false, nil
	}
	w.looked[value] = struct{}{}
	w.mu.Unlock()

	lat, lon, err = w.geo.Lookup(ctx, value)
	if err != nil {
		return 0, 0, false, err
	}
	return lat, lon, true, nil
}
