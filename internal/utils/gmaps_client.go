package utils

import (
	"context"
	"sync"

	"googlemaps.github.io/maps"
)

/*──────────── reusable, thread-safe Geocoding client ────────────*/

var (
	geocodeClientOnce sync.Once
	geocodeClient     *maps.Client
	geocodeClientErr  error
)

func getGeocodeClient(apiKey string) (*maps.Client, error) {
	geocodeClientOnce.Do(func() {
		Logger.Info("[GMapsClient] Initializing Google Maps Geocoding client...")
		geocodeClient, geocodeClientErr = maps.NewClient(maps.WithAPIKey(apiKey))
		if geocodeClientErr != nil {
			Logger.WithError(geocodeClientErr).Error("[GMapsClient] Failed to initialize Google Maps Geocoding client")
		}
	})
	return geocodeClient, geocodeClientErr
}

// GeocodeWithGMaps forward-geocodes a place name through the Google Geocoding
// API, biased to the given region code. Returns ok=false on a clean miss;
// err is reserved for client/transport failures so the caller can fall back.
func GeocodeWithGMaps(ctx context.Context, apiKey, address, region string) (lat, lng float64, ok bool, err error) {
	cli, err := getGeocodeClient(apiKey)
	if err != nil {
		return 0, 0, false, err
	}

	req := &maps.GeocodingRequest{
		Address: address,
		Region:  region,
	}
	results, err := cli.Geocode(ctx, req)
	if err != nil {
		return 0, 0, false, err
	}
	if len(results) == 0 {
		return 0, 0, false, nil
	}

	loc := results[0].Geometry.Location
	return loc.Lat, loc.Lng, true, nil
}
