package utils

import (
	"strings"

	"github.com/umahmood/haversine"
)

// KnownPlace is one entry of the fixed reference table of Kosovo locations.
// The table short-circuits geocoding for the place names that cover nearly
// all listings on the site.
type KnownPlace struct {
	Name      string
	Latitude  float64
	Longitude float64
}

var KosovoPlaces = []KnownPlace{
	{Name: "Prishtina (Center)", Latitude: 42.6026, Longitude: 21.1584},
	{Name: "Prishtina (Airport)", Latitude: 42.5722, Longitude: 21.0372},
	{Name: "Drena", Latitude: 42.6400, Longitude: 20.9500},
	{Name: "Prizren", Latitude: 42.2133, Longitude: 20.7455},
	{Name: "Peja", Latitude: 42.6624, Longitude: 20.2958},
	{Name: "Gjakova", Latitude: 42.4767, Longitude: 20.4578},
	{Name: "Mitrovica", Latitude: 42.8859, Longitude: 20.8652},
	{Name: "Ferizaj", Latitude: 42.3740, Longitude: 21.2947},
	{Name: "Vushtrri", Latitude: 42.7461, Longitude: 21.0644},
	{Name: "Gjilan", Latitude: 42.4628, Longitude: 21.4700},
	{Name: "Kçitek", Latitude: 42.5206, Longitude: 21.3622},
	{Name: "Suva Reka", Latitude: 42.3206, Longitude: 20.9206},
}

// LookupKnownPlace matches a free-form location string against the reference
// table. The match is case-insensitive and substring in either direction
// ("Prizren, Kosovë" matches "Prizren"; "Peja" matches "Peja (Center)").
func LookupKnownPlace(location string) (KnownPlace, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(location))
	if trimmed == "" {
		return KnownPlace{}, false
	}
	for _, place := range KosovoPlaces {
		name := strings.ToLower(place.Name)
		if strings.Contains(name, trimmed) || strings.Contains(trimmed, name) {
			return place, true
		}
	}
	return KnownPlace{}, false
}

// IsValidCoordinates checks lat/lng against the WGS84 ranges.
func IsValidCoordinates(latitude, longitude float64) bool {
	return latitude >= -90 && latitude <= 90 &&
		longitude >= -180 && longitude <= 180
}

// DistanceKm is the great-circle distance between two points.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	_, km := haversine.Distance(
		haversine.Coord{Lat: lat1, Lon: lon1},
		haversine.Coord{Lat: lat2, Lon: lon2},
	)
	return km
}

// NearestKnownPlace returns the reference-table entry closest to the given
// coordinates and the distance to it in km.
func NearestKnownPlace(latitude, longitude float64) (KnownPlace, float64, bool) {
	if !IsValidCoordinates(latitude, longitude) {
		return KnownPlace{}, 0, false
	}
	nearest := KosovoPlaces[0]
	minDist := DistanceKm(latitude, longitude, nearest.Latitude, nearest.Longitude)
	for _, place := range KosovoPlaces[1:] {
		d := DistanceKm(latitude, longitude, place.Latitude, place.Longitude)
		if d < minDist {
			minDist = d
			nearest = place
		}
	}
	return nearest, minDist, true
}
