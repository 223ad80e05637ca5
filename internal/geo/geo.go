// Package geo resolves listing locations to approximate coordinates and
// builds placeholder map images for them. There is no real geocoding
// service behind it; a fixed table of US cities is used instead.
package geo

import (
	"strings"
)

// Coordinates is a latitude/longitude pair in degrees.
type Coordinates struct {
	Lat float64
	Lng float64
}

// DefaultCoordinates is returned for locations that match no known city.
var DefaultCoordinates = Coordinates{Lat: 40.7128, Lng: -74.0060}

type city struct {
	name   string
	coords Coordinates
}

// Partial matches are tried in this order.
var cities = []city{
	{"new york", Coordinates{40.7128, -74.0060}},
	{"los angeles", Coordinates{34.0522, -118.2437}},
	{"chicago", Coordinates{41.8781, -87.6298}},
	{"houston", Coordinates{29.7604, -95.3698}},
	{"phoenix", Coordinates{33.4484, -112.0740}},
	{"philadelphia", Coordinates{39.9526, -75.1652}},
	{"san antonio", Coordinates{29.4241, -98.4936}},
	{"san diego", Coordinates{32.7157, -117.1611}},
	{"dallas", Coordinates{32.7767, -96.7970}},
	{"san jose", Coordinates{37.3382, -121.8863}},
	{"austin", Coordinates{30.2672, -97.7431}},
	{"jacksonville", Coordinates{30.3322, -81.6557}},
	{"fort worth", Coordinates{32.7555, -97.3308}},
	{"columbus", Coordinates{39.9612, -82.9988}},
	{"charlotte", Coordinates{35.2271, -80.8431}},
	{"san francisco", Coordinates{37.7749, -122.4194}},
	{"indianapolis", Coordinates{39.7684, -86.1581}},
	{"seattle", Coordinates{47.6062, -122.3321}},
	{"denver", Coordinates{39.7392, -104.9903}},
	{"washington", Coordinates{38.9072, -77.0369}},
	{"boston", Coordinates{42.3601, -71.0589}},
	{"el paso", Coordinates{31.7619, -106.4850}},
	{"detroit", Coordinates{42.3314, -83.0458}},
	{"nashville", Coordinates{36.1627, -86.7816}},
	{"portland", Coordinates{45.5152, -122.6784}},
	{"memphis", Coordinates{35.1495, -90.0490}},
	{"oklahoma city", Coordinates{35.4676, -97.5164}},
	{"las vegas", Coordinates{36.1699, -115.1398}},
	{"louisville", Coordinates{38.2527, -85.7585}},
	{"baltimore", Coordinates{39.2904, -76.6122}},
	{"milwaukee", Coordinates{43.0389, -87.9065}},
	{"albuquerque", Coordinates{35.0844, -106.6504}},
	{"tucson", Coordinates{32.2226, -110.9747}},
	{"fresno", Coordinates{36.7378, -119.7871}},
	{"sacramento", Coordinates{38.5816, -121.4944}},
	{"mesa", Coordinates{33.4152, -111.8315}},
	{"kansas city", Coordinates{39.0997, -94.5786}},
	{"atlanta", Coordinates{33.7490, -84.3880}},
	{"long beach", Coordinates{33.7701, -118.1937}},
	{"colorado springs", Coordinates{38.8339, -104.8214}},
	{"raleigh", Coordinates{35.7796, -78.6382}},
	{"miami", Coordinates{25.7617, -80.1918}},
	{"virginia beach", Coordinates{36.8529, -75.9780}},
	{"omaha", Coordinates{41.2565, -95.9345}},
	{"oakland", Coordinates{37.8044, -122.2711}},
	{"minneapolis", Coordinates{44.9778, -93.2650}},
	{"tulsa", Coordinates{36.1540, -95.9928}},
	{"arlington", Coordinates{32.7357, -97.1081}},
	{"tampa", Coordinates{27.9506, -82.4572}},
}

var exact = func() map[string]Coordinates {
	m := make(map[string]Coordinates, len(cities))
	for _, c := range cities {
		m[c.name] = c.coords
	}
	return m
}()

// Lookup resolves location by exact city name, then by substring in either
// direction. It reports false when it fell back to DefaultCoordinates.
func Lookup(location string) (Coordinates, bool) {
	normalized := strings.ToLower(strings.TrimSpace(location))

	if c, ok := exact[normalized]; ok {
		return c, true
	}
	for _, c := range cities {
		if strings.Contains(normalized, c.name) || strings.Contains(c.name, normalized) {
			return c.coords, true
		}
	}
	return DefaultCoordinates, false
}
