package geo

import (
	"fmt"
	"math/rand/v2"
	"net/url"
	"strconv"
	"strings"
	"sync"
)

// Style is the visual flavor of a placeholder map.
type Style string

const (
	StyleStreets   Style = "streets"
	StyleSatellite Style = "satellite"
)

var styleColors = map[Style]string{
	StyleStreets:   "4CAF50",
	StyleSatellite: "2196F3",
}

const (
	DefaultWidth  = 400
	DefaultHeight = 300

	minZoom = 12
	maxZoom = 16
)

// Map describes a generated placeholder map image.
type Map struct {
	URL    string
	Style  Style
	Zoom   int
	Coords Coordinates
}

// MapGenerator builds placeholder map images. It is safe for concurrent use.
type MapGenerator struct {
	mu     sync.Mutex
	rng    *rand.Rand
	width  int
	height int
}

// NewMapGenerator creates a generator drawing style and zoom from src.
// A nil src uses a randomly seeded source.
func NewMapGenerator(src rand.Source) *MapGenerator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &MapGenerator{
		rng:    rand.New(src),
		width:  DefaultWidth,
		height: DefaultHeight,
	}
}

// Generate returns a placeholder image for location, labelled with the
// resolved coordinates.
func (g *MapGenerator) Generate(location string) Map {
	coords, _ := Lookup(location)

	g.mu.Lock()
	style := StyleSatellite
	if g.rng.Float64() > 0.5 {
		style = StyleStreets
	}
	zoom := minZoom + g.rng.IntN(maxZoom-minZoom+1)
	g.mu.Unlock()

	u := fmt.Sprintf("https://via.placeholder.com/%dx%d/%s/FFFFFF?text=📍+%s+Map+(%s,%s)",
		g.width, g.height, styleColors[style],
		encodeURIComponent(location),
		strconv.FormatFloat(coords.Lat, 'f', 2, 64),
		strconv.FormatFloat(coords.Lng, 'f', 2, 64),
	)

	return Map{URL: u, Style: style, Zoom: zoom, Coords: coords}
}

// uriUnreserved restores the characters a browser's URI component encoder
// leaves alone but url.QueryEscape escapes.
var uriUnreserved = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeURIComponent(s string) string {
	return uriUnreserved.Replace(url.QueryEscape(s))
}
