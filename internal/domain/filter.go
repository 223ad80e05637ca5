package domain

import (
	"math"
	"strings"
)

// PropertyCriteria narrows the approved listings. Every field is optional;
// nil, empty or zero values impose no constraint. Active criteria are ANDed.
type PropertyCriteria struct {
	// Location is a case-insensitive substring match.
	Location string
	MinPrice *float64
	MaxPrice *float64
	// PropertyType is an exact match.
	PropertyType PropertyType
	// Bedrooms and Bathrooms are minimum thresholds.
	Bedrooms  *int
	Bathrooms *int
}

// Matches reports whether p satisfies every active criterion.
// It does not look at the moderation status.
func (c PropertyCriteria) Matches(p *Property) bool {
	if c.Location != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(c.Location)) {
		return false
	}
	if lo, ok := priceBound(c.MinPrice); ok && p.Price < lo {
		return false
	}
	if hi, ok := priceBound(c.MaxPrice); ok && p.Price > hi {
		return false
	}
	if c.PropertyType != "" && p.PropertyType != c.PropertyType {
		return false
	}
	if c.Bedrooms != nil && *c.Bedrooms != 0 && p.Bedrooms < *c.Bedrooms {
		return false
	}
	if c.Bathrooms != nil && *c.Bathrooms != 0 && p.Bathrooms < *c.Bathrooms {
		return false
	}
	return true
}

// CriteriaKey is a comparable form of PropertyCriteria, used as a memo key.
type CriteriaKey struct {
	Location     string
	MinPrice     float64
	MaxPrice     float64
	PropertyType PropertyType
	Bedrooms     int
	Bathrooms    int
}

// Key normalizes the criteria so that equivalent filters share a key.
func (c PropertyCriteria) Key() CriteriaKey {
	k := CriteriaKey{
		Location:     strings.ToLower(c.Location),
		PropertyType: c.PropertyType,
	}
	k.MinPrice, _ = priceBound(c.MinPrice)
	k.MaxPrice, _ = priceBound(c.MaxPrice)
	if c.Bedrooms != nil {
		k.Bedrooms = *c.Bedrooms
	}
	if c.Bathrooms != nil {
		k.Bathrooms = *c.Bathrooms
	}
	return k
}

// priceBound returns an active price bound. Nil, zero and NaN are not set.
func priceBound(v *float64) (float64, bool) {
	if v == nil || *v == 0 || math.IsNaN(*v) {
		return 0, false
	}
	return *v, true
}
