package domain

import (
	"math"
	"testing"
)

func TestPropertyCriteria_Matches(t *testing.T) {
	t.Parallel()

	p := sampleProperty()

	tests := []struct {
		name     string
		criteria PropertyCriteria
		want     bool
	}{
		{"empty criteria", PropertyCriteria{}, true},
		{"location substring case-insensitive", PropertyCriteria{Location: "tah"}, true},
		{"location mismatch", PropertyCriteria{Location: "Reno"}, false},
		{"min price inclusive", PropertyCriteria{MinPrice: ptr(300000.0)}, true},
		{"min price above", PropertyCriteria{MinPrice: ptr(300001.0)}, false},
		{"max price inclusive", PropertyCriteria{MaxPrice: ptr(300000.0)}, true},
		{"max price below", PropertyCriteria{MaxPrice: ptr(299999.0)}, false},
		{"zero max price is no constraint", PropertyCriteria{MaxPrice: ptr(0.0)}, true},
		{"NaN min price is no constraint", PropertyCriteria{MinPrice: ptr(math.NaN())}, true},
		{"NaN max price is no constraint", PropertyCriteria{MaxPrice: ptr(math.NaN())}, true},
		{"type match", PropertyCriteria{PropertyType: PropertyTypeHouse}, true},
		{"type mismatch", PropertyCriteria{PropertyType: PropertyTypeCondo}, false},
		{"bedrooms threshold", PropertyCriteria{Bedrooms: ptr(3)}, true},
		{"bedrooms above", PropertyCriteria{Bedrooms: ptr(4)}, false},
		{"bathrooms threshold", PropertyCriteria{Bathrooms: ptr(2)}, true},
		{"bathrooms above", PropertyCriteria{Bathrooms: ptr(3)}, false},
		{
			"conjunction all pass",
			PropertyCriteria{PropertyType: PropertyTypeHouse, MinPrice: ptr(100000.0), Location: "TAHOE"},
			true,
		},
		{
			"conjunction one fails",
			PropertyCriteria{PropertyType: PropertyTypeHouse, MinPrice: ptr(400000.0)},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.criteria.Matches(&p); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPropertyCriteria_Key_NormalizesLocation(t *testing.T) {
	t.Parallel()

	a := PropertyCriteria{Location: "Tahoe", MinPrice: ptr(10.0)}.Key()
	b := PropertyCriteria{Location: "tahoe", MinPrice: ptr(10.0)}.Key()
	if a != b {
		t.Fatalf("keys differ: %+v vs %+v", a, b)
	}

	c := PropertyCriteria{Location: "tahoe"}.Key()
	if a == c {
		t.Fatal("keys with different price bounds should differ")
	}
}

func TestPropertyCriteria_Key_NaNPriceIsUnset(t *testing.T) {
	t.Parallel()

	a := PropertyCriteria{Location: "tahoe", MinPrice: ptr(math.NaN()), MaxPrice: ptr(math.NaN())}.Key()
	b := PropertyCriteria{Location: "tahoe", MinPrice: ptr(math.NaN()), MaxPrice: ptr(math.NaN())}.Key()
	if a != b {
		t.Fatalf("NaN bounds should give equal keys: %+v vs %+v", a, b)
	}
	if unset := (PropertyCriteria{Location: "tahoe"}).Key(); a != unset {
		t.Fatalf("NaN bounds should key like unset bounds: %+v vs %+v", a, unset)
	}
}
