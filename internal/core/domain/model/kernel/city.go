package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// City identifies one of the cities the marketplace operates in.
// The set is closed: every address, shop, and shipper belongs to exactly
// one of these cities, and delivery eligibility is decided purely by
// city equality.
//
// City is a value object that validates membership in the closed set and
// provides string representations for persistence and display.
type City int

const (
	// UnknownCity represents an invalid or undefined city.
	// This value (0) helps catch uninitialized City values.
	UnknownCity City = iota

	// Hanoi is the capital city.
	Hanoi

	// HoChiMinhCity is the largest city in the south.
	HoChiMinhCity

	// DaNang is the central coastal city.
	DaNang

	// HaiPhong is the northern port city.
	HaiPhong

	// CanTho is the Mekong delta city.
	CanTho
)

// getCityStrings returns a map of City values to their display names.
// All cities are included for string conversion.
func getCityStrings() map[City]string {
	return map[City]string{
		UnknownCity:   "Unknown",
		Hanoi:         "Hanoi",
		HoChiMinhCity: "Ho Chi Minh City",
		DaNang:        "Da Nang",
		HaiPhong:      "Hai Phong",
		CanTho:        "Can Tho",
	}
}

// getValidCityStrings returns a map of only valid City values.
// Only valid cities are included to support validation.
func getValidCityStrings() map[City]string {
	//nolint:exhaustive // UnknownCity is intentionally excluded as it's invalid
	return map[City]string{
		Hanoi:         "Hanoi",
		HoChiMinhCity: "Ho Chi Minh City",
		DaNang:        "Da Nang",
		HaiPhong:      "Hai Phong",
		CanTho:        "Can Tho",
	}
}

// Validate checks if the City value belongs to the closed set.
//
// Returns:
//   - nil if the city is valid
//   - error with details if the city is invalid
//
// This method is used to ensure City values from external sources
// (e.g., database, API) are valid before use.
func (c City) Validate() error {
	if _, ok := getValidCityStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("city is invalid", fmt.Errorf("%d is not a valid city", c))
	}
	return nil
}

// String returns the human-readable name of the city.
// Implements fmt.Stringer and is safe to call on any City value.
func (c City) String() string {
	if str, ok := getCityStrings()[c]; ok {
		return str
	}
	return "Unknown"
}

// CityFromString parses a display name back into a City.
// Returns an error if the name does not belong to the closed set.
func CityFromString(s string) (City, error) {
	for city, str := range getValidCityStrings() {
		if str == s {
			return city, nil
		}
	}
	return UnknownCity, errs.NewValueIsInvalidErrorWithCause("city is invalid",
		fmt.Errorf("%q is not a valid city", s))
}
