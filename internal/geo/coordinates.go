// Package geo serves static geographic reference data for the map view.
package geo

import "fmt"

// CountryCoordinates is a map marker position for one country.
type CountryCoordinates struct {
	ISO3Code  string  `json:"iso3_code"`
	Label     string  `json:"label"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewCountryCoordinates validates and constructs a marker. Range
// violations signal malformed static data and fail construction.
func NewCountryCoordinates(iso3Code, label string, latitude, longitude float64) (CountryCoordinates, error) {
	if latitude < -90 || latitude > 90 {
		return CountryCoordinates{}, fmt.Errorf("invalid latitude: %v", latitude)
	}
	if longitude < -180 || longitude > 180 {
		return CountryCoordinates{}, fmt.Errorf("invalid longitude: %v", longitude)
	}
	return CountryCoordinates{
		ISO3Code:  iso3Code,
		Label:     label,
		Latitude:  latitude,
		Longitude: longitude,
	}, nil
}

// countryCoordinates matches the frontend's reference table.
// Coordinates are not in the graph, so the map is served from here.
// Malformed static data fails at process start.
var countryCoordinates = mustCoordinates([]CountryCoordinates{
	{"IDN", "Indonesia", -0.7893, 113.9213},
	{"IND", "India", 20.5937, 78.9629},
	{"BRA", "Brazil", -14.2350, -51.9253},
	{"USA", "United States", 37.0902, -95.7129},
	{"CHN", "China", 35.8617, 104.1954},
	{"RUS", "Russia", 61.5240, 105.3188},
	{"JPN", "Japan", 36.2048, 138.2529},
	{"DEU", "Germany", 51.1657, 10.4515},
	{"GBR", "United Kingdom", 55.3781, -3.4360},
	{"FRA", "France", 46.2276, 2.2137},
	{"ITA", "Italy", 41.8719, 12.5674},
	{"CAN", "Canada", 56.1304, -106.3468},
	{"AUS", "Australia", -25.2744, 133.7751},
	{"MEX", "Mexico", 23.6345, -102.5528},
	{"ARG", "Argentina", -38.4161, -63.6167},
	{"ZAF", "South Africa", -30.5595, 22.9375},
	{"EGY", "Egypt", 26.8206, 30.8025},
	{"NGA", "Nigeria", 9.0820, 8.6753},
	{"KEN", "Kenya", -0.0236, 37.9062},
	{"ETH", "Ethiopia", 9.1450, 40.4897},
	{"THA", "Thailand", 15.8700, 100.9925},
	{"VNM", "Vietnam", 14.0583, 108.2772},
	{"PHL", "Philippines", 12.8797, 121.7740},
	{"PAK", "Pakistan", 30.3753, 69.3451},
	{"BGD", "Bangladesh", 23.6850, 90.3563},
})

// mustCoordinates runs every table row through the validating
// constructor, panicking on the first invalid row.
func mustCoordinates(rows []CountryCoordinates) []CountryCoordinates {
	out := make([]CountryCoordinates, 0, len(rows))
	for _, r := range rows {
		c, err := NewCountryCoordinates(r.ISO3Code, r.Label, r.Latitude, r.Longitude)
		if err != nil {
			panic(fmt.Sprintf("country coordinates table: %s: %v", r.ISO3Code, err))
		}
		out = append(out, c)
	}
	return out
}

// AllCoordinates returns the full reference table.
func AllCoordinates() []CountryCoordinates {
	out := make([]CountryCoordinates, len(countryCoordinates))
	copy(out, countryCoordinates)
	return out
}
