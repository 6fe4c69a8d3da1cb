package volcano

import "errors"

var ErrNotFound = errors.New("volcano not found")

// Volcano is one row of the reference dataset. It is loaded externally and
// never written by this service.
type Volcano struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Country         string `json:"country"`
	Region          string `json:"region"`
	Subregion       string `json:"subregion"`
	LastEruption    string `json:"last_eruption"`
	Summit          int    `json:"summit"`
	Elevation       int    `json:"elevation"`
	Latitude        string `json:"latitude"`
	Longitude       string `json:"longitude"`
	Population5km   int    `json:"population_5km"`
	Population10km  int    `json:"population_10km"`
	Population30km  int    `json:"population_30km"`
	Population100km int    `json:"population_100km"`
}

// Summary is the list projection of a volcano.
type Summary struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Country   string `json:"country"`
	Region    string `json:"region"`
	Subregion string `json:"subregion"`
}

func (v Volcano) Summary() Summary {
	return Summary{
		ID:        v.ID,
		Name:      v.Name,
		Country:   v.Country,
		Region:    v.Region,
		Subregion: v.Subregion,
	}
}

// Population returns the counter for the given radius.
func (v Volcano) Population(r Radius) int {
	switch r {
	case Radius5km:
		return v.Population5km
	case Radius10km:
		return v.Population10km
	case Radius30km:
		return v.Population30km
	case Radius100km:
		return v.Population100km
	default:
		return 0
	}
}

// ListFilter selects volcanoes of one country, optionally only those with
// people living within PopulatedWithin.
type ListFilter struct {
	Country         string
	PopulatedWithin *Radius
}
