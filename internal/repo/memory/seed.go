package memory

import "github.com/geocoder89/volcanoes/internal/domain/volcano"

// SampleVolcanoes is a small slice of the reference dataset for running the
// service without a database.
func SampleVolcanoes() []volcano.Volcano {
	return []volcano.Volcano{
		{
			ID: 1, Name: "Abu", Country: "Japan", Region: "Japan, Taiwan, Marianas", Subregion: "Honshu",
			LastEruption: "6850 BCE", Summit: 641, Elevation: 2103, Latitude: "34.5000", Longitude: "131.6000",
			Population5km: 3597, Population10km: 9594, Population30km: 117805, Population100km: 4071152,
		},
		{
			ID: 2, Name: "Acamarachi", Country: "Chile", Region: "South America", Subregion: "Northern Chile, Bolivia and Argentina",
			LastEruption: "Unknown", Summit: 6046, Elevation: 19836, Latitude: "-23.2920", Longitude: "-67.6180",
			Population5km: 0, Population10km: 7, Population30km: 294, Population100km: 9092,
		},
		{
			ID: 27, Name: "Crater Lake", Country: "United States", Region: "Canada and Western USA", Subregion: "USA (Oregon)",
			LastEruption: "2900 BCE", Summit: 2487, Elevation: 8159, Latitude: "42.9300", Longitude: "-122.1200",
			Population5km: 31, Population10km: 144, Population30km: 5165, Population100km: 95413,
		},
		{
			ID: 57, Name: "Arjuno-Welirang", Country: "Indonesia", Region: "Indonesia", Subregion: "Java",
			LastEruption: "1952 CE", Summit: 3343, Elevation: 10968, Latitude: "-7.7330", Longitude: "112.5750",
			Population5km: 1356, Population10km: 64475, Population30km: 2467006, Population100km: 13748958,
		},
		{
			ID: 170, Name: "Kilauea", Country: "United States", Region: "Hawaii and Pacific Ocean", Subregion: "Hawaiian Islands",
			LastEruption: "2023 CE", Summit: 1222, Elevation: 4009, Latitude: "19.4210", Longitude: "-155.2870",
			Population5km: 0, Population10km: 1420, Population30km: 22394, Population100km: 180254,
		},
		{
			ID: 400, Name: "Fuji", Country: "Japan", Region: "Japan, Taiwan, Marianas", Subregion: "Honshu",
			LastEruption: "1708 CE", Summit: 3776, Elevation: 12388, Latitude: "35.3610", Longitude: "138.7280",
			Population5km: 0, Population10km: 1244, Population30km: 568052, Population100km: 8798911,
		},
	}
}
