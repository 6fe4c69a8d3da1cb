// Package visibility decides which fields of a profile or volcano a caller
// may see, and projects records onto those field sets.
package visibility

import (
	"github.com/geocoder89/volcanoes/internal/actorctx"
	"github.com/geocoder89/volcanoes/internal/domain/user"
	"github.com/geocoder89/volcanoes/internal/domain/volcano"
)

var (
	profilePublic = []string{"email", "firstName", "lastName"}
	profileOwner  = []string{"email", "firstName", "lastName", "dob", "address"}

	volcanoBase = []string{
		"id", "name", "country", "region", "subregion",
		"last_eruption", "summit", "elevation", "latitude", "longitude",
	}
	volcanoFull = append(append([]string{}, volcanoBase...),
		"population_5km", "population_10km", "population_30km", "population_100km",
	)
)

// ProfileFields widens the profile field set only for the profile's owner.
// Being authenticated as someone else is not enough.
func ProfileFields(id actorctx.Identity, targetEmail string) []string {
	if id.Owns(targetEmail) {
		return clone(profileOwner)
	}
	return clone(profilePublic)
}

// VolcanoFields exposes the population counters to any authenticated caller.
func VolcanoFields(id actorctx.Identity) []string {
	if id.IsAuthenticated {
		return clone(volcanoFull)
	}
	return clone(volcanoBase)
}

// Profile projects u onto fields. Unset profile values are kept as nulls so
// an owner sees every key of their own profile.
func Profile(u user.User, fields []string) map[string]any {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		switch f {
		case "email":
			out[f] = u.Email
		case "firstName":
			out[f] = u.FirstName
		case "lastName":
			out[f] = u.LastName
		case "dob":
			out[f] = u.DOB
		case "address":
			out[f] = u.Address
		}
	}
	return out
}

func Volcano(v volcano.Volcano, fields []string) map[string]any {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		switch f {
		case "id":
			out[f] = v.ID
		case "name":
			out[f] = v.Name
		case "country":
			out[f] = v.Country
		case "region":
			out[f] = v.Region
		case "subregion":
			out[f] = v.Subregion
		case "last_eruption":
			out[f] = v.LastEruption
		case "summit":
			out[f] = v.Summit
		case "elevation":
			out[f] = v.Elevation
		case "latitude":
			out[f] = v.Latitude
		case "longitude":
			out[f] = v.Longitude
		case "population_5km":
			out[f] = v.Population5km
		case "population_10km":
			out[f] = v.Population10km
		case "population_30km":
			out[f] = v.Population30km
		case "population_100km":
			out[f] = v.Population100km
		}
	}
	return out
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}
