// Package profile gates profile mutations: ownership first, then body shape,
// then date semantics. The first failing check terminates the request.
package profile

import (
	"time"

	"github.com/geocoder89/volcanoes/internal/actorctx"
	"github.com/geocoder89/volcanoes/internal/apperr"
	"github.com/geocoder89/volcanoes/internal/domain/user"
)

const (
	MsgMissingBearer   = "Authorization header ('Bearer token') not found"
	MsgForbidden       = "Forbidden"
	MsgIncomplete      = "Request body incomplete: firstName, lastName, dob and address are required."
	MsgNotStrings      = "Request body invalid: firstName, lastName and address must be strings only."
	MsgInvalidDOB      = "Invalid input: dob must be a real date in format YYYY-MM-DD."
	MsgDOBNotInThePast = "Invalid input: dob must be a date in the past."
)

// ValidateUpdate checks that id may update target's profile with body and
// returns the validated fields. body is the decoded JSON request object.
func ValidateUpdate(id actorctx.Identity, target string, body map[string]any, now time.Time) (user.ProfileUpdate, error) {
	if !id.IsAuthenticated {
		return user.ProfileUpdate{}, apperr.Unauthorized(MsgMissingBearer)
	}

	if id.User == nil || id.User.Email != target {
		return user.ProfileUpdate{}, apperr.Forbidden(MsgForbidden)
	}

	firstName, lastName, dob, address := body["firstName"], body["lastName"], body["dob"], body["address"]

	if !present(firstName) || !present(lastName) || !present(dob) || !present(address) {
		return user.ProfileUpdate{}, apperr.Validation(MsgIncomplete)
	}

	fn, ok1 := firstName.(string)
	ln, ok2 := lastName.(string)
	addr, ok3 := address.(string)

	if !ok1 || !ok2 || !ok3 {
		return user.ProfileUpdate{}, apperr.Validation(MsgNotStrings)
	}

	d, ok := dob.(string)
	if !ok || !user.IsRealDate(d) {
		return user.ProfileUpdate{}, apperr.Validation(MsgInvalidDOB)
	}

	if !user.IsBeforeDay(d, now) {
		return user.ProfileUpdate{}, apperr.Validation(MsgDOBNotInThePast)
	}

	return user.ProfileUpdate{
		FirstName: fn,
		LastName:  ln,
		DOB:       d,
		Address:   addr,
	}, nil
}

// present treats absent, null, empty string, false and zero as missing.
func present(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	default:
		return true
	}
}
