package court

import "errors"

var (
	// ErrNotOwner is returned when a caller tries to mutate a listing
	// they do not own.
	ErrNotOwner = errors.New("caller does not own this court")
	// ErrInvalidConfig is returned for availability configs that fail
	// validation at the write boundary.
	ErrInvalidConfig = errors.New("invalid availability config")
	// ErrUnknownSubCourt is returned when a sub-court id does not exist
	// on the listing.
	ErrUnknownSubCourt = errors.New("unknown sub-court")
)
