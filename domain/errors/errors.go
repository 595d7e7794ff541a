package errors

import "errors"

var (
	ErrUnknownCity         = errors.New("unknown city")
	ErrInvalidMonth        = errors.New("invalid month")
	ErrInvalidDay          = errors.New("invalid day")
	ErrMissingColumn       = errors.New("missing column")
	ErrInvalidTripData     = errors.New("invalid trip data")
	ErrInvalidStationData  = errors.New("invalid station data")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidDurationType = errors.New("invalid duration type")
	ErrInvalidCoordinate   = errors.New("invalid coordinate")
	ErrInputClosed         = errors.New("input closed")
)
