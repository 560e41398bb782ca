package rct12

// Fixed capacities of the legacy formats.
const (
	MaxRidesInPark           = 255
	MaxRideObjects           = 128
	MaxStationsPerRide       = 4
	RideMeasurementMaxItems  = 4800
	MaxNewsItemTextLength    = 256
	MaxEntitiesInPark        = 10000
	CustomStringMaxLength    = 32
)
