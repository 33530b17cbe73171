// Package utils provides small helpers shared by the service and API layers.
package utils

import (
	"strings"

	"github.com/google/uuid"
)

// Prefixes make IDs self-describing in logs: "veh_..." is obviously a
// vehicle, "req_..." a request.
const (
	VehiclePrefix = "veh_"
	RequestPrefix = "req_"
)

// NewVehicleID returns a random, prefixed vehicle identifier.
//
// Go Learning Note — "github.com/google/uuid":
// uuid.New() returns a random (v4) UUID. Random IDs need no central counter,
// so two servers can register vehicles concurrently without colliding.
func NewVehicleID() string {
	return VehiclePrefix + uuid.NewString()
}

// NewRequestID returns a random, prefixed request identifier.
func NewRequestID() string {
	return RequestPrefix + uuid.NewString()
}

// IsVehicleID reports whether id has the vehicle prefix and a valid UUID body.
func IsVehicleID(id string) bool {
	body, ok := strings.CutPrefix(id, VehiclePrefix)
	if !ok {
		return false
	}
	_, err := uuid.Parse(body)
	return err == nil
}
