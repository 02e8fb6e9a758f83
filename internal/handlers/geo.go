package handlers

import (
	"fmt"
	"strconv"
	"strings"
)

// nearbyRadiusMeters bounds every $near query to a 10 km radius.
const nearbyRadiusMeters = 10000

// parseNear parses a "lng,lat" query value into coordinates.
func parseNear(value string) (lng, lat float64, err error) {
	parts := strings.Split(strings.TrimSpace(value), ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("near must be lng,lat")
	}

	lng, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude: %s", parts[0])
	}

	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude: %s", parts[1])
	}

	if lng < -180 || lng > 180 || lat < -90 || lat > 90 {
		return 0, 0, fmt.Errorf("coordinates out of range")
	}

	return lng, lat, nil
}
