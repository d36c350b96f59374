package workload

import "fmt"

// NewDriver creates a Driver by name. Valid names: "STATIONARY_PACKET_LEVEL",
// "STATIONARY_PACKET_LEVEL_CACHE_DELAY". Panics on an unrecognized name,
// matching the corpus's registry-factory pattern.
func NewDriver(name string, p CacheDelayParams) (Driver, error) {
	switch name {
	case "STATIONARY_PACKET_LEVEL":
		return NewStationaryPacketLevelDriver(p.Params)
	case "STATIONARY_PACKET_LEVEL_CACHE_DELAY":
		return NewStationaryPacketLevelCacheDelayDriver(p)
	default:
		panic(fmt.Sprintf("unknown workload driver %q", name))
	}
}
