package strategy

import (
	"fmt"

	"github.com/ccnsim/ccnsim/sim"
)

// NewStrategy creates a Strategy by name. cfg supplies the parameters
// consulted by strategies that need them (TTW, P, RNG, Topology,
// CacheAssignment, UseEgoBetw); strategies that need none of it ignore cfg
// entirely. Panics on an unrecognized name, matching the corpus's
// NewRoutingPolicy/NewAdmissionPolicy registry pattern.
func NewStrategy(name string, cfg Config) sim.Strategy {
	switch name {
	case "LCE_PKT_LEVEL":
		return NewLCEPktLevel()
	case "LCD_PKT_LEVEL":
		return NewLCDPktLevel()
	case "PROB_CACHE_PKT_LEVEL":
		return NewProbCachePktLevel(cfg)
	case "LCE_PL_CD":
		return NewLCEPLCD()
	case "LCD_PL_CD":
		return NewLCDPLCD()
	case "PROB_CACHE_PL_CD":
		return NewProbCachePLCD(cfg)
	case "LCE_AVOID_BUSY_NODE":
		return NewLCEAvoidBusyNode()
	case "LCD_AVOID_BUSY_NODE":
		return NewLCDAvoidBusyNode()
	case "PROB_CACHE_AVOID_BUSY_NODE":
		return NewProbCacheAvoidBusyNode(cfg)
	case "LCE":
		return NewLCESession()
	case "LCD":
		return NewLCDSession()
	case "PARTITION":
		return NewPartition(cfg)
	case "EDGE":
		return NewEdge()
	case "PROB_CACHE":
		return NewProbCacheSession(cfg)
	case "CL4M":
		return NewCL4M(cfg)
	case "RAND_BERNOULLI":
		return NewRandBernoulli(cfg)
	case "RAND_CHOICE":
		return NewRandChoice(cfg)
	default:
		panic(fmt.Sprintf("unknown strategy %q", name))
	}
}
