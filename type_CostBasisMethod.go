package valuation

import "fmt"

// CostBasisMethod defines the policy for matching sells against buys when
// computing realized P/L.
type CostBasisMethod int

const (
	// AverageCost matches every sell against the running average cost of all buys.
	AverageCost CostBasisMethod = iota
	// FIFO (First-In, First-Out) matches sells against the oldest remaining buy lots.
	FIFO
)

func (m CostBasisMethod) String() string {
	switch m {
	case AverageCost:
		return "average"
	case FIFO:
		return "fifo"
	default:
		return "unknown"
	}
}

// ParseCostBasisMethod parses a string into a CostBasisMethod.
func ParseCostBasisMethod(s string) (CostBasisMethod, error) {
	switch s {
	case "average":
		return AverageCost, nil
	case "fifo":
		return FIFO, nil
	default:
		return 0, fmt.Errorf("unknown cost basis method: %q", s)
	}
}
