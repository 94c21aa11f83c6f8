package searcher

import "math"

// ucb scores children of one parent:
//
//	value/(visits+1) + c*sqrt(2*ln(parentVisits)/(visits+1))
//
// The +1 denominators keep unvisited children finite while the exploration
// term still favors them. A parent with zero visits would need ln(0), so
// every child of an unvisited parent scores +Inf instead.
type ucb struct {
	c         float64
	numerator float64
	unvisited bool
}

func newUCB(c float64, parentVisits int) ucb {
	if parentVisits == 0 {
		return ucb{c: c, unvisited: true}
	}
	return ucb{c: c, numerator: 2 * math.Log(float64(parentVisits))}
}

func (u ucb) evaluate(value float64, visits int) float64 {
	if u.unvisited {
		return math.Inf(1)
	}
	n := float64(visits + 1)
	return value/n + u.c*math.Sqrt(u.numerator/n)
}
