// github.com/cutkernel/planar - a 2D planar-region Boolean-geometry kernel

package planar

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Encode returns the loop's stable per-node text form: one node per
// element, recording that element's start point (and, for an arc, its
// center and rotation direction), joined by ";". A segment node is
// L[x,y]; an arc node is A[x,y,cx,cy,cw], with cw 1 for clockwise, 0 for
// counter-clockwise. Each number uses 6 fractional digits.
func (lp *BoundaryLoop) Encode() string {
	elems := lp.Elements()
	parts := make([]string, len(elems))
	for i, e := range elems {
		if e.Kind == KindSegment {
			parts[i] = fmt.Sprintf("L[%.6f,%.6f]", e.Start.X, e.Start.Y)
			continue
		}
		cw := 0
		if e.Sweep < 0 {
			cw = 1
		}
		parts[i] = fmt.Sprintf("A[%.6f,%.6f,%.6f,%.6f,%d]", e.Start.X, e.Start.Y, e.Center.X, e.Center.Y, cw)
	}
	return strings.Join(parts, ";")
}

type decodedNode struct {
	isArc     bool
	x, y      float64
	cx, cy    float64
	clockwise bool
}

// DecodeLoop parses a loop from its Encode form. Leading and trailing
// whitespace around the whole string and around each node is accepted.
func DecodeLoop(s string) (*BoundaryLoop, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("planar: DecodeLoop: empty input")
	}
	rawNodes := strings.Split(s, ";")
	nodes := make([]decodedNode, len(rawNodes))
	for i, raw := range rawNodes {
		n, err := decodeNode(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("planar: DecodeLoop: node %d: %w", i, err)
		}
		nodes[i] = n
	}

	elems := make([]Element, len(nodes))
	for i, n := range nodes {
		next := nodes[(i+1)%len(nodes)]
		start := Point{X: n.x, Y: n.y}
		end := Point{X: next.x, Y: next.y}
		if !n.isArc {
			elems[i] = NewSegment(start, end, i)
			continue
		}
		center := Point{X: n.cx, Y: n.cy}
		radius := start.Sub(center).Length()
		theta0 := math.Atan2(start.Y-center.Y, start.X-center.X)
		thetaEnd := math.Atan2(end.Y-center.Y, end.X-center.X)
		sweep := arcSweepToward(theta0, thetaEnd, n.clockwise)
		elems[i] = NewArc(center, radius, theta0, sweep, i)
	}
	return NewLoopFromElements(elems), nil
}

// arcSweepToward returns the signed sweep, in the rotation direction
// given by clockwise, carrying theta0 to thetaEnd. A zero raw difference
// (start and end coincide, as for a single full-circle node) is treated
// as a complete turn rather than a zero-length arc, since a loop never
// holds a genuinely zero-length element.
func arcSweepToward(theta0, thetaEnd float64, clockwise bool) float64 {
	diff := thetaEnd - theta0
	if clockwise {
		for diff > 0 {
			diff -= 2 * math.Pi
		}
		for diff <= -2*math.Pi {
			diff += 2 * math.Pi
		}
		if diff == 0 {
			diff = -2 * math.Pi
		}
		return diff
	}
	for diff <= 0 {
		diff += 2 * math.Pi
	}
	for diff > 2*math.Pi {
		diff -= 2 * math.Pi
	}
	return diff
}

func decodeNode(s string) (decodedNode, error) {
	open := strings.IndexByte(s, '[')
	close := strings.IndexByte(s, ']')
	if open < 1 || close != len(s)-1 {
		return decodedNode{}, fmt.Errorf("malformed node %q", s)
	}
	tag := s[:open]
	fields := strings.Split(s[open+1:close], ",")

	nums := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return decodedNode{}, fmt.Errorf("field %d: %w", i, err)
		}
		nums[i] = v
	}

	switch tag {
	case "L":
		if len(nums) != 2 {
			return decodedNode{}, fmt.Errorf("L node wants 2 fields, got %d", len(nums))
		}
		return decodedNode{x: nums[0], y: nums[1]}, nil
	case "A":
		if len(nums) != 5 {
			return decodedNode{}, fmt.Errorf("A node wants 5 fields, got %d", len(nums))
		}
		return decodedNode{isArc: true, x: nums[0], y: nums[1], cx: nums[2], cy: nums[3], clockwise: nums[4] != 0}, nil
	default:
		return decodedNode{}, fmt.Errorf("unknown node tag %q", tag)
	}
}
