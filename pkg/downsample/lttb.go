// Package downsample reduces an ordered time series to a bounded number of
// representative points for charting, preserving the visual shape of the
// series instead of stride-sampling it.
package downsample

import "math"

// Point is one (timestamp, value) sample. X is milliseconds since epoch.
type Point struct {
	X int64   `json:"x"`
	Y float64 `json:"y"`
}

// LTTB is largest-triangle-three-buckets: the first and last points are
// always kept, the interior is split into target-2 buckets by index, and per
// bucket the point forming the largest triangle with the previously selected
// point and the next bucket's average is chosen.
//
// The input must be in chronological order. The result is a subsequence of
// the input: no point is reordered, synthesized or averaged into existence.
// A series already at or under target is returned unchanged, and a target
// below 3 degenerates to the two endpoints (a triangle needs three anchors).
func LTTB(series []Point, target int) []Point {
	if target >= len(series) {
		return series
	}
	if target < 3 {
		return []Point{series[0], series[len(series)-1]}
	}

	sampled := make([]Point, 0, target)
	sampled = append(sampled, series[0])

	// Bucket width over the interior points, endpoints excluded.
	every := float64(len(series)-2) / float64(target-2)

	a := 0 // index of the previously selected point
	for i := 0; i < target-2; i++ {
		bucketStart := int(float64(i)*every) + 1
		bucketEnd := int(float64(i+1)*every) + 1
		if bucketEnd > len(series)-1 {
			bucketEnd = len(series) - 1
		}

		nextStart := bucketEnd
		nextEnd := int(float64(i+2)*every) + 1
		if nextEnd > len(series) {
			nextEnd = len(series)
		}

		var avgX, avgY float64
		for _, p := range series[nextStart:nextEnd] {
			avgX += float64(p.X)
			avgY += p.Y
		}
		n := float64(nextEnd - nextStart)
		avgX /= n
		avgY /= n

		ax, ay := float64(series[a].X), series[a].Y

		maxArea := -1.0
		maxIdx := bucketStart
		for j := bucketStart; j < bucketEnd; j++ {
			area := math.Abs(
				(ax-avgX)*(series[j].Y-ay)-(ax-float64(series[j].X))*(avgY-ay),
			) / 2.0
			if area > maxArea {
				maxArea = area
				maxIdx = j
			}
		}

		sampled = append(sampled, series[maxIdx])
		a = maxIdx
	}

	sampled = append(sampled, series[len(series)-1])
	return sampled
}
