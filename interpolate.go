package paintcore

import (
	"iter"
	"math"
)

// MinSpacing is the smallest distance between painthits, in pixels.
// It keeps strokes moving when pressure shrinks the brush towards zero.
const MinSpacing = 0.2

// interpolateEpsilon is the delta below which a motion is degenerate.
const interpolateEpsilon = 0.0001

// Interpolator paces painthits along a stroke by path length.
//
// The distance travelled since the last painthit is carried from one
// segment to the next, so painthits stay exactly one spacing apart across
// segment boundaries.
type Interpolator struct {
	last      Sample
	sinceLast float64
	distance  float64
}

// Reset starts a new stroke at start. The caller applies start itself.
func (ip *Interpolator) Reset(start Sample) {
	ip.last = start
	ip.sinceLast = 0
	ip.distance = 0
}

// Last returns the most recent committed sample.
func (ip *Interpolator) Last() Sample { return ip.last }

// Distance returns the total path length committed so far.
func (ip *Interpolator) Distance() float64 { return ip.distance }

// Segment plans the painthits between the last sample and to.
// Nothing changes until the segment is committed.
func (ip *Interpolator) Segment(to Sample, spacing float64) Segment {
	seg := Segment{from: ip.last, to: to, spacing: math.Max(spacing, MinSpacing)}

	dx, dy := to.X-ip.last.X, to.Y-ip.last.Y
	seg.length = math.Hypot(dx, dy)
	if seg.length < interpolateEpsilon {
		seg.length = 0
		return seg
	}

	seg.first = math.Max(seg.spacing-ip.sinceLast, 0)
	if seg.first <= seg.length {
		seg.n = int(math.Floor((seg.length-seg.first)/seg.spacing+1e-9)) + 1
	}
	return seg
}

// Commit records seg as travelled: to becomes the last sample and the
// distance since the last painthit carries into the next segment.
func (ip *Interpolator) Commit(seg Segment) {
	if seg.n > 0 {
		ip.sinceLast = seg.length - seg.distanceAt(seg.n-1)
	} else {
		ip.sinceLast += seg.length
	}
	ip.distance += seg.length
	ip.last = seg.to
}

// Segment is a planned run of painthits between two samples.
// It is a value; ranging over All repeatedly yields the same samples.
type Segment struct {
	from, to Sample
	spacing  float64
	length   float64
	first    float64
	n        int
}

// Len returns the number of painthits in the segment.
func (seg Segment) Len() int { return seg.n }

// Spacing returns the distance between consecutive painthits.
func (seg Segment) Spacing() float64 { return seg.spacing }

// Length returns the path length of the segment.
func (seg Segment) Length() float64 { return seg.length }

func (seg Segment) distanceAt(k int) float64 {
	return seg.first + float64(k)*seg.spacing
}

// At returns painthit k, interpolating every axis by path fraction.
func (seg Segment) At(k int) Sample {
	t := seg.distanceAt(k) / seg.length
	a, b := seg.from, seg.to
	return Sample{
		X:        a.X + (b.X-a.X)*t,
		Y:        a.Y + (b.Y-a.Y)*t,
		Pressure: a.Pressure + (b.Pressure-a.Pressure)*t,
		TiltX:    a.TiltX + (b.TiltX-a.TiltX)*t,
		TiltY:    a.TiltY + (b.TiltY-a.TiltY)*t,
	}
}

// All returns the painthits of the segment in order.
func (seg Segment) All() iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		for k := range seg.n {
			if !yield(seg.At(k)) {
				return
			}
		}
	}
}
