package ramadan

import "math"

// minutesPerDegree is the coarse solar-time approximation the tracker
// uses: each degree of longitude shifts local time by four minutes.
const minutesPerDegree = 4

// OffsetMinutes converts a longitude reading into a minute offset
// relative to the reference longitude the timetable was built for.
// Callers without a location reading pass the reference longitude
// itself (offset 0) and get the reference timings verbatim.
func OffsetMinutes(longitude, referenceLongitude float64) int {
	return int(math.Round((longitude - referenceLongitude) * minutesPerDegree))
}
