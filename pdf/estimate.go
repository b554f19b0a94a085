package pdf

// estimatedRatio maps each level to a rough output/input size ratio.
// Display heuristic only; actual output size depends entirely on the
// document's content mix.
var estimatedRatio = map[Level]float64{
	LevelNone:   1.0,
	LevelMedium: 0.6,
	LevelHigh:   0.35,
}

// EstimateSize returns a rough output size for totalBytes at the given
// level, for UI display before the actual run.
func EstimateSize(totalBytes int64, level Level) int64 {
	ratio, ok := estimatedRatio[level]
	if !ok {
		return totalBytes
	}
	return int64(float64(totalBytes) * ratio)
}
