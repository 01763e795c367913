package floats

func Average(arr []float64) float64 {
	s := 0.0
	for _, a := range arr {
		s += a
	}
	return s / float64(len(arr))
}

// CrossOver returns true if series1 crossed above series2 on the last
// step: it was at or below on the second to last sample and strictly
// above on the last. Both series are oldest first.
func CrossOver(series1 []float64, series2 []float64) bool {
	if len(series1) < 2 || len(series2) < 2 {
		return false
	}

	n1 := len(series1)
	n2 := len(series2)

	return series1[n1-2] <= series2[n2-2] && series1[n1-1] > series2[n2-1]
}

// CrossUnder returns true if series1 crossed below series2 on the last
// step.
func CrossUnder(series1 []float64, series2 []float64) bool {
	if len(series1) < 2 || len(series2) < 2 {
		return false
	}

	n1 := len(series1)
	n2 := len(series2)

	return series1[n1-2] >= series2[n2-2] && series1[n1-1] < series2[n2-1]
}
