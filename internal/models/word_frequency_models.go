package models

type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// WordFrequencies is ordered by Count descending; ties keep first-seen order.
type WordFrequencies []WordCount

// Top returns at most n leading entries.
func (wf WordFrequencies) Top(n int) WordFrequencies {
	if n < 0 || n >= len(wf) {
		return wf
	}
	return wf[:n]
}

func (wf WordFrequencies) Total() int {
	total := 0
	for _, wc := range wf {
		total += wc.Count
	}
	return total
}

func (wf WordFrequencies) Map() map[string]int {
	m := make(map[string]int, len(wf))
	for _, wc := range wf {
		m[wc.Word] = wc.Count
	}
	return m
}
