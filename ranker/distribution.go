package ranker

import "sort"

// Distribution maps each page of a corpus to a probability.
type Distribution map[string]float64

// Sum returns the total probability mass of the distribution.
func (d Distribution) Sum() float64 {
	var sum float64
	for _, p := range d.Pages() {
		sum += d[p]
	}
	return sum
}

// Pages returns the pages of the distribution in sorted order.
func (d Distribution) Pages() []string {
	pages := make([]string, 0, len(d))
	for p := range d {
		pages = append(pages, p)
	}
	sort.Strings(pages)
	return pages
}

// fromRow converts a slice of probabilities indexed by the sorted corpus page
// order into a Distribution.
func fromRow(pages []string, row []float64) Distribution {
	d := make(Distribution, len(pages))
	for i, p := range pages {
		d[p] = row[i]
	}
	return d
}
