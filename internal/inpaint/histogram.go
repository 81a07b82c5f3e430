package inpaint

import "sort"

// FallbackColor is the estimate returned when no pixel could be sampled.
const FallbackColor = "#ffffff"

// Bucket is one histogram entry.
type Bucket struct {
	Color string `json:"color"`
	Count int    `json:"count"`
}

// Histogram counts quantized colours while remembering the order in which
// each colour was first seen. That order decides ties.
type Histogram struct {
	index   map[string]int
	buckets []Bucket
	total   int
}

// NewHistogram returns an empty histogram.
func NewHistogram() *Histogram {
	return &Histogram{index: make(map[string]int)}
}

// Add counts one occurrence of color.
func (h *Histogram) Add(color string) {
	i, ok := h.index[color]
	if !ok {
		i = len(h.buckets)
		h.index[color] = i
		h.buckets = append(h.buckets, Bucket{Color: color})
	}
	h.buckets[i].Count++
	h.total++
}

// Count returns the number of occurrences of color.
func (h *Histogram) Count(color string) int {
	if i, ok := h.index[color]; ok {
		return h.buckets[i].Count
	}
	return 0
}

// Len returns the number of distinct colours.
func (h *Histogram) Len() int {
	return len(h.buckets)
}

// Total returns the number of samples added.
func (h *Histogram) Total() int {
	return h.total
}

// Dominant returns the most frequent colour, or FallbackColor when empty.
// Among colours sharing the maximum count, the first one inserted wins.
func (h *Histogram) Dominant() string {
	best := FallbackColor
	bestCount := 0
	for _, b := range h.buckets {
		if b.Count > bestCount {
			best, bestCount = b.Color, b.Count
		}
	}
	return best
}

// Top returns up to n buckets by descending count, ties in insertion order.
func (h *Histogram) Top(n int) []Bucket {
	out := make([]Bucket, len(h.buckets))
	copy(out, h.buckets)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
