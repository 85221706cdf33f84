package dataprep

import "statplot/pkg/data"

// LabelEncode encodes categories as integers in order of first appearance.
func LabelEncode(labels []string) ([]int, map[string]int) {
	unique := map[string]int{}
	out := make([]int, len(labels))
	for i, v := range labels {
		if _, ok := unique[v]; !ok {
			unique[v] = len(unique)
		}
		out[i] = unique[v]
	}
	return out, unique
}

// Categories returns the distinct category labels in order of first appearance.
func Categories(labels []string) []string {
	_, unique := LabelEncode(labels)
	out := make([]string, len(unique))
	for c, i := range unique {
		out[i] = c
	}
	return out
}

// Group is the values of every observation sharing one category.
type Group struct {
	Category string
	Values   []float64
}

// GroupBy partitions observations by category. Groups are ordered by the
// first appearance of their category.
func GroupBy(obs []data.Observation) []Group {
	labels := make([]string, len(obs))
	for i, o := range obs {
		labels[i] = o.Category
	}
	codes, unique := LabelEncode(labels)

	groups := make([]Group, len(unique))
	for c, i := range unique {
		groups[i].Category = c
	}
	for i, o := range obs {
		g := &groups[codes[i]]
		g.Values = append(g.Values, o.Value)
	}
	return groups
}

// PointGroup is the points of every row sharing one category.
type PointGroup struct {
	Category string
	Points   []data.Point
}

// GroupPoints partitions points by category in order of first appearance.
func GroupPoints(pts []data.Point) []PointGroup {
	labels := make([]string, len(pts))
	for i, p := range pts {
		labels[i] = p.Category
	}
	codes, unique := LabelEncode(labels)

	groups := make([]PointGroup, len(unique))
	for c, i := range unique {
		groups[i].Category = c
	}
	for i, p := range pts {
		g := &groups[codes[i]]
		g.Points = append(g.Points, p)
	}
	return groups
}
