package model

// AggregatedStats — суммарный вклад предметов сборки по атрибутам.
// Flat и Percent хранятся раздельно; Overcap фиксирует срезанный излишек
// по soft-cap атрибутам (нужен для легальности и cap-crossing бонусов).
type AggregatedStats struct {
	Flat    map[Attribute]float64
	Percent map[Attribute]float64
	Overcap map[Attribute]float64
}

// NewAggregatedStats returns an empty aggregation.
func NewAggregatedStats() *AggregatedStats {
	return &AggregatedStats{
		Flat:    make(map[Attribute]float64),
		Percent: make(map[Attribute]float64),
		Overcap: make(map[Attribute]float64),
	}
}

// Add accumulates one property contribution.
func (s *AggregatedStats) Add(attr Attribute, flat, percent float64) {
	if flat != 0 {
		s.Flat[attr] += flat
	}
	if percent != 0 {
		s.Percent[attr] += percent
	}
}

// FlatOf returns the flat total for attr, 0 if absent.
func (s *AggregatedStats) FlatOf(attr Attribute) float64 { return s.Flat[attr] }

// PercentOf returns the percent total for attr, 0 if absent.
func (s *AggregatedStats) PercentOf(attr Attribute) float64 { return s.Percent[attr] }

// Attributes returns every attribute with a nonzero flat or percent total.
func (s *AggregatedStats) Attributes() []Attribute {
	seen := make(map[Attribute]struct{}, len(s.Flat)+len(s.Percent))
	out := make([]Attribute, 0, len(s.Flat)+len(s.Percent))
	for a := range s.Flat {
		seen[a] = struct{}{}
		out = append(out, a)
	}
	for a := range s.Percent {
		if _, ok := seen[a]; !ok {
			out = append(out, a)
		}
	}
	return out
}
