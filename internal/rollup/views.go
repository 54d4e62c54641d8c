package rollup

import (
	"sort"

	"CreativeSentinel/internal/country"
	"CreativeSentinel/internal/metrics"
	"CreativeSentinel/internal/model"
)

// TopCreatives ranks all-time creatives that produced at least one deposit.
// Cost metrics rank ascending (cheaper is better), everything else descending.
func (s *Store) TopCreatives(by string, limit int) []model.CreativeMetric {
	rows := s.AllTime()

	withDeposits := rows[:0]
	for _, r := range rows {
		if r.Deposits > 0 {
			withDeposits = append(withDeposits, r)
		}
	}
	rows = withDeposits

	value := metricSelector(by)
	ascending := by == "cpaDep" || by == "cpaReg" || by == "cpaInstall"
	sort.SliceStable(rows, func(i, j int) bool {
		if ascending {
			return value(rows[i]) < value(rows[j])
		}
		return value(rows[i]) > value(rows[j])
	})

	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

func metricSelector(by string) func(model.CreativeMetric) float64 {
	switch by {
	case "spend":
		return func(m model.CreativeMetric) float64 { return m.Spend }
	case "installs":
		return func(m model.CreativeMetric) float64 { return float64(m.Installs) }
	case "registrations":
		return func(m model.CreativeMetric) float64 { return float64(m.Registrations) }
	case "deposits":
		return func(m model.CreativeMetric) float64 { return float64(m.Deposits) }
	case "cpaInstall":
		return func(m model.CreativeMetric) float64 { return m.CPAInstall }
	case "cpaReg":
		return func(m model.CreativeMetric) float64 { return m.CPAReg }
	case "crReg":
		return func(m model.CreativeMetric) float64 { return m.CRReg }
	case "crDep":
		return func(m model.CreativeMetric) float64 { return m.CRDep }
	default:
		return func(m model.CreativeMetric) float64 { return m.CPADep }
	}
}

// GeoRollup sums every record across every snapshot by country and recomputes
// the ratios, home market first.
func (s *Store) GeoRollup() []model.GeoStat {
	s.mu.Lock()
	defer s.mu.Unlock()

	grouped := make(map[string]*model.GeoStat)
	for _, snap := range s.snapshots {
		for _, r := range snap.Records {
			g, ok := grouped[r.Country]
			if !ok {
				g = &model.GeoStat{Country: r.Country}
				grouped[r.Country] = g
			}
			g.Spend += r.Spend
			g.Installs += r.Installs
			g.Registrations += r.Registrations
			g.Deposits += r.Deposits
		}
	}

	out := make([]model.GeoStat, 0, len(grouped))
	for _, g := range grouped {
		r := metrics.Compute(g.Spend, g.Installs, g.Registrations, g.Deposits)
		g.CPAInstall = r.CPAInstall
		g.CPAReg = r.CPAReg
		g.CPADep = r.CPADep
		g.CRReg = r.CRReg
		g.CRDep = r.CRDep
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Country == country.Fallback {
			return true
		}
		if out[j].Country == country.Fallback {
			return false
		}
		return out[i].Country < out[j].Country
	})
	return out
}
