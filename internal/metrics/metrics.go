package metrics

import "CreativeSentinel/internal/model"

// Ratios holds the derived cost and conversion metrics for one creative.
type Ratios struct {
	CPAInstall float64
	CPAReg     float64
	CPADep     float64
	CRReg      float64
	CRDep      float64
}

// Compute derives the five ratio metrics from raw counters. Each ratio is
// exactly 0 when its denominator is 0, never NaN.
func Compute(spend float64, installs, registrations, deposits int) Ratios {
	var r Ratios
	if installs > 0 {
		r.CPAInstall = spend / float64(installs)
		r.CRReg = float64(registrations) / float64(installs) * 100
	}
	if registrations > 0 {
		r.CPAReg = spend / float64(registrations)
		r.CRDep = float64(deposits) / float64(registrations) * 100
	}
	if deposits > 0 {
		r.CPADep = spend / float64(deposits)
	}
	return r
}

// Apply recomputes the derived fields of m in place from its raw counters.
func Apply(m *model.CreativeMetric) {
	r := Compute(m.Spend, m.Installs, m.Registrations, m.Deposits)
	m.CPAInstall = r.CPAInstall
	m.CPAReg = r.CPAReg
	m.CPADep = r.CPADep
	m.CRReg = r.CRReg
	m.CRDep = r.CRDep
}
