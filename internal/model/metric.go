package model

// CreativeMetric is one per-creative row of a daily report.
type CreativeMetric struct {
	CreativeID    string  `json:"creativeId"`
	Sub1          string  `json:"sub1"`
	Country       string  `json:"country"`
	Spend         float64 `json:"spend"`
	Installs      int     `json:"installs"`
	Registrations int     `json:"registrations"`
	Deposits      int     `json:"deposits"`
	CPAInstall    float64 `json:"cpaInstall"`
	CPAReg        float64 `json:"cpaReg"`
	CPADep        float64 `json:"cpaDep"`
	CRReg         float64 `json:"crReg"`
	CRDep         float64 `json:"crDep"`
	Date          string  `json:"date"`
}

// DailySnapshot is the complete record set for one report date.
// CreativeID is unique within Records.
type DailySnapshot struct {
	Date    string           `json:"date"`
	Records []CreativeMetric `json:"records"`
}

// RawTotals holds the joined per-creative counters before metric computation.
type RawTotals struct {
	Clicks  int
	Leads   int
	Sales   int
	Country string
}

// CreativeHistory is the per-day trail of a single creative across snapshots.
type CreativeHistory struct {
	CreativeID string           `json:"creativeId"`
	Dates      []string         `json:"dates"`
	Records    []CreativeMetric `json:"records"`
}

// RecordPatch is a partial update of the four editable raw counters.
// Nil fields are left untouched.
type RecordPatch struct {
	Spend         *float64 `json:"spend"`
	Installs      *int     `json:"installs"`
	Registrations *int     `json:"registrations"`
	Deposits      *int     `json:"deposits"`
}

// GeoStat aggregates all records of one country.
type GeoStat struct {
	Country       string  `json:"country"`
	Spend         float64 `json:"spend"`
	Installs      int     `json:"installs"`
	Registrations int     `json:"registrations"`
	Deposits      int     `json:"deposits"`
	CPAInstall    float64 `json:"cpaInstall"`
	CPAReg        float64 `json:"cpaReg"`
	CPADep        float64 `json:"cpaDep"`
	CRReg         float64 `json:"crReg"`
	CRDep         float64 `json:"crDep"`
}
