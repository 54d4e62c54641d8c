package recorder

// IngestEvent records one completed analyze run.
type IngestEvent struct {
	Date           string
	Records        int
	ClicksURL      string
	ConversionsURL string
	Source         string // "api" or "cron"
}

// EditEvent records a manual point edit of one creative's counters.
type EditEvent struct {
	Date          string
	CreativeID    string
	Spend         float64
	Installs      int
	Registrations int
	Deposits      int
}

// DeleteEvent records the removal of a daily snapshot.
type DeleteEvent struct {
	Date    string
	Records int
}

// Recorder persists an audit trail of store mutations for later analysis.
type Recorder interface {
	RecordIngest(evt *IngestEvent) error
	RecordEdit(evt *EditEvent) error
	RecordDelete(evt *DeleteEvent) error
	Close() error
}
