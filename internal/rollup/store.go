package rollup

import (
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"CreativeSentinel/internal/country"
	"CreativeSentinel/internal/metrics"
	"CreativeSentinel/internal/model"
	"CreativeSentinel/internal/report"
)

// AllDatesLabel tags the synthetic date of all-time aggregate rows.
const AllDatesLabel = "Всі дати"

// Store is the durable rollup of daily snapshots. Snapshots are kept sorted
// newest first; all views iterate in that order. Mutations hold the mutex
// around the whole read-modify-persist sequence.
type Store struct {
	mu        sync.Mutex
	snapshots []model.DailySnapshot
	spend     map[string]float64
	backend   Backend
}

// Open loads persisted state through the backend. An unreadable store is
// logged and degrades to an empty one so ingestion can repopulate it; write
// failures after that are returned from the mutating operations.
func Open(backend Backend) *Store {
	s := &Store{backend: backend, spend: make(map[string]float64)}

	snaps, err := backend.LoadSnapshots()
	if err != nil {
		log.Printf("[WARN] load snapshots, starting empty: %v", err)
	}
	s.snapshots = snaps
	sortSnapshots(s.snapshots)

	draft, err := backend.LoadSpendDraft()
	if err != nil {
		log.Printf("[WARN] load spend draft, starting empty: %v", err)
	}
	if draft != nil {
		s.spend = draft
	}

	return s
}

// Upsert replaces the snapshot for date in full and persists the store.
// Record countries are standardized on write.
func (s *Store) Upsert(date string, records []model.CreativeMetric) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	standardized := make([]model.CreativeMetric, len(records))
	for i, r := range records {
		r.Country = country.Standardize(r.Country)
		standardized[i] = r
	}

	replaced := false
	for i := range s.snapshots {
		if s.snapshots[i].Date == date {
			s.snapshots[i].Records = standardized
			replaced = true
			break
		}
	}
	if !replaced {
		s.snapshots = append(s.snapshots, model.DailySnapshot{Date: date, Records: standardized})
	}
	sortSnapshots(s.snapshots)

	return s.persistSnapshots()
}

// Delete removes the snapshot for date. Reports whether one existed; the
// store is left unchanged when it did not.
func (s *Store) Delete(date string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snapshots {
		if s.snapshots[i].Date == date {
			s.snapshots = append(s.snapshots[:i], s.snapshots[i+1:]...)
			return true, s.persistSnapshots()
		}
	}
	return false, nil
}

// EditRecord merges patch into one record and recomputes its derived ratios.
// Reports false when the date or creative is not found.
func (s *Store) EditRecord(date, creativeID string, patch model.RecordPatch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snapshots {
		if s.snapshots[i].Date != date {
			continue
		}
		records := s.snapshots[i].Records
		for j := range records {
			if records[j].CreativeID != creativeID {
				continue
			}
			if patch.Spend != nil {
				records[j].Spend = *patch.Spend
			}
			if patch.Installs != nil {
				records[j].Installs = *patch.Installs
			}
			if patch.Registrations != nil {
				records[j].Registrations = *patch.Registrations
			}
			if patch.Deposits != nil {
				records[j].Deposits = *patch.Deposits
			}
			metrics.Apply(&records[j])
			return true, s.persistSnapshots()
		}
		return false, nil
	}
	return false, nil
}

// Snapshot returns a copy of the records stored for date.
func (s *Store) Snapshot(date string) ([]model.CreativeMetric, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, snap := range s.snapshots {
		if snap.Date == date {
			out := make([]model.CreativeMetric, len(snap.Records))
			copy(out, snap.Records)
			return out, true
		}
	}
	return nil, false
}

// ListDates returns all snapshot dates in store order, newest first.
func (s *Store) ListDates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	dates := make([]string, len(s.snapshots))
	for i, snap := range s.snapshots {
		dates[i] = snap.Date
	}
	return dates
}

// AllTime groups every record across every snapshot by creative id, sums the
// raw counters and recomputes the ratios. Country and sub1 are carried from
// the first occurrence in store iteration order.
func (s *Store) AllTime() []model.CreativeMetric {
	s.mu.Lock()
	defer s.mu.Unlock()

	grouped := make(map[string]*model.CreativeMetric)
	var order []string

	for _, snap := range s.snapshots {
		for _, r := range snap.Records {
			g, ok := grouped[r.CreativeID]
			if !ok {
				first := r
				first.Spend = 0
				first.Installs = 0
				first.Registrations = 0
				first.Deposits = 0
				first.Date = AllDatesLabel
				grouped[r.CreativeID] = &first
				order = append(order, r.CreativeID)
				g = &first
			}
			g.Spend += r.Spend
			g.Installs += r.Installs
			g.Registrations += r.Registrations
			g.Deposits += r.Deposits
		}
	}

	out := make([]model.CreativeMetric, 0, len(order))
	for _, id := range order {
		m := *grouped[id]
		metrics.Apply(&m)
		out = append(out, m)
	}
	return out
}

// History returns the dates and per-day records of one creative, in store
// iteration order.
func (s *Store) History(creativeID string) model.CreativeHistory {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := model.CreativeHistory{CreativeID: creativeID}
	for _, snap := range s.snapshots {
		for _, r := range snap.Records {
			if r.CreativeID == creativeID {
				h.Dates = append(h.Dates, snap.Date)
				h.Records = append(h.Records, r)
			}
		}
	}
	return h
}

// CreativeIDs returns every creative id seen in any snapshot, sorted.
func (s *Store) CreativeIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{})
	for _, snap := range s.snapshots {
		for _, r := range snap.Records {
			seen[r.CreativeID] = struct{}{}
		}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SpendDraft returns a copy of the staged spend map.
func (s *Store) SpendDraft() map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]float64, len(s.spend))
	for id, v := range s.spend {
		out[id] = v
	}
	return out
}

// SetSpendDraft replaces the staged spend map and persists it.
func (s *Store) SetSpendDraft(draft map[string]float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.spend = make(map[string]float64, len(draft))
	for id, v := range draft {
		s.spend[id] = v
	}
	if err := s.backend.SaveSpendDraft(s.spend); err != nil {
		return fmt.Errorf("persist spend draft: %w", err)
	}
	return nil
}

func (s *Store) persistSnapshots() error {
	if err := s.backend.SaveSnapshots(s.snapshots); err != nil {
		return fmt.Errorf("persist snapshots: %w", err)
	}
	return nil
}

// sortSnapshots keeps the collection newest first. Labels that fail to parse
// sort as if they were the current moment.
func sortSnapshots(snaps []model.DailySnapshot) {
	now := time.Now()
	sort.SliceStable(snaps, func(i, j int) bool {
		return snapshotTime(snaps[i].Date, now).After(snapshotTime(snaps[j].Date, now))
	})
}

func snapshotTime(label string, now time.Time) time.Time {
	if t, ok := report.ParseDate(label); ok {
		return t
	}
	return now
}
