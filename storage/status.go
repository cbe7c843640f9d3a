package storage

type Status struct {
	Name     string
	Keys     uint64
	Versions uint64
}

// HistoryVersions is the number of stored versions that are no longer the
// latest one for their key.
func (s *Status) HistoryVersions() uint64 {
	return s.Versions - s.Keys
}

func (s *Status) HistoryPercent() float64 {
	if s.Versions == 0 {
		return 0.0
	}
	return (float64(s.HistoryVersions()) / float64(s.Versions)) * 100.0
}
