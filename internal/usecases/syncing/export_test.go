package syncing

import "time"

func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

func (s *Service) SetIDGenerator(gen func() (string, error)) {
	s.newID = gen
}
