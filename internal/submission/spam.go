package submission

import (
	"strings"
	"sync"

	"go.uber.org/zap"
)

// SpamCounter records honeypot hits per form. Callers still answer the
// client with success.
type SpamCounter struct {
	mu     sync.Mutex
	counts map[string]int
	log    *zap.Logger
}

// IsSpam reports whether the decoy field was filled in. Whitespace counts as
// empty, the same as for every other form field.
func IsSpam(honeypot string) bool {
	return strings.TrimSpace(honeypot) != ""
}

func NewSpamCounter(log *zap.Logger) *SpamCounter {
	return &SpamCounter{counts: map[string]int{}, log: log}
}

func (s *SpamCounter) Hit(form, ip string) {
	s.mu.Lock()
	s.counts[form]++
	n := s.counts[form]
	s.mu.Unlock()

	s.log.Warn("honeypot triggered",
		zap.String("form", form),
		zap.String("ip", ip),
		zap.Int("total", n))
}

func (s *SpamCounter) Snapshot() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int, len(s.counts))
	for k, v := range s.counts {
		out[k] = v
	}
	return out
}
