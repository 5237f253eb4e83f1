package slot

import "github.com/BruksfildServices01/meeting-slots/internal/audit"

// Auditor is satisfied by *audit.Dispatcher.
type Auditor interface {
	Dispatch(ev audit.Event)
}

type nopAuditor struct{}

func (nopAuditor) Dispatch(audit.Event) {}

func auditorOrNop(a Auditor) Auditor {
	if a == nil {
		return nopAuditor{}
	}
	return a
}
