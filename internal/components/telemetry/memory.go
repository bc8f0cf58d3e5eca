package telemetry

import "sync"

// Report is a single call recorded by MemoryAPI.
type Report struct {
	Kind   string
	Id     string
	Params []any
}

const (
	KindBroken  = "broken"
	KindWarning = "warning"
	KindDebug   = "debug"
	KindCount   = "count"
)

// MemoryAPI records every report in memory, it is meant for tests that need to
// assert something was (or was not) reported.
type MemoryAPI struct {
	mutex   sync.Mutex
	reports []Report
}

func NewMemoryAPI() *MemoryAPI {
	return &MemoryAPI{}
}

func (m *MemoryAPI) record(kind, id string, params []any) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.reports = append(m.reports, Report{Kind: kind, Id: id, Params: params})
}

func (m *MemoryAPI) ReportBroken(id string, params ...any) {
	m.record(KindBroken, id, params)
}

func (m *MemoryAPI) ReportWarning(id string, params ...any) {
	m.record(KindWarning, id, params)
}

func (m *MemoryAPI) ReportDebug(msg string, params ...any) {
	m.record(KindDebug, msg, params)
}

func (m *MemoryAPI) ReportCount(id string, count int64) {
	m.record(KindCount, id, []any{count})
}

// Reports returns a copy of the reports of the given kind, an empty kind returns all of them.
func (m *MemoryAPI) Reports(kind string) []Report {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	var out []Report
	for _, r := range m.reports {
		if kind == "" || r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}
