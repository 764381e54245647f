package dock

import "sync"

// hostFactory opens a Host, or fails when the platform backend is
// unavailable (no display server, unsupported OS, permissions).
type hostFactory func() (Host, error)

var (
	hostsMu sync.Mutex
	hosts   []registeredHost
)

type registeredHost struct {
	name string
	open hostFactory
}

// RegisterHost makes a platform host available to DetectHost. Platform
// packages call this from init, mirroring how adapters self-register, so the
// main package selects a backend with blank imports alone.
func RegisterHost(name string, open hostFactory) {
	hostsMu.Lock()
	defer hostsMu.Unlock()
	hosts = append(hosts, registeredHost{name: name, open: open})
}

// DetectHost returns the first registered host that opens successfully.
// Returns false when no host is registered or none opens; the caller should
// run without edge docking in that case.
func DetectHost() (Host, string, bool) {
	hostsMu.Lock()
	candidates := make([]registeredHost, len(hosts))
	copy(candidates, hosts)
	hostsMu.Unlock()

	for _, h := range candidates {
		host, err := h.open()
		if err != nil {
			continue
		}
		return host, h.name, true
	}
	return nil, "", false
}
