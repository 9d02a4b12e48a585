// Package classify implements C2, the event classifier: it normalizes
// a RawEvent into a typed core.ContainerEvent, dropping anything that
// isn't container-related noise.
package classify

import "github.com/netresearch/dockwatch/core"

// Classify converts raw into a ContainerEvent. ok is false only when
// status is absent (raw is non-container noise per spec section 4.2).
// When neither Actor.Attributes key for the service name is present,
// ServiceName is left empty and ok is still true.
func Classify(raw core.RawEvent) (core.ContainerEvent, bool) {
	status, ok := raw.Status()
	if !ok {
		return core.ContainerEvent{}, false
	}

	service, ok := raw.ComposeService()
	if !ok {
		service, _ = raw.SwarmService()
	}

	return core.ContainerEvent{
		Type:          status,
		ContainerID:   raw.ID(),
		ContainerName: raw.Name(),
		ServiceName:   service,
		Time:          raw.Time(),
		Raw:           raw,
	}, true
}
