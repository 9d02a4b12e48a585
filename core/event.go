package core

import "encoding/json"

// RawEvent is the decoded engine event object, kept as arbitrary
// key/value data exactly as it arrived over the wire. Required fields
// used downstream: "status", "id", "time" (seconds since epoch), and
// the nested Actor.Attributes map (see Name, ComposeService,
// SwarmService below).
type RawEvent map[string]any

// DecodeRawEvent parses one JSON object into a RawEvent.
func DecodeRawEvent(payload []byte) (RawEvent, error) {
	var raw RawEvent
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, WrapMalformedEventError(err)
	}
	return raw, nil
}

// Status returns the "status" field, and whether it was present.
// Events lacking status are non-container noise (spec section 3).
func (e RawEvent) Status() (string, bool) {
	v, ok := e["status"]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// ID returns the "id" field.
func (e RawEvent) ID() string {
	v, _ := e["id"].(string)
	return v
}

// Time returns the "time" field (seconds since epoch).
func (e RawEvent) Time() int64 {
	switch v := e["time"].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	default:
		return 0
	}
}

func (e RawEvent) actorAttributes() map[string]any {
	actor, _ := e["Actor"].(map[string]any)
	if actor == nil {
		return nil
	}
	attrs, _ := actor["Attributes"].(map[string]any)
	return attrs
}

// Name returns Actor.Attributes.name.
func (e RawEvent) Name() string {
	attrs := e.actorAttributes()
	if attrs == nil {
		return ""
	}
	v, _ := attrs["name"].(string)
	return v
}

// ComposeService returns Actor.Attributes."com.docker.compose.service",
// if present.
func (e RawEvent) ComposeService() (string, bool) {
	attrs := e.actorAttributes()
	if attrs == nil {
		return "", false
	}
	v, ok := attrs["com.docker.compose.service"].(string)
	return v, ok
}

// SwarmService returns Actor.Attributes."com.docker.swarm.service.name",
// if present.
func (e RawEvent) SwarmService() (string, bool) {
	attrs := e.actorAttributes()
	if attrs == nil {
		return "", false
	}
	v, ok := attrs["com.docker.swarm.service.name"].(string)
	return v, ok
}

// JSON re-serializes the raw event, used as the body of policy-originated
// mails and as the payload written to the program sink's stdin.
func (e RawEvent) JSON() ([]byte, error) {
	return json.Marshal(map[string]any(e))
}

// Event type strings the broadcaster (C3) acts on. C2 passes any other
// status through; the broadcaster ignores it (see Watched).
const (
	EventDie             = "die"
	EventStop            = "stop"
	EventKill            = "kill"
	EventStart           = "start"
	EventHealthHealthy   = "health_status: healthy"
	EventHealthUnhealthy = "health_status: unhealthy"
)

// ContainerEvent is the typed record produced by the classifier (C2)
// from a RawEvent. Type is the raw status string verbatim; it need not
// be one of the constants above.
type ContainerEvent struct {
	Type          string
	ContainerID   string
	ContainerName string
	ServiceName   string
	Time          int64
	Raw           RawEvent
}

// Watched reports whether t is one of the event types the broadcaster
// (C3) derives semantic notifications from.
func Watched(t string) bool {
	switch t {
	case EventDie, EventStop, EventKill, EventStart, EventHealthHealthy, EventHealthUnhealthy:
		return true
	default:
		return false
	}
}
