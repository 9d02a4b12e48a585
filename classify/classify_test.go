package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netresearch/dockwatch/core"
)

func decode(t *testing.T, payload string) core.RawEvent {
	t.Helper()
	raw, err := core.DecodeRawEvent([]byte(payload))
	require.NoError(t, err)
	return raw
}

func TestClassify_Die(t *testing.T) {
	raw := decode(t, `{
		"status": "die", "id": "c1", "time": 100,
		"Actor": {"Attributes": {"name": "web-1", "com.docker.compose.service": "web"}}
	}`)

	ev, ok := Classify(raw)
	require.True(t, ok)
	assert.Equal(t, core.EventDie, ev.Type)
	assert.Equal(t, "c1", ev.ContainerID)
	assert.Equal(t, "web-1", ev.ContainerName)
	assert.Equal(t, "web", ev.ServiceName)
	assert.EqualValues(t, 100, ev.Time)
}

func TestClassify_NoStatus_Dropped(t *testing.T) {
	raw := decode(t, `{"Type": "network", "Action": "disconnect"}`)

	_, ok := Classify(raw)
	assert.False(t, ok)
}

func TestClassify_SwarmServiceFallback(t *testing.T) {
	raw := decode(t, `{
		"status": "start", "id": "c2", "time": 200,
		"Actor": {"Attributes": {"name": "svc-1", "com.docker.swarm.service.name": "svc"}}
	}`)

	ev, ok := Classify(raw)
	require.True(t, ok)
	assert.Equal(t, "svc", ev.ServiceName)
}

func TestClassify_AnyStatusPassesThrough(t *testing.T) {
	// C2 only drops events lacking a status; recognizing which types
	// are "watched" is C3's job (core.Watched), not C2's.
	raw := decode(t, `{"status": "pause", "id": "c3", "time": 1, "Actor": {"Attributes": {"name": "x"}}}`)

	ev, ok := Classify(raw)
	require.True(t, ok)
	assert.Equal(t, "pause", ev.Type)
}
