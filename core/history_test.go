package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainerHistory_HasWithin(t *testing.T) {
	h := &ContainerHistory{Name: "web-1"}
	h.Append(ContainerEvent{Type: EventDie, ContainerName: "web-1", Time: 100})

	assert.True(t, h.HasWithin(EventDie, 5, 103))
	assert.False(t, h.HasWithin(EventDie, 5, 110))
	assert.False(t, h.HasWithin(EventStop, 5, 100))
}

func TestContainerHistory_HasAnyWithin(t *testing.T) {
	h := &ContainerHistory{Name: "web-1"}
	h.Append(ContainerEvent{Type: EventStop, ContainerName: "web-1", Time: 95})

	assert.True(t, h.HasAnyWithin([]string{EventStop, EventKill}, 12, 100))
	assert.False(t, h.HasAnyWithin([]string{EventStop, EventKill}, 12, 200))
}

func TestContainerHistory_Prune(t *testing.T) {
	h := &ContainerHistory{Name: "web-1"}
	h.Append(ContainerEvent{Type: EventDie, ContainerName: "web-1", Time: 0})
	h.Append(ContainerEvent{Type: EventStart, ContainerName: "web-1", Time: 500})

	h.Prune(500)
	assert.Len(t, h.Events, 1)
	assert.Equal(t, EventStart, h.Events[0].Type)
}
