package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportance(t *testing.T) {
	assert.True(t, ImportanceOrdinary.Valid())
	assert.True(t, ImportanceImportant.Valid())
	assert.True(t, ImportanceCritical.Valid())
	assert.False(t, Importance(0).Valid())
	assert.False(t, Importance(4).Valid())

	assert.Equal(t, "ordinary", ImportanceOrdinary.String())
	assert.Equal(t, "important", ImportanceImportant.String())
	assert.Equal(t, "critical", ImportanceCritical.String())
	assert.Equal(t, "unknown", Importance(7).String())
}

func TestEventJSONHidesOwner(t *testing.T) {
	ev := Event{
		ID:         3,
		Title:      "t",
		DateTime:   time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC),
		Importance: ImportanceImportant,
		OwnerID:    99,
	}
	raw, err := json.Marshal(ev)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.NotContains(t, m, "OwnerID")
	assert.NotContains(t, m, "owner_id")
	assert.EqualValues(t, 2, m["importance"], "importance serializes as its integer code")
}
