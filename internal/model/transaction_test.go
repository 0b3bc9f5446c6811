package model

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransactionID(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	id := NewTransactionID(now)
	prefix := strconv.FormatInt(now.UnixMilli(), 10)
	require.True(t, strings.HasPrefix(id, prefix), "id %q should start with %q", id, prefix)
	assert.Len(t, id, len(prefix)+9)

	for _, r := range id[len(prefix):] {
		assert.Contains(t, idSuffixAlphabet, string(r))
	}
}

func TestNewTransactionID_Unique(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewTransactionID(now)
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}

func TestTransaction_AddTag(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		add  string
		want []string
	}{
		{
			name: "appends new tag",
			tags: []string{"work"},
			add:  "travel",
			want: []string{"work", "travel"},
		},
		{
			name: "ignores exact duplicate",
			tags: []string{"work", "travel"},
			add:  "work",
			want: []string{"work", "travel"},
		},
		{
			name: "matching is case-sensitive",
			tags: []string{"work"},
			add:  "Work",
			want: []string{"work", "Work"},
		},
		{
			name: "appends to empty list",
			tags: nil,
			add:  "first",
			want: []string{"first"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := Transaction{Tags: tt.tags}
			txn.AddTag(tt.add)
			assert.Equal(t, tt.want, txn.Tags)
		})
	}
}

func TestTransaction_Clone(t *testing.T) {
	orig := Transaction{
		ID:     "abc",
		Tags:   []string{"a", "b"},
		Amount: 12.50,
	}
	clone := orig.Clone()
	clone.Tags[0] = "changed"

	assert.Equal(t, "a", orig.Tags[0])
	assert.Equal(t, orig.ID, clone.ID)
	assert.Equal(t, orig.Amount, clone.Amount)
}

func TestParseTimePeriod(t *testing.T) {
	for _, valid := range []string{"week", "month", "year"} {
		p, err := ParseTimePeriod(valid)
		require.NoError(t, err)
		assert.Equal(t, TimePeriod(valid), p)
	}

	_, err := ParseTimePeriod("quarter")
	assert.Error(t, err)
}
