package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonRendering(t *testing.T) {
	testCases := []struct {
		name         string
		firstName    NullName
		lastName     NullName
		wantLabel    string
		wantFullName string
	}{
		{
			name:         "Both names set",
			firstName:    NameOf("Ada"),
			lastName:     NameOf("Lovelace"),
			wantLabel:    "Lovelace, Ada",
			wantFullName: "Ada Lovelace",
		},
		{
			name:         "Both names absent",
			firstName:    NullName{},
			lastName:     NullName{},
			wantLabel:    AbsentName + ", " + AbsentName,
			wantFullName: AbsentName + " " + AbsentName,
		},
		{
			name:         "First name absent",
			firstName:    NullName{},
			lastName:     NameOf("Lovelace"),
			wantLabel:    "Lovelace, " + AbsentName,
			wantFullName: AbsentName + " Lovelace",
		},
		{
			name:         "Last name absent",
			firstName:    NameOf("Ada"),
			lastName:     NullName{},
			wantLabel:    AbsentName + ", Ada",
			wantFullName: "Ada " + AbsentName,
		},
		{
			name:         "Empty string is set, not absent",
			firstName:    NameOf(""),
			lastName:     NameOf(""),
			wantLabel:    ", ",
			wantFullName: " ",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			person := NewPerson(tc.firstName, tc.lastName)

			assert.Equal(t, tc.wantLabel, person.DisplayLabel())
			assert.Equal(t, tc.wantFullName, person.FullName())
		})
	}
}

func TestNewPerson(t *testing.T) {
	person := NewPerson(NameOf("Ada"), NullName{})

	assert.NotEmpty(t, person.ID)
	assert.True(t, person.FirstName.Valid)
	assert.Equal(t, "Ada", person.FirstName.Name)
	assert.False(t, person.LastName.Valid)

	// Timestamps belong to the repository, not the constructor
	assert.True(t, person.CreatedAt.IsZero())
	assert.True(t, person.UpdatedAt.IsZero())
}

func TestNullNameJSON(t *testing.T) {
	t.Run("Absent name marshals as null", func(t *testing.T) {
		data, err := json.Marshal(NullName{})
		require.NoError(t, err)
		assert.Equal(t, "null", string(data))
	})

	t.Run("Null unmarshals as absent", func(t *testing.T) {
		var n NullName
		require.NoError(t, json.Unmarshal([]byte("null"), &n))
		assert.False(t, n.Valid)
		assert.Equal(t, AbsentName, n.String())
	})

	t.Run("String unmarshals as set", func(t *testing.T) {
		var n NullName
		require.NoError(t, json.Unmarshal([]byte(`"Ada"`), &n))
		assert.True(t, n.Valid)
		assert.Equal(t, "Ada", n.String())
	})
}
