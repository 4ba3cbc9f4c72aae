package doctornotes

import (
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/exceptions"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetValue(t *testing.T) {
	t.Run("value written at any depth reads back unchanged", func(t *testing.T) {
		paths := [][]string{
			{"notes"},
			{"lunch", "dal", "bowls"},
			{"healthProfile", "familyHistory", "father", "since", "year"},
			{"weekendDiet", "snacks.list"},
			{"questionnaire", "sweet types"},
			{"a", "b", "c", "d", "e", "f", "g", "h"},
			{"a", ":1"},
			{":x"},
			{"meal", "time:am"},
			{"!true"},
		}
		values := []json.RawMessage{
			json.RawMessage(`"text"`),
			json.RawMessage(`{ "checked": true, "qty": "2" }`),
			json.RawMessage(`[1,2,3]`),
			json.RawMessage(`null`),
		}

		for _, path := range paths {
			for _, value := range values {
				doc, err := SetValue(json.RawMessage(`{"notes":"keep"}`), path, value)
				require.NoError(t, err)

				got, found, err := GetValue(doc, path)
				require.NoError(t, err)
				require.True(t, found, "path %v", path)
				assert.Equal(t, string(value), string(got))
			}
		}
	})

	t.Run("colon keys never collide with their bare names", func(t *testing.T) {
		doc, err := SetValue(json.RawMessage(`{"a":{"1":"keep"}}`), []string{"a", ":1"}, json.RawMessage(`"v"`))
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":{"1":"keep",":1":"v"}}`, string(doc))
	})

	t.Run("original document is left untouched", func(t *testing.T) {
		original := json.RawMessage(`{"lunch":{"rice":{"bowls":"1"}}}`)
		snapshot := string(original)

		next, err := SetValue(original, []string{"lunch", "rice", "bowls"}, json.RawMessage(`"2"`))
		require.NoError(t, err)
		assert.Equal(t, snapshot, string(original))
		assert.JSONEq(t, `{"lunch":{"rice":{"bowls":"2"}}}`, string(next))
	})

	t.Run("scalar on the way becomes an object", func(t *testing.T) {
		next, err := SetValue(json.RawMessage(`{"breakfast":"skipped"}`), []string{"breakfast", "time"}, json.RawMessage(`"08:00"`))
		require.NoError(t, err)
		assert.JSONEq(t, `{"breakfast":{"time":"08:00"}}`, string(next))
	})

	t.Run("empty document starts as an object", func(t *testing.T) {
		next, err := SetValue(nil, []string{"notes"}, json.RawMessage(`"x"`))
		require.NoError(t, err)
		assert.JSONEq(t, `{"notes":"x"}`, string(next))
	})

	t.Run("rejects empty paths and invalid values", func(t *testing.T) {
		_, err := SetValue(nil, nil, json.RawMessage(`1`))
		assertDevMessage(t, err, constvars.ErrDevDraftPathEmpty)

		_, err = SetValue(nil, []string{"a", ""}, json.RawMessage(`1`))
		assertDevMessage(t, err, constvars.ErrDevDraftPathEmpty)

		_, err = SetValue(nil, []string{"a"}, json.RawMessage(`{broken`))
		assertDevMessage(t, err, constvars.ErrDevDraftDocumentInvalid)
	})
}

func TestGetValue_Missing(t *testing.T) {
	_, found, err := GetValue(json.RawMessage(`{"a":{"b":1}}`), []string{"a", "c"})
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = GetValue(nil, []string{"a"})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMergeServerWins(t *testing.T) {
	tests := []struct {
		name   string
		local  string
		server string
		want   string
	}{
		{
			name:   "server overwrites matching top-level keys",
			local:  `{"notes":"local","lunch":{"rice":{"bowls":"1"},"roti":{"count":"2"}}}`,
			server: `{"lunch":{"rice":{"bowls":"3"}}}`,
			want:   `{"notes":"local","lunch":{"rice":{"bowls":"3"}}}`,
		},
		{
			name:   "draft only keys survive",
			local:  `{"dinner":{"time":"21:00"}}`,
			server: `{"notes":"server"}`,
			want:   `{"dinner":{"time":"21:00"},"notes":"server"}`,
		},
		{
			name:  "no server data keeps the draft",
			local: `{"notes":"local"}`,
			want:  `{"notes":"local"}`,
		},
		{
			name:   "no draft takes the server data",
			server: `{"notes":"server"}`,
			want:   `{"notes":"server"}`,
		},
		{
			name: "nothing anywhere",
			want: `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var local, server json.RawMessage
			if tt.local != "" {
				local = json.RawMessage(tt.local)
			}
			if tt.server != "" {
				server = json.RawMessage(tt.server)
			}

			merged, err := MergeServerWins(local, server)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(merged))
		})
	}
}

func TestValidateDocument(t *testing.T) {
	assert.NoError(t, ValidateDocument(nil))
	assert.NoError(t, ValidateDocument(json.RawMessage(`{
		"dietPreference": "Egg & Veg",
		"questionnaire": {"eatingSpeed": "Slow"},
		"healthProfile": {"conditions": [{"name": "Thyroid", "hasCondition": "No"}]},
		"dinner": {"anything": ["goes"]}
	}`)))

	err := ValidateDocument(json.RawMessage(`{"questionnaire": {"eatingSpeed": "Very fast"}}`))
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	assert.Contains(t, customErr.Fields, "eatingSpeed")

	err = ValidateDocument(json.RawMessage(`{"typeOfDietTaken": "By Friends"}`))
	require.True(t, errors.As(err, &customErr))
	assert.Contains(t, customErr.Fields["typeOfDietTaken"], "By Google, By Experts")
}

func assertDevMessage(t *testing.T, err error, devMessage string) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Contains(t, customErr.DevMessage, devMessage)
}
