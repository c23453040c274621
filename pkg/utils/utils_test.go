package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	paris := time.FixedZone("CET", 3600)

	tests := []struct {
		name    string
		value   string
		loc     *time.Location
		want    *time.Time
		wantErr bool
	}{
		{name: "empty value", value: "  "},
		{
			name:  "rfc3339",
			value: "2024-03-01T10:00:00+02:00",
			want:  ptr(time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)),
		},
		{
			name:  "datetime-local in location",
			value: "2024-03-01T10:00",
			loc:   paris,
			want:  ptr(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)),
		},
		{
			name:  "datetime-local defaults to utc",
			value: "2024-03-01T10:00",
			want:  ptr(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)),
		},
		{name: "garbage", value: "tomorrow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateTime(tt.value, tt.loc)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMicro(t *testing.T) {
	assert.Equal(t, 5.0, MicroToUnits(5_000_000))
	assert.Equal(t, 0.13, MicroToUnits(125_000))
	assert.Equal(t, int64(12_340_000), UnitsToMicro(12.34))

	budget := int64(5_000_000)
	assert.Equal(t, "5.00 USD", FormatMicro(&budget, "USD"))
	assert.Equal(t, "5.00", FormatMicro(&budget, ""))
	assert.Equal(t, "-", FormatMicro(nil, "USD"))
}

func TestGenerateID(t *testing.T) {
	first, err := GenerateID()
	require.NoError(t, err)
	second, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, first, 10)
	assert.NotEqual(t, first, second)
}

func TestPrettyJson(t *testing.T) {
	assert.Equal(t, "{\n  \"a\": 1\n}", PrettyJson([]byte(`{"a":1}`)))
	assert.Equal(t, "not json", PrettyJson([]byte("not json")))
	assert.Equal(t, "{\n  \"name\": \"x\"\n}", PrettyJson(map[string]string{"name": "x"}))
}

func ptr(t time.Time) *time.Time {
	return &t
}
