package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferSchema_DateColumn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header []string
		want   string
	}{
		{
			name:   "named Date",
			header: []string{"Station", "Date", "TX"},
			want:   "Date",
		},
		{
			name:   "substring match on datetime",
			header: []string{"id", "obs_datetime", "value"},
			want:   "obs_datetime",
		},
		{
			name:   "falls back to first column",
			header: []string{"AAAAMMJJ", "TX", "TN"},
			want:   "AAAAMMJJ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := InferSchema(tt.header, Overrides{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.DateColumn)
		})
	}
}

func TestInferSchema_Temperature(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   []string
		wantMean []string
		wantMax  string
		wantMin  string
	}{
		{
			name:     "explicit mean column wins",
			header:   []string{"DATE", "Temp_Mean", "Temp_Max", "Temp_Min"},
			wantMean: []string{"Temp_Mean"},
			wantMax:  "Temp_Max",
			wantMin:  "Temp_Min",
		},
		{
			name:     "TG recognized as mean",
			header:   []string{"DATE", "TG", "TX", "TN"},
			wantMean: []string{"TG"},
			wantMax:  "TX",
			wantMin:  "TN",
		},
		{
			name:     "min max pair averaged when no mean column",
			header:   []string{"DATE", "TX", "TN", "RR"},
			wantMean: []string{"TX", "TN"},
			wantMax:  "TX",
			wantMin:  "TN",
		},
		{
			name:     "single temperature column stands alone",
			header:   []string{"DATE", "Temperature", "RR"},
			wantMean: []string{"Temperature"},
		},
		{
			name:   "no temperature columns",
			header: []string{"DATE", "RR", "Station"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := InferSchema(tt.header, Overrides{})
			require.NoError(t, err)
			assert.Equal(t, tt.wantMean, s.TempMeanColumns)
			assert.Equal(t, tt.wantMax, s.TempMaxColumn)
			assert.Equal(t, tt.wantMin, s.TempMinColumn)
		})
	}
}

func TestInferSchema_Precipitation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header []string
		want   string
	}{
		{name: "RR", header: []string{"DATE", "TX", "RR"}, want: "RR"},
		{name: "french pluviometrie", header: []string{"DATE", "Pluviometrie"}, want: "Pluviometrie"},
		{name: "rainfall", header: []string{"DATE", "Rainfall_mm"}, want: "Rainfall_mm"},
		{name: "absent", header: []string{"DATE", "TX", "TN"}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := InferSchema(tt.header, Overrides{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.PrecipitationColumn)
		})
	}
}

func TestInferSchema_OverridesBeatHeuristics(t *testing.T) {
	t.Parallel()

	header := []string{"DATE", "TX", "TN", "RR", "obs"}
	s, err := InferSchema(header, Overrides{
		Date:          "obs",
		TempMean:      "TX",
		Precipitation: "RR",
	})
	require.NoError(t, err)
	assert.Equal(t, "obs", s.DateColumn)
	assert.Equal(t, []string{"TX"}, s.TempMeanColumns)
	// Heuristics still run for the roles without overrides.
	assert.Equal(t, "TX", s.TempMaxColumn)
	assert.Equal(t, "TN", s.TempMinColumn)
	assert.Equal(t, "RR", s.PrecipitationColumn)
}

func TestInferSchema_OverrideMissingColumn(t *testing.T) {
	t.Parallel()

	_, err := InferSchema([]string{"DATE", "TX"}, Overrides{Precipitation: "RR"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RR")
}

func TestInferSchema_EmptyHeader(t *testing.T) {
	t.Parallel()

	_, err := InferSchema(nil, Overrides{})
	assert.Error(t, err)
}

func TestSchema_Capabilities(t *testing.T) {
	t.Parallel()

	s := Schema{
		DateColumn:          "DATE",
		TempMeanColumns:     []string{"TX", "TN"},
		PrecipitationColumn: "RR",
	}
	caps := s.Capabilities()
	assert.True(t, caps.TempMean)
	assert.False(t, caps.TempMax)
	assert.False(t, caps.TempMin)
	assert.True(t, caps.Precipitation)
}
