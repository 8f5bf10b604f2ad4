package workout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSelectsVariantByCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		data []float64
		want Training
	}{
		{
			name: "swimming",
			code: CodeSwimming,
			data: []float64{720, 1, 80, 25, 40},
			want: Swimming{
				session: session{Action: 720, Duration: 1, Weight: 80},
				PoolLen: 25,
				Laps:    40,
			},
		},
		{
			name: "running",
			code: CodeRunning,
			data: []float64{15000, 1, 75},
			want: Running{session: session{Action: 15000, Duration: 1, Weight: 75}},
		},
		{
			name: "sports walking",
			code: CodeWalking,
			data: []float64{9000, 1, 75, 180},
			want: SportsWalking{
				session: session{Action: 9000, Duration: 1, Weight: 75},
				Height:  180,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.code, tt.data)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNewRejectsUnknownCode(t *testing.T) {
	got, err := New("XYZ", []float64{1, 1, 1})
	require.ErrorIs(t, err, ErrUnknownTraining)
	require.Nil(t, got)
}

func TestNewRejectsWrongArity(t *testing.T) {
	tests := []struct {
		name string
		code string
		data []float64
	}{
		{"running short", CodeRunning, []float64{15000, 1}},
		{"running long", CodeRunning, []float64{15000, 1, 75, 180}},
		{"walking short", CodeWalking, []float64{9000, 1, 75}},
		{"swimming short", CodeSwimming, []float64{720, 1, 80, 25}},
		{"empty", CodeRunning, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.code, tt.data)
			require.ErrorIs(t, err, ErrArgumentCount)
			require.Nil(t, got)
		})
	}
}

func TestNewRejectsInvalidData(t *testing.T) {
	tests := []struct {
		name string
		code string
		data []float64
	}{
		{"zero duration", CodeRunning, []float64{15000, 0, 75}},
		{"negative duration", CodeRunning, []float64{15000, -1, 75}},
		{"zero weight", CodeRunning, []float64{15000, 1, 0}},
		{"negative action", CodeRunning, []float64{-1, 1, 75}},
		{"zero height", CodeWalking, []float64{9000, 1, 75, 0}},
		{"zero pool length", CodeSwimming, []float64{720, 1, 80, 0, 40}},
		{"negative laps", CodeSwimming, []float64{720, 1, 80, 25, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.code, tt.data)
			require.ErrorIs(t, err, ErrInvalidData)
			require.Nil(t, got)
		})
	}
}
