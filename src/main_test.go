package main

import (
	"lifegrid/src/life"
	"testing"
	"time"
)

func TestValidateOptions(t *testing.T) {
	tests := []struct {
		name     string
		eo       EnvOptions
		rows     int
		cols     int
		interval time.Duration
		ok       bool
	}{
		{"defaults", EnvOptions{steps: 1000}, 60, 150, 100 * time.Millisecond, true},
		{"zero rows", EnvOptions{steps: 1000}, 0, 150, 100 * time.Millisecond, false},
		{"negative cols", EnvOptions{steps: 1000}, 60, -1, 100 * time.Millisecond, false},
		{"zero interval", EnvOptions{steps: 1000}, 60, 150, 0, false},
		{"negative interval", EnvOptions{steps: 1000}, 60, 150, -time.Millisecond, false},
		{"zero steps headless", EnvOptions{}, 60, 150, 100 * time.Millisecond, false},
		{"zero steps interactive", EnvOptions{interactive: true}, 60, 150, 100 * time.Millisecond, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo := life.DefaultOptions
			lo.Rows, lo.Cols, lo.Interval = tt.rows, tt.cols, tt.interval
			eo := tt.eo
			err := validateOptions(&eo, &lo)
			if (err == nil) != tt.ok {
				t.Errorf("validateOptions() error = %v, want ok = %v", err, tt.ok)
			}
		})
	}
}
