// SPDX-License-Identifier: EPL-2.0

package main

import "testing"

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"help", []string{"--help"}, 0},
		{"missing output", []string{"in.wav"}, 2},
		{"too many args", []string{"a.wav", "b.wav", "c.wav"}, 2},
		{"bad flag value", []string{"--bit-depth", "8", "in.wav", "out.wav"}, 2},
		{"bad log level", []string{"--log-level", "loud", "in.wav", "out.wav"}, 2},
		{"no model", []string{"in.wav", "out.wav"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := run(tt.args); got != tt.want {
				t.Errorf("run(%q) = %d, want %d", tt.args, got, tt.want)
			}
		})
	}
}
