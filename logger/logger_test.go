package logger

import (
	"testing"

	"go.uber.org/zap"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
	}{
		{name: "JSON output mode", jsonOutput: true},
		{name: "Console output mode", jsonOutput: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Logger = nil
			JSONOutput = false

			if err := Initialize(tt.jsonOutput); err != nil {
				t.Fatalf("Initialize() error = %v", err)
			}
			if Logger == nil {
				t.Error("Initialize() did not set global Logger")
			}
			if JSONOutput != tt.jsonOutput {
				t.Errorf("Initialize() JSONOutput = %v, want %v", JSONOutput, tt.jsonOutput)
			}

			if Logger != nil {
				Logger.Sync()
			}
			Logger = zap.NewNop().Sugar()
		})
	}
}

func TestInitializeWithVerbosity(t *testing.T) {
	for _, verbosity := range []int{0, 1, 2, 3} {
		if err := InitializeWithVerbosity(false, verbosity); err != nil {
			t.Fatalf("InitializeWithVerbosity(%d) error = %v", verbosity, err)
		}
		if Logger == nil {
			t.Fatalf("InitializeWithVerbosity(%d) did not set Logger", verbosity)
		}
	}
	Logger = zap.NewNop().Sugar()
}

func TestLevelName(t *testing.T) {
	tests := []struct {
		verbosity int
		want      string
	}{
		{-1, "info"},
		{0, "info"},
		{1, "debug"},
		{2, "trace"},
		{5, "trace"},
	}
	for _, tt := range tests {
		if got := LevelName(tt.verbosity); got != tt.want {
			t.Errorf("LevelName(%d) = %q, want %q", tt.verbosity, got, tt.want)
		}
	}
}
