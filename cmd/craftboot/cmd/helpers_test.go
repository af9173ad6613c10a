package cmd

import (
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/bianoble/craftboot/pkg/craftboot"
)

func TestProgressLine(t *testing.T) {
	tests := []struct {
		done, total int64
		want        string
	}{
		{0, -1, "0 B"},
		{500, -1, "500 B"},
		{1500, 2000000, "1.5 kB / 2.0 MB"},
		{2000000, 2000000, "2.0 MB / 2.0 MB"},
	}

	for _, tt := range tests {
		got := progressLine(tt.done, tt.total)
		if got != tt.want {
			t.Errorf("progressLine(%d, %d) = %q, want %q", tt.done, tt.total, got, tt.want)
		}
	}
}

func TestLogLevel(t *testing.T) {
	oldQuiet, oldVerbose := quiet, verbose
	defer func() { quiet, verbose = oldQuiet, oldVerbose }()

	tests := []struct {
		quiet, verbose bool
		want           logrus.Level
	}{
		{false, false, logrus.WarnLevel},
		{false, true, logrus.DebugLevel},
		{true, false, logrus.ErrorLevel},
		{true, true, logrus.ErrorLevel},
	}

	for _, tt := range tests {
		quiet, verbose = tt.quiet, tt.verbose
		if got := logLevel(); got != tt.want {
			t.Errorf("logLevel(quiet=%v, verbose=%v) = %v, want %v", tt.quiet, tt.verbose, got, tt.want)
		}
		if got := newLogger().GetLevel(); got != tt.want {
			t.Errorf("newLogger level = %v, want %v", got, tt.want)
		}
	}
}

func TestInstallReporter(t *testing.T) {
	oldQuiet := quiet
	quiet = true
	defer func() { quiet = oldQuiet }()

	r := &installReporter{}
	r.fileChanged(craftboot.FileChanged{Kind: "client", Name: "1.16.5", Total: 1, Index: 0})
	if !r.active || r.total != -1 {
		t.Fatalf("reporter after start = %+v", r)
	}

	r.progress(100, 200)
	if r.done != 100 || r.total != 200 {
		t.Errorf("progress not recorded: %+v", r)
	}

	r.fileChanged(craftboot.FileChanged{Kind: "client", Name: "1.16.5", Total: 1, Index: 1})
	if r.active {
		t.Error("terminal event should end the active file")
	}
}
