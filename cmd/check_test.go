package cmd

import (
	"testing"

	"github.com/ziadkadry99/layermap/internal/config"
)

func TestRunChecksPassWithDefaults(t *testing.T) {
	cfg = config.DefaultConfig()
	for _, r := range runChecks() {
		if r.err != nil {
			t.Errorf("%s: %v", r.name, r.err)
		}
	}
}

func TestRunChecksReportsBadConfig(t *testing.T) {
	cfg = config.DefaultConfig()
	cfg.Server.Port = 0
	t.Cleanup(func() { cfg = nil })

	failed := 0
	for _, r := range runChecks() {
		if r.err != nil {
			failed++
		}
	}
	if failed != 1 {
		t.Errorf("failed checks = %d, want 1", failed)
	}
}
