package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_Quiet(t *testing.T) {
	var out bytes.Buffer
	log, sync := New(false, &out)
	log.Info("hidden")
	log.V(1).Info("hidden too")
	sync()

	if out.Len() != 0 {
		t.Errorf("Expected no output, got %q", out.String())
	}
}

func TestNew_Verbose(t *testing.T) {
	var out bytes.Buffer
	log, sync := New(true, &out)
	log.WithName("test").V(1).Info("ingested", "total", 3)
	sync()

	got := out.String()
	if !strings.Contains(got, "ingested") || !strings.Contains(got, "sorting-tool.test") {
		t.Errorf("Expected named debug entry, got %q", got)
	}
	if !strings.Contains(got, `"total"`) {
		t.Errorf("Expected structured field, got %q", got)
	}
}
