package cli

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := outputJSON(&buf, map[string]int{"layers": 3}); err != nil {
		t.Fatalf("outputJSON() error = %v", err)
	}

	if got, want := buf.String(), "{\n  \"layers\": 3\n}\n"; got != want {
		t.Errorf("outputJSON() = %q, want %q", got, want)
	}

	var v map[string]int
	if err := json.Unmarshal(buf.Bytes(), &v); err != nil {
		t.Errorf("outputJSON() produced invalid JSON: %v", err)
	}
}

func TestPrintCount(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, "0 blocks"},
		{1, "1 block"},
		{5, "5 blocks"},
	}

	for _, tt := range tests {
		if got := PrintCount(tt.count, "block", "blocks"); got != tt.want {
			t.Errorf("PrintCount(%d) = %q, want %q", tt.count, got, tt.want)
		}
	}
}
