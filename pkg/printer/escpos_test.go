package printer

import (
	"bytes"
	"testing"
)

func TestKeyValueAlignment(t *testing.T) {
	doc := NewDocument(32)
	doc.KeyValue("Subtotal:", "350.00")

	line := lastLine(t, doc.Bytes())
	if len(line) != 32 {
		t.Errorf("line width = %d, want 32: %q", len(line), line)
	}
	if !bytes.HasPrefix(line, []byte("Subtotal:")) || !bytes.HasSuffix(line, []byte("350.00")) {
		t.Errorf("unexpected layout: %q", line)
	}
}

func TestTaxLineFormat(t *testing.T) {
	doc := NewDocument(32)
	doc.TaxLine("CGST", 9, "13.50")

	line := lastLine(t, doc.Bytes())
	if !bytes.HasPrefix(line, []byte("  CGST @9.00%")) || !bytes.HasSuffix(line, []byte("13.50")) {
		t.Errorf("unexpected tax line: %q", line)
	}
}

func TestKeyValueNeverOverlaps(t *testing.T) {
	doc := NewDocument(10)
	doc.KeyValue("Destination:", "Bengaluru")

	line := lastLine(t, doc.Bytes())
	if !bytes.Contains(line, []byte("Destination: Bengaluru")) {
		t.Errorf("key and value must keep at least one space: %q", line)
	}
}

// lastLine returns the final text line of the stream, with the
// initialization command stripped.
func lastLine(t *testing.T, data []byte) []byte {
	t.Helper()
	trimmed := bytes.TrimRight(data, "\n")
	if idx := bytes.LastIndexByte(trimmed, '\n'); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	return bytes.TrimPrefix(trimmed, []byte{ESC, '@'})
}
