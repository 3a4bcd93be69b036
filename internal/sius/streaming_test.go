package sius

import (
	"bytes"
	"io"
	"testing"
)

func TestBOMSkippingReader(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{
			name:     "export with BOM",
			input:    append([]byte{0xEF, 0xBB, 0xBF}, []byte("101;10.4")...),
			expected: "101;10.4",
		},
		{
			name:     "export without BOM",
			input:    []byte("101;10.4"),
			expected: "101;10.4",
		},
		{
			name:     "empty input",
			input:    []byte{},
			expected: "",
		},
		{
			name:     "only BOM",
			input:    []byte{0xEF, 0xBB, 0xBF},
			expected: "",
		},
		{
			name:     "partial BOM preserved",
			input:    []byte{0xEF, 0xBB, 'a', 'b'},
			expected: string([]byte{0xEF, 0xBB, 'a', 'b'}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewBOMSkippingReader(bytes.NewReader(tt.input))
			result, err := io.ReadAll(reader)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(result) != tt.expected {
				t.Errorf("got %q, want %q", string(result), tt.expected)
			}
		})
	}
}

func TestUTF8Sanitizer(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{
			name:     "valid ASCII",
			input:    []byte("101;10.4;09:01:12"),
			expected: "101;10.4;09:01:12",
		},
		{
			name:     "valid multibyte",
			input:    []byte("101;Zürich"),
			expected: "101;Zürich",
		},
		{
			name:     "invalid byte replaced",
			input:    []byte{'1', '0', 0x80, '1'},
			expected: "10?1",
		},
		{
			name:     "empty input",
			input:    []byte{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewUTF8Sanitizer(bytes.NewReader(tt.input))
			result, err := io.ReadAll(reader)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(result) != tt.expected {
				t.Errorf("got %q, want %q", string(result), tt.expected)
			}
		})
	}
}

func TestExportReader_Composed(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("101;10.4\n102;9.8")...)
	result, err := io.ReadAll(NewExportReader(bytes.NewReader(input)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(result) != "101;10.4\n102;9.8" {
		t.Errorf("got %q", string(result))
	}
}
