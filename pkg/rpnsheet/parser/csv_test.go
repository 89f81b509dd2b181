package parser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/rpnsheet-go/pkg/rpnsheet/models"
	"golang.org/x/text/encoding/charmap"
)

func TestReadCSV(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     CSVOptions
		expected models.Grid
	}{
		{
			name:     "basic",
			input:    "3,4\nA1 B1 +, 5\n",
			expected: models.Grid{{"3", "4"}, {"A1 B1 +", " 5"}},
		},
		{
			name:     "crlf",
			input:    "1,2\r\n3,4\r\n",
			expected: models.Grid{{"1", "2"}, {"3", "4"}},
		},
		{
			name:     "no trailing newline",
			input:    "1,2",
			expected: models.Grid{{"1", "2"}},
		},
		{
			name:     "trailing empty fields dropped",
			input:    "1,2,,\n",
			expected: models.Grid{{"1", "2"}},
		},
		{
			name:     "inner empty fields kept",
			input:    "1,,2\n",
			expected: models.Grid{{"1", "", "2"}},
		},
		{
			name:     "empty line is one empty cell",
			input:    "1\n\n2\n",
			expected: models.Grid{{"1"}, {""}, {"2"}},
		},
		{
			name:     "only delimiters",
			input:    ",,\n",
			expected: models.Grid{{}},
		},
		{
			name:     "custom delimiter",
			input:    "1;2 3 +\n",
			opts:     CSVOptions{Delimiter: ";"},
			expected: models.Grid{{"1", "2 3 +"}},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		grid, err := ReadCSV(strings.NewReader(tt.input), tt.opts)
		if err != nil {
			t.Errorf("%s: ReadCSV failed: %v", tt.name, err)
			continue
		}
		if diff := cmp.Diff(tt.expected, grid); diff != "" {
			t.Errorf("%s: ReadCSV mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestReadCSVEncoding(t *testing.T) {
	encoded, err := charmap.ISO8859_1.NewEncoder().String("1,café")
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	grid, err := ReadCSV(strings.NewReader(encoded), CSVOptions{Encoding: "ISO-8859-1"})
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if diff := cmp.Diff(models.Grid{{"1", "café"}}, grid); diff != "" {
		t.Errorf("ReadCSV mismatch (-want +got):\n%s", diff)
	}
}

func TestReadCSVUnknownEncoding(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("1"), CSVOptions{Encoding: "no-such-charset"}); err == nil {
		t.Error("Expected error for unknown encoding")
	}
}

func TestSplitLine(t *testing.T) {
	tests := []struct {
		line     string
		expected []string
	}{
		{"", []string{""}},
		{"a", []string{"a"}},
		{"a,b", []string{"a", "b"}},
		{"a,", []string{"a"}},
		{",a", []string{"", "a"}},
		{"a, ", []string{"a", " "}},
	}

	for _, tt := range tests {
		result := splitLine(tt.line, ",")
		if !cmp.Equal(result, tt.expected) {
			t.Errorf("splitLine(%q) = %q, expected %q", tt.line, result, tt.expected)
		}
	}
}
