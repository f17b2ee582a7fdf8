package models

import (
	"errors"
	"testing"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_Messages(t *testing.T) {
	tests := []struct {
		err             error
		expectedMessage string
	}{
		{ErrChoreNotFound, "chore not found"},
		{ErrTagNotFound, "tag not found"},
		{ErrEntryNotFound, "entry not found"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.expectedMessage {
			t.Errorf("Expected error message '%s', got '%s'", tt.expectedMessage, tt.err.Error())
		}
	}
}

func TestErrors_Unique(t *testing.T) {
	if errors.Is(ErrChoreNotFound, ErrTagNotFound) {
		t.Error("ErrChoreNotFound should not equal ErrTagNotFound")
	}
}

// ============================================================================
// FrequencyUnit Tests
// ============================================================================

func TestParseFrequencyUnit(t *testing.T) {
	tests := []struct {
		input   string
		want    FrequencyUnit
		wantErr bool
	}{
		{"day", FrequencyDay, false},
		{"Days", FrequencyDay, false},
		{" week ", FrequencyWeek, false},
		{"months", FrequencyMonth, false},
		{"YEAR", FrequencyYear, false},
		{"fortnight", "", true},
		{"", "", true},
		{"s", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFrequencyUnit(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFrequencyUnit(%q): expected error, got %q", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFrequencyUnit(%q): unexpected error %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFrequencyUnit(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFrequencyUnit_Known(t *testing.T) {
	for _, u := range FrequencyUnits {
		if !u.Known() {
			t.Errorf("Expected %q to be known", u)
		}
	}
	if FrequencyUnit("fortnight").Known() {
		t.Error("Expected 'fortnight' to be unknown")
	}
}

// ============================================================================
// StringList Tests
// ============================================================================

func TestStringList_RoundTrip(t *testing.T) {
	original := StringList{"a", `say "hi", then leave`, "c,d", `back\slash`}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("Value() failed: %v", err)
	}

	var decoded StringList
	if err := decoded.Scan(value); err != nil {
		t.Fatalf("Scan() failed: %v", err)
	}

	if len(decoded) != len(original) {
		t.Fatalf("Expected %d items, got %d", len(original), len(decoded))
	}
	for i := range original {
		if decoded[i] != original[i] {
			t.Errorf("Item %d: expected %q, got %q", i, original[i], decoded[i])
		}
	}
}

func TestStringList_NilEncodesAsEmptyArray(t *testing.T) {
	var l StringList
	value, err := l.Value()
	if err != nil {
		t.Fatalf("Value() failed: %v", err)
	}
	if value != "[]" {
		t.Errorf("Expected '[]', got %v", value)
	}
}

func TestStringList_ScanDegradesToEmpty(t *testing.T) {
	inputs := []any{
		nil,
		"",
		[]byte(""),
		"not json",
		`{"a": 1}`,
		`[1, 2, 3]`,
		"null",
		int64(42),
	}

	for _, in := range inputs {
		var l StringList
		if err := l.Scan(in); err != nil {
			t.Errorf("Scan(%v) returned error: %v", in, err)
			continue
		}
		if l == nil || len(l) != 0 {
			t.Errorf("Scan(%v): expected empty non-nil list, got %#v", in, l)
		}
	}
}

func TestStringList_ScanBytes(t *testing.T) {
	var l StringList
	if err := l.Scan([]byte(`["wash","dry"]`)); err != nil {
		t.Fatalf("Scan() failed: %v", err)
	}
	if len(l) != 2 || l[0] != "wash" || l[1] != "dry" {
		t.Errorf("Unexpected result: %#v", l)
	}
}

// ============================================================================
// Sort Tests
// ============================================================================

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		input   string
		want    SortKey
		wantErr bool
	}{
		{"days_left", SortByDaysLeft, false},
		{"Days-Left", SortByDaysLeft, false},
		{"importance", SortByImportance, false},
		{" name ", SortByName, false},
		{"due", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseSortKey(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSortKey(%q): error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSortKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseSortOrder(t *testing.T) {
	for _, in := range []string{"asc", "DESC"} {
		if _, err := ParseSortOrder(in); err != nil {
			t.Errorf("ParseSortOrder(%q): unexpected error %v", in, err)
		}
	}
	if _, err := ParseSortOrder("sideways"); err == nil {
		t.Error("Expected error for invalid sort order")
	}
}
