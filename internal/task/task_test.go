package task

import (
	"testing"
	"time"
)

func TestIsValidPriority(t *testing.T) {
	tests := []struct {
		priority Priority
		valid    bool
	}{
		{PriorityLow, true},
		{PriorityMedium, true},
		{PriorityHigh, true},
		{Priority("critical"), false},
		{Priority(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			if got := IsValidPriority(tt.priority); got != tt.valid {
				t.Errorf("IsValidPriority(%q) = %v, want %v", tt.priority, got, tt.valid)
			}
		})
	}
}

func TestPriorityOrder(t *testing.T) {
	if PriorityOrder(PriorityHigh) <= PriorityOrder(PriorityMedium) {
		t.Error("High should outrank Medium")
	}
	if PriorityOrder(PriorityMedium) <= PriorityOrder(PriorityLow) {
		t.Error("Medium should outrank Low")
	}
	if PriorityOrder(Priority("bogus")) >= PriorityOrder(PriorityLow) {
		t.Error("Unknown priority should rank below Low")
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("NewID returned empty string")
		}
		if seen[id] {
			t.Fatalf("duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestDefaultCategories(t *testing.T) {
	defaults := DefaultCategories()
	if len(defaults) != 4 {
		t.Fatalf("DefaultCategories length = %d, want 4", len(defaults))
	}

	wantIDs := []string{CategoryWork, CategoryPersonal, CategoryHealth, CategoryErrands}
	for i, id := range wantIDs {
		if defaults[i].ID != id {
			t.Errorf("defaults[%d].ID = %q, want %q", i, defaults[i].ID, id)
		}
		if !IsDefaultCategory(id) {
			t.Errorf("IsDefaultCategory(%q) = false, want true", id)
		}
	}

	if defaults[0].Name != "Trabalho" {
		t.Errorf("work category name = %q, want %q", defaults[0].Name, "Trabalho")
	}
	if IsDefaultCategory("groceries") {
		t.Error("IsDefaultCategory should reject unknown IDs")
	}
}

func TestSampleTasks(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	samples := SampleTasks(now)

	if len(samples) != 4 {
		t.Fatalf("SampleTasks length = %d, want 4", len(samples))
	}
	for i, s := range samples {
		if s.Title == "" {
			t.Errorf("samples[%d] has empty title", i)
		}
		if s.DueDate == nil {
			t.Errorf("samples[%d] has no due date", i)
		}
	}
	if !samples[3].Completed {
		t.Error("last sample should be completed")
	}
	if samples[3].DueDate.After(now) {
		t.Error("last sample should be overdue")
	}
}
