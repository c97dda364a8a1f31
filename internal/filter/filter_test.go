package filter

import (
	"reflect"
	"testing"
	"time"

	"github.com/benvon/smart-calendar/internal/models"
)

func sampleTasks() []models.Task {
	d := time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)
	return []models.Task{
		{ID: "1", Text: "Buy milk", Date: d},
		{ID: "2", Text: "Call MOM", Date: d},
		{ID: "3", Text: "buy bread", Date: d},
		{ID: "4", Text: "Dentist", Date: d},
	}
}

func ids(tasks []models.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.ID)
	}
	return out
}

func TestTasks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"empty query", "", []string{"1", "2", "3", "4"}},
		{"case insensitive", "BUY", []string{"1", "3"}},
		{"substring", "om", []string{"2"}},
		{"no match", "gym", []string{}},
		{"whitespace is significant", " milk", []string{"1"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Tasks(sampleTasks(), tt.query)
			if !reflect.DeepEqual(ids(got), tt.wantIDs) {
				t.Errorf("Tasks(%q) = %v, want %v", tt.query, ids(got), tt.wantIDs)
			}
		})
	}
}

func TestTasks_EmptyQueryReturnsSameSlice(t *testing.T) {
	t.Parallel()
	in := sampleTasks()
	got := Tasks(in, "")
	if len(got) != len(in) || &got[0] != &in[0] {
		t.Error("empty query should return the input slice itself")
	}
}

func TestTasks_Idempotent(t *testing.T) {
	t.Parallel()
	for _, q := range []string{"", "buy", "M", "zzz"} {
		once := Tasks(sampleTasks(), q)
		twice := Tasks(once, q)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("query %q: not idempotent: %v vs %v", q, ids(once), ids(twice))
		}
	}
}

func TestTasks_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	in := sampleTasks()
	before := sampleTasks()
	_ = Tasks(in, "buy")
	if !reflect.DeepEqual(in, before) {
		t.Errorf("input mutated: %+v", in)
	}
}
