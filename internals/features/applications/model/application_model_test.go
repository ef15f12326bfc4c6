package model

import (
	"reflect"
	"strings"
	"testing"
)

// The duplicate-apply conflict branch in the create handler depends on
// the database rejecting a second (worker, shift) row, so both columns
// must share one unique index.
func TestWorkerShiftUniqueIndex(t *testing.T) {
	typ := reflect.TypeOf(ApplicationModel{})

	indexed := map[string]bool{}
	for i := 0; i < typ.NumField(); i++ {
		tag := typ.Field(i).Tag.Get("gorm")
		if strings.Contains(tag, "uniqueIndex:uq_applications_worker_shift") {
			indexed[typ.Field(i).Name] = true
		}
	}

	for _, field := range []string{"ApplicationWorkerID", "ApplicationShiftID"} {
		if !indexed[field] {
			t.Errorf("%s is missing from the worker/shift unique index", field)
		}
	}
	if len(indexed) != 2 {
		t.Errorf("unique index spans %d fields, want exactly worker and shift", len(indexed))
	}
}
