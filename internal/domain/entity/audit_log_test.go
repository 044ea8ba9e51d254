package entity

import (
	"testing"
)

func TestJSONValueAndScan(t *testing.T) {
	j := JSON{"entity": "appointment", "entity_id": float64(7)}

	v, err := j.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var roundTrip JSON
	if err := roundTrip.Scan(v); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if roundTrip["entity"] != "appointment" {
		t.Errorf("entity = %v, want appointment", roundTrip["entity"])
	}
	if roundTrip["entity_id"] != float64(7) {
		t.Errorf("entity_id = %v, want 7", roundTrip["entity_id"])
	}
}

func TestJSONValueEmpty(t *testing.T) {
	var j JSON
	v, err := j.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != nil {
		t.Errorf("empty JSON should marshal to nil, got %v", v)
	}
}

func TestJSONScanNil(t *testing.T) {
	j := JSON{"k": "v"}
	if err := j.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if j != nil {
		t.Errorf("Scan(nil) should reset the map, got %v", j)
	}
}
