package standard

import (
	"encoding/json"
	"testing"
)

func TestMethodDisplayNames(t *testing.T) {
	methods := []CalculationStandardMethodType{
		MethodSolar,
		MethodPhotopic,
		MethodThermalIR,
		MethodTUV,
		MethodSPF,
		MethodTDW,
		MethodTKR,
	}
	if len(MethodDisplayNames) != len(methods) {
		t.Fatalf("expected %d display names, got %d", len(methods), len(MethodDisplayNames))
	}
	for _, m := range methods {
		if MethodDisplayNames[m] == "" {
			t.Fatalf("missing display name for %s", m)
		}
	}
	if got := MethodDisplayNames[MethodThermalIR]; got != "Thermal IR" {
		t.Fatalf("unexpected display name %q", got)
	}
}

func TestStandardNames(t *testing.T) {
	if NFRC != "NFRC" {
		t.Fatalf("unexpected NFRC value %q", NFRC)
	}
	if CES != "CES" {
		t.Fatalf("unexpected CES value %q", CES)
	}
}

func TestCalculationStandardJSON(t *testing.T) {
	std := CalculationStandard{
		Name:        string(NFRC),
		MethodType:  string(MethodSolar),
		Description: "solar transmittance and reflectance",
	}
	data, err := json.Marshal(std)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded CalculationStandard
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded != std {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}
}
