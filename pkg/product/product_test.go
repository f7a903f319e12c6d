package product

import (
	"encoding/json"
	"testing"

	"igsdbcore/pkg/optical"
)

func f64(v float64) *float64 { return &v }

func productWithThermalIR(t *testing.T, standard string, results *optical.ThermalIRResults) *BaseProduct {
	t.Helper()
	p, err := NewBaseProduct("GLAZING", "MONOLITHIC", "PROPOSED")
	if err != nil {
		t.Fatalf("new product: %v", err)
	}
	p.IntegratedSpectralAveragesSummaries = []IntegratedSpectralAveragesSummary{
		{
			CalculationStandard: standard,
			SummaryValues:       &optical.IntegratedSpectralAveragesSummaryValues{ThermalIR: results},
		},
	}
	return p
}

func TestNewBaseProductValidatesEnums(t *testing.T) {
	p, err := NewBaseProduct("GLAZING", "MONOLITHIC", "PROPOSED")
	if err != nil {
		t.Fatalf("valid enums rejected: %v", err)
	}
	if p.UnitsSystem != "SI" || !p.Active || p.Version != 1 {
		t.Fatalf("unexpected defaults: %+v", p)
	}
	if _, err := NewBaseProduct("GLAZING", "NOT_A_SUBTYPE", "PROPOSED"); err == nil {
		t.Fatalf("expected subtype rejection")
	}
	if _, err := NewBaseProduct("", "", ""); err != nil {
		t.Fatalf("empty enums should be allowed: %v", err)
	}
}

func TestSettersClearOnEmpty(t *testing.T) {
	p, err := NewBaseProduct("SHADING", "VENETIAN_BLIND", "PUBLISHED")
	if err != nil {
		t.Fatalf("new product: %v", err)
	}
	if err := p.SetCoatedSide("FRONT"); err != nil {
		t.Fatalf("set coated side: %v", err)
	}
	if err := p.SetCoatedSide(""); err != nil {
		t.Fatalf("clear coated side: %v", err)
	}
	if p.CoatedSide != "" {
		t.Fatalf("coated side not cleared: %q", p.CoatedSide)
	}
	if err := p.SetCoatedSide("SIDEWAYS"); err == nil {
		t.Fatalf("expected coated side rejection")
	}
}

func TestNameRoundTrip(t *testing.T) {
	p, _ := NewBaseProduct("GLAZING", "MONOLITHIC", "PROPOSED")
	if p.Name() != nil {
		t.Fatalf("expected nil name on fresh product")
	}
	p.SetName("CLEAR_3.DAT")
	if got := p.Name(); got == nil || *got != "CLEAR_3.DAT" {
		t.Fatalf("name round trip failed: %v", got)
	}
}

func TestTIRFrontPrefersCalculatedValue(t *testing.T) {
	p := productWithThermalIR(t, "NFRC", &optical.ThermalIRResults{
		TransmittanceFrontDiffuseDiffuse: f64(0.12),
	})
	p.PhysicalProperties = &PhysicalProperties{PredefinedTIRFront: f64(0.99)}
	got := p.TIRFront("")
	if got == nil || *got != 0.12 {
		t.Fatalf("expected calculated 0.12, got %v", got)
	}
}

func TestTIRFrontScansPastEmptySameStandardSummary(t *testing.T) {
	p := productWithThermalIR(t, "NFRC", &optical.ThermalIRResults{})
	p.IntegratedSpectralAveragesSummaries = append(p.IntegratedSpectralAveragesSummaries,
		IntegratedSpectralAveragesSummary{
			CalculationStandard: "NFRC",
			SummaryValues: &optical.IntegratedSpectralAveragesSummaryValues{
				ThermalIR: &optical.ThermalIRResults{TransmittanceFrontDiffuseDiffuse: f64(0.07)},
			},
		})
	p.PhysicalProperties = &PhysicalProperties{PredefinedTIRFront: f64(0.99)}
	// The first NFRC summary has no value; the second one decides before
	// any predefined fallback applies.
	if got := p.TIRFront("NFRC"); got == nil || *got != 0.07 {
		t.Fatalf("expected later summary value 0.07, got %v", got)
	}
}

func TestTIRFrontFallsBackToPredefined(t *testing.T) {
	p, _ := NewBaseProduct("GLAZING", "MONOLITHIC", "PROPOSED")
	p.PhysicalProperties = &PhysicalProperties{PredefinedTIRFront: f64(0.31)}
	got := p.TIRFront("NFRC")
	if got == nil || *got != 0.31 {
		t.Fatalf("expected predefined 0.31, got %v", got)
	}
	if p.TIRBack("NFRC") != nil {
		t.Fatalf("back TIR should not borrow the front predefined value")
	}
}

func TestEmissivityAccessorsUseMatchingSides(t *testing.T) {
	p := productWithThermalIR(t, "NFRC", &optical.ThermalIRResults{
		AbsorptanceFrontHemispheric: f64(0.84),
		AbsorptanceBackHemispheric:  f64(0.16),
	})
	if got := p.EmissivityFront(""); got == nil || *got != 0.84 {
		t.Fatalf("front emissivity: %v", got)
	}
	if got := p.EmissivityBack(""); got == nil || *got != 0.16 {
		t.Fatalf("back emissivity: %v", got)
	}

	q, _ := NewBaseProduct("GLAZING", "MONOLITHIC", "PROPOSED")
	q.PhysicalProperties = &PhysicalProperties{
		PredefinedEmissivityFront: f64(0.9),
		PredefinedEmissivityBack:  f64(0.1),
	}
	if got := q.EmissivityFront(""); got == nil || *got != 0.9 {
		t.Fatalf("predefined front emissivity: %v", got)
	}
	if got := q.EmissivityBack(""); got == nil || *got != 0.1 {
		t.Fatalf("predefined back emissivity: %v", got)
	}
}

func TestThermalAccessorsSelectStandard(t *testing.T) {
	p := productWithThermalIR(t, "CES", &optical.ThermalIRResults{
		TransmittanceFrontDiffuseDiffuse: f64(0.2),
	})
	if p.TIRFront("") != nil {
		t.Fatalf("default standard is NFRC, CES summary must not match")
	}
	if got := p.TIRFront("CES"); got == nil || *got != 0.2 {
		t.Fatalf("CES summary: %v", got)
	}
}

func TestHasThermalIRWavelengths(t *testing.T) {
	p, _ := NewBaseProduct("GLAZING", "MONOLITHIC", "PROPOSED")
	if p.HasThermalIRWavelengths() {
		t.Fatalf("no optical data, expected false")
	}
	p.PhysicalProperties = NewPhysicalProperties()
	p.PhysicalProperties.OpticalProperties.OpticalData = &optical.OpticalData{
		AngleBlocks: []optical.AngleBlock{
			{WavelengthData: []map[string]any{{"w": 300.0}, {"w": 2500.0}}},
		},
	}
	if p.HasThermalIRWavelengths() {
		t.Fatalf("2500 is not beyond the threshold")
	}
	p.PhysicalProperties.OpticalProperties.OpticalData.AngleBlocks[0].WavelengthData = append(
		p.PhysicalProperties.OpticalProperties.OpticalData.AngleBlocks[0].WavelengthData,
		map[string]any{"w": 25000.0},
	)
	if !p.HasThermalIRWavelengths() {
		t.Fatalf("25000 exceeds the threshold, expected true")
	}
}

func TestHasCoatingOnSurface(t *testing.T) {
	p, _ := NewBaseProduct("GLAZING", "LAMINATE", "PROPOSED")
	if p.HasCoatingOnSurface() {
		t.Fatalf("no composition, expected false")
	}
	p.Composition = []ProductComposition{
		{Subtype: SubtypeInterlayer},
		{Subtype: SubtypeCoated, CompositionDetails: &CompositionDetails{CoatedSideFacesExterior: true}},
	}
	if !p.HasCoatingOnSurface() {
		t.Fatalf("coated layer faces exterior, expected true")
	}
	p.Composition[1].CompositionDetails.CoatedSideFacesExterior = false
	if p.HasCoatingOnSurface() {
		t.Fatalf("coating faces interior, expected false")
	}
	mono, _ := NewBaseProduct("GLAZING", "MONOLITHIC", "PROPOSED")
	mono.Composition = p.Composition
	if mono.HasCoatingOnSurface() {
		t.Fatalf("only laminates can report a surface coating")
	}
}

func TestCanHavePredefinedThermalValues(t *testing.T) {
	mono, _ := NewBaseProduct("GLAZING", "MONOLITHIC", "PROPOSED")
	if !mono.CanHavePredefinedThermalValues() {
		t.Fatalf("monolithic should allow predefined thermal values")
	}
	lam, _ := NewBaseProduct("GLAZING", "LAMINATE", "PROPOSED")
	if !lam.CanHavePredefinedThermalValues() {
		t.Fatalf("uncoated laminate should allow predefined thermal values")
	}
	lam.Composition = []ProductComposition{
		{Subtype: SubtypeCoated, CompositionDetails: &CompositionDetails{CoatedSideFacesExterior: true}},
	}
	if lam.CanHavePredefinedThermalValues() {
		t.Fatalf("surface-coated laminate should not allow predefined thermal values")
	}
	coated, _ := NewBaseProduct("GLAZING", "COATED", "PROPOSED")
	if coated.CanHavePredefinedThermalValues() {
		t.Fatalf("coated glass should not allow predefined thermal values")
	}
}

func TestNewPopulatedBaseProduct(t *testing.T) {
	p, err := NewPopulatedBaseProduct("SHADING", "WOVEN_SHADE", "PROPOSED")
	if err != nil {
		t.Fatalf("new populated product: %v", err)
	}
	if p.ProductDescription == nil || p.PhysicalProperties == nil || p.GeometricProperties == nil {
		t.Fatalf("expected populated sub-records")
	}
	if !p.PhysicalProperties.IsSpecular {
		t.Fatalf("physical properties default to specular")
	}
	if p.PhysicalProperties.OpticalProperties == nil {
		t.Fatalf("expected optical properties")
	}
	if p.Composition == nil || p.IntegratedSpectralAveragesSummaries == nil {
		t.Fatalf("expected empty slices, not nil")
	}
}

func TestBaseProductJSONRoundTrip(t *testing.T) {
	p, _ := NewBaseProduct("GLAZING", "MONOLITHIC", "PUBLISHED")
	p.SetName("Test Glass")
	token := "abc123"
	p.Token = &token
	p.PhysicalProperties = &PhysicalProperties{PredefinedEmissivityFront: f64(0.84)}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded BaseProduct
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Type != TypeGlazing || decoded.Subtype != SubtypeMonolithic || decoded.TokenType != TokenPublished {
		t.Fatalf("enums lost in round trip: %+v", decoded)
	}
	if decoded.Token == nil || *decoded.Token != "abc123" {
		t.Fatalf("token lost in round trip")
	}
	if got := decoded.Name(); got == nil || *got != "Test Glass" {
		t.Fatalf("name lost in round trip: %v", got)
	}
	if decoded.PhysicalProperties == nil || decoded.PhysicalProperties.PredefinedEmissivityFront == nil {
		t.Fatalf("physical properties lost in round trip")
	}
}

func TestToMapFromMap(t *testing.T) {
	p, _ := NewBaseProduct("GLAZING", "MONOLITHIC", "PROPOSED")
	p.SetName("Mapped")
	m, err := ToMap(*p)
	if err != nil {
		t.Fatalf("to map: %v", err)
	}
	if m["type"] != "GLAZING" {
		t.Fatalf("expected wire-format type in map, got %v", m["type"])
	}
	var back BaseProduct
	if err := FromMap(m, &back); err != nil {
		t.Fatalf("from map: %v", err)
	}
	if back.Subtype != SubtypeMonolithic {
		t.Fatalf("subtype lost: %q", back.Subtype)
	}
	if got := back.Name(); got == nil || *got != "Mapped" {
		t.Fatalf("name lost: %v", got)
	}
}
