// Package standard defines the calculation standards governing how
// integrated spectral averages are computed from raw wavelength data.
package standard

// CalculationStandardName identifies a calculation standard.
type CalculationStandardName string

// Supported calculation standards.
const (
	NFRC CalculationStandardName = "NFRC"
	CES  CalculationStandardName = "CES"
)

// CalculationStandardMethodType identifies one method within a standard.
type CalculationStandardMethodType string

// Calculation method types.
const (
	MethodSolar     CalculationStandardMethodType = "SOLAR"
	MethodPhotopic  CalculationStandardMethodType = "PHOTOPIC"
	MethodThermalIR CalculationStandardMethodType = "THERMAL_IR"
	MethodTUV       CalculationStandardMethodType = "TUV"
	MethodSPF       CalculationStandardMethodType = "SPF"
	MethodTDW       CalculationStandardMethodType = "TDW"
	MethodTKR       CalculationStandardMethodType = "TKR"
)

// MethodDisplayNames maps method types to their display names.
var MethodDisplayNames = map[CalculationStandardMethodType]string{
	MethodSolar:     "Solar",
	MethodPhotopic:  "Photopic",
	MethodThermalIR: "Thermal IR",
	MethodTUV:       "TUV",
	MethodSPF:       "SPF",
	MethodTDW:       "TDW",
	MethodTKR:       "TKR",
}

// CalculationStandard describes one method of a named standard.
type CalculationStandard struct {
	Name        string `json:"name"`
	MethodType  string `json:"method_type"`
	Description string `json:"description"`
	Contents    string `json:"contents"`
}
