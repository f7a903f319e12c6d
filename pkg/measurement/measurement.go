// Package measurement defines the vocabularies used to label raw wavelength
// measurements in submission files.
package measurement

import "strings"

// DirectDiffuseType labels the flux path of a measurement.
type DirectDiffuseType string

// Flux path labels.
const (
	DirectDirect   DirectDiffuseType = "DIRECT_DIRECT"
	DirectDiffuse  DirectDiffuseType = "DIRECT_DIFFUSE"
	DiffuseDiffuse DirectDiffuseType = "DIFFUSE_DIFFUSE"
)

// MeasurementType identifies one measured quantity at a wavelength. The
// bare tf/tb/rf/rb types imply direct-direct flux.
type MeasurementType string

// Measurement type identifiers.
const (
	TF MeasurementType = "tf"
	TB MeasurementType = "tb"
	RF MeasurementType = "rf"
	RB MeasurementType = "rb"

	TFDirDif MeasurementType = "tf_dir_dif"
	TBDirDif MeasurementType = "tb_dir_dif"
	RFDirDif MeasurementType = "rf_dir_dif"
	RBDirDif MeasurementType = "rb_dir_dif"

	TFDirHem MeasurementType = "tf_dir_hem"
	TBDirHem MeasurementType = "tb_dir_hem"
	RFDirHem MeasurementType = "rf_dir_hem"
	RBDirHem MeasurementType = "rb_dir_hem"
)

var allMeasurementTypes = []MeasurementType{
	TF, TB, RF, RB,
	TFDirDif, TBDirDif, RFDirDif, RBDirDif,
	TFDirHem, TBDirHem, RFDirHem, RBDirHem,
}

// Types returns the measurement type identifiers, optionally excluding the
// back-transmittance variants.
func Types(includeTB bool) []MeasurementType {
	if includeTB {
		out := make([]MeasurementType, len(allMeasurementTypes))
		copy(out, allMeasurementTypes)
		return out
	}
	out := make([]MeasurementType, 0, len(allMeasurementTypes))
	for _, t := range allMeasurementTypes {
		if t == TB || strings.HasPrefix(string(t), "tb_") {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SpecularTypes returns the measurement types implying specular
// (direct-direct) flux.
func SpecularTypes() []MeasurementType {
	return []MeasurementType{TF, TB, RF, RB}
}

// ReflectionType groups measurements for a wavelength, e.g. specular.tf.
type ReflectionType string

// Reflection groupings.
const (
	Specular ReflectionType = "specular"
	Diffuse  ReflectionType = "diffuse"
)

// TransmittanceReflectanceChoice labels a side/direction selection in
// summaries and user interfaces.
type TransmittanceReflectanceChoice string

// Side/direction selections.
const (
	TransmittanceFront TransmittanceReflectanceChoice = "TRANSMITTANCE_FRONT"
	TransmittanceBack  TransmittanceReflectanceChoice = "TRANSMITTANCE_BACK"
	ReflectanceFront   TransmittanceReflectanceChoice = "REFLECTANCE_FRONT"
	ReflectanceBack    TransmittanceReflectanceChoice = "REFLECTANCE_BACK"
)

// SummaryValuesDataSource identifies where integrated summary values came
// from.
type SummaryValuesDataSource string

// Summary value data sources.
const (
	SourceIGDB      SummaryValuesDataSource = "IGDB"
	SourceCGDB      SummaryValuesDataSource = "CGDB"
	SourcePywincalc SummaryValuesDataSource = "PYWINCALC"
	SourceOpticalc  SummaryValuesDataSource = "OPTICALC"
)
