// Package optical defines wavelength-level optical measurement records and
// the integrated spectral-averages summary tree produced by calculation
// engines.
package optical

import "encoding/json"

// OpticalDataType distinguishes discrete spectral data from band data.
type OpticalDataType string

// Optical data types.
const (
	DataTypeDiscrete OpticalDataType = "DISCRETE"
	DataTypeBand     OpticalDataType = "BAND"
)

// AngularResolutionType describes how measurements resolve incident and
// outgoing angles.
type AngularResolutionType string

// Angular resolution types.
const (
	ResolutionDirect         AngularResolutionType = "DIRECT"
	ResolutionDirectDiffuse  AngularResolutionType = "DIRECT_DIFFUSE"
	ResolutionDiffuseDiffuse AngularResolutionType = "DIFFUSE_DIFFUSE"
	ResolutionDiffuse        AngularResolutionType = "DIFFUSE"
	ResolutionBSDF           AngularResolutionType = "BSDF"
)

// IncidenceAngularResolutionTypes lists the resolutions valid for incident
// measurements.
func IncidenceAngularResolutionTypes() []AngularResolutionType {
	return []AngularResolutionType{ResolutionDirect, ResolutionBSDF}
}

// OutgoingAngularResolutionTypes lists the resolutions valid for outgoing
// measurements.
func OutgoingAngularResolutionTypes() []AngularResolutionType {
	return []AngularResolutionType{ResolutionDirect, ResolutionBSDF}
}

// WavelengthMeasurement holds the four directional measurements for one
// reflection type at a single wavelength.
type WavelengthMeasurement struct {
	TF *float64 `json:"tf"`
	TB *float64 `json:"tb"`
	RF *float64 `json:"rf"`
	RB *float64 `json:"rb"`
}

// WavelengthMeasurementSet groups the specular and diffuse measurements
// taken at one wavelength.
type WavelengthMeasurementSet struct {
	W        float64                `json:"w"`
	Specular *WavelengthMeasurement `json:"specular"`
	Diffuse  *WavelengthMeasurement `json:"diffuse"`
}

// AngleBlock holds the wavelength measurements taken at one incidence angle.
//
// WavelengthData entries keep the WavelengthMeasurementSet shape but stay
// generic maps: spectra run to hundreds of rows and are short-lived, so the
// cost of materializing typed records on every conversion is not worth it.
type AngleBlock struct {
	IncidenceAngle int              `json:"incidence_angle"`
	NumWavelengths int              `json:"num_wavelengths"`
	WavelengthData []map[string]any `json:"wavelength_data"`
}

// OpticalData is the full directional measurement set for a product.
type OpticalData struct {
	NumberIncidenceAngles *int         `json:"number_incidence_angles"`
	AngleBlocks           []AngleBlock `json:"angle_blocks"`
}

// HasWavelengthsAbove reports whether any wavelength entry in any angle
// block lies strictly above the limit. The full nested collection is
// scanned on every call.
func (d *OpticalData) HasWavelengthsAbove(limit float64) bool {
	if d == nil {
		return false
	}
	for _, block := range d.AngleBlocks {
		for _, entry := range block.WavelengthData {
			if w, ok := wavelengthOf(entry); ok && w > limit {
				return true
			}
		}
	}
	return false
}

func wavelengthOf(entry map[string]any) (float64, bool) {
	switch w := entry["w"].(type) {
	case float64:
		return w, true
	case json.Number:
		f, err := w.Float64()
		return f, err == nil
	case int:
		return float64(w), true
	default:
		return 0, false
	}
}

// OpticalProperties describes the shape and resolution of a product's
// optical data.
type OpticalProperties struct {
	OpticalDataType                OpticalDataType       `json:"optical_data_type"`
	IncidenceAngularResolutionType AngularResolutionType `json:"incidence_angular_resolution_type"`
	OutgoingAngularResolutionType  AngularResolutionType `json:"outgoing_angular_resolution_type"`
	OpticalData                    *OpticalData          `json:"optical_data"`
}

// NewOpticalProperties returns optical properties with the default discrete,
// direct-resolution configuration.
func NewOpticalProperties() *OpticalProperties {
	return &OpticalProperties{
		OpticalDataType:                DataTypeDiscrete,
		IncidenceAngularResolutionType: ResolutionDirect,
		OutgoingAngularResolutionType:  ResolutionDirect,
	}
}
