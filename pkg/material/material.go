// Package material defines bulk material properties for product layers.
package material

// MaterialType identifies a layer's bulk material.
type MaterialType string

// Bulk material identifiers.
const (
	MaterialUnknown       MaterialType = "UNKNOWN"
	MaterialNotApplicable MaterialType = "NOT_APPLICABLE"
	MaterialGlass         MaterialType = "GLASS"
	MaterialPVB           MaterialType = "PVB"
	MaterialPolycarbonate MaterialType = "POLYCARBONATE"
	MaterialAcrylic       MaterialType = "ACRYLIC"
	MaterialPET           MaterialType = "PET"
)

// LegacyMaterialTypes maps legacy IGDB material codes to material types.
var LegacyMaterialTypes = map[int]MaterialType{
	1: MaterialUnknown,
	2: MaterialNotApplicable,
	3: MaterialGlass,
	4: MaterialPVB,
	5: MaterialPolycarbonate,
	6: MaterialAcrylic,
	7: MaterialPET,
}

// MaterialBulkProperties holds the mechanical and thermal constants of a
// bulk material.
type MaterialBulkProperties struct {
	Name               *string        `json:"name"`
	DisplayName        *string        `json:"display_name"`
	Version            *string        `json:"version"`
	Conductivity       *float64       `json:"conductivity"`
	YoungsModulus      *float64       `json:"youngs_modulus"`
	PoissonsRatio      *float64       `json:"poissons_ratio"`
	Elasticity         *float64       `json:"elasticity"`
	MoistureProperties map[string]any `json:"moisture_properties,omitempty"`
}
