package product

import (
	"github.com/shopspring/decimal"

	"igsdbcore/pkg/optical"
)

// Manufacturer identifies a product manufacturer.
type Manufacturer struct {
	ID        *int    `json:"id"`
	Name      *string `json:"name"`
	Extension *string `json:"extension"`
}

// ProductDescription holds the display and marketing fields of a product.
type ProductDescription struct {
	Name                        *string `json:"name"`
	ShortDescription            *string `json:"short_description"`
	MarketingName               *string `json:"marketing_name"`
	ManufacturerByMarketingName *string `json:"manufacturer_by_marketing_name"`
	MarketingURL                *string `json:"marketing_url"`
	MarketingText               *string `json:"marketing_text"`
	MarketingAppearance         *string `json:"marketing_appearance"`
}

// PhysicalProperties captures thickness, permeability and optical data for a
// product layer.
//
// The Predefined* fields correspond to user-supplied emissivity and TIR
// values from submission file headers. They matter to the submission tooling
// but are ignored by the IGSDB when a calculated value exists.
type PhysicalProperties struct {
	Thickness              *decimal.Decimal           `json:"thickness"`
	PermeabilityFactor     *decimal.Decimal           `json:"permeability_factor"`
	OpticalOpenness        *decimal.Decimal           `json:"optical_openness"`
	BulkPropertiesOverride map[string]any             `json:"bulk_properties_override,omitempty"`
	IsSpecular             bool                       `json:"is_specular"`
	OpticalProperties      *optical.OpticalProperties `json:"optical_properties"`

	PredefinedTIRFront        *float64 `json:"predefined_tir_front"`
	PredefinedTIRBack         *float64 `json:"predefined_tir_back"`
	PredefinedEmissivityFront *float64 `json:"predefined_emissivity_front"`
	PredefinedEmissivityBack  *float64 `json:"predefined_emissivity_back"`
}

// NewPhysicalProperties returns physical properties with the specular flag
// set and optical properties initialized to their defaults.
func NewPhysicalProperties() *PhysicalProperties {
	return &PhysicalProperties{
		IsSpecular:        true,
		OpticalProperties: optical.NewOpticalProperties(),
	}
}

// InterlayerDetails keeps interlayer information needed when building a
// laminate composition.
type InterlayerDetails struct {
	InterlayerID               *int             `json:"interlayer_id"`
	InterlayerAppearance       *string          `json:"interlayer_appearance"`
	InterlayerProductName      *string          `json:"interlayer_product_name"`
	InterlayerCode             *string          `json:"interlayer_code"`
	InterlayerNominalThickness *decimal.Decimal `json:"interlayer_nominal_thickness"`
	InterlayerMaterial         *string          `json:"interlayer_material"`
}

// ShadeLayerProperties holds shading-layer fields carried over from the
// legacy CGDB database during migration.
type ShadeLayerProperties struct {
	ShadeMaterialID  *int             `json:"shade_material_id"`
	HoleArea         *decimal.Decimal `json:"hole_area"`
	BSDFPath         *string          `json:"bsdf_path"`
	ConvectionFactor *decimal.Decimal `json:"convection_factor"`
	Timestamp        *int64           `json:"timestamp"`
}

// BaseEntity is the minimal identity record shared by IGSDB entities.
type BaseEntity struct {
	Name      string  `json:"name"`
	Extension *string `json:"extension"`
}

// BaseWarning describes a non-fatal problem detected while processing a
// submission.
type BaseWarning struct {
	WarningType    *string `json:"warning_type"`
	WarningSubtype *string `json:"warning_subtype"`
	Message        *string `json:"message"`
	FieldName      *string `json:"field_name"`
}
