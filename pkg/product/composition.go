package product

import "github.com/shopspring/decimal"

// CompositionDetails stores layer-specific data that cannot be genericized
// into the child product model (e.g. layer thickness), plus information
// carried over from the legacy IGDB that does not translate directly.
type CompositionDetails struct {
	// Used for laminate layers.
	Flipped   *bool            `json:"flipped"`
	Thickness *decimal.Decimal `json:"thickness"`

	// Used during the IGDB port.
	LayerFilename         *string `json:"layer_filename"`
	SubstrateDataFileName *string `json:"substrate_data_file_name"`
	CoatingID             *int    `json:"CoatingID"`

	// The child product's coated_side is not always available when a layer
	// is inspected; this flag records, when known, that the coating faces
	// the exterior side.
	CoatedSideFacesExterior bool `json:"coated_side_faces_exterior"`
}

// NewProductDefinition is a reduced product record embedded in a parent
// composition when the submitter creates a new dependent product as part of
// a parent submission. A COATED submission, for example, may define its
// dependent COATING product this way.
type NewProductDefinition struct {
	ID      *int           `json:"id"`
	Type    ProductType    `json:"type,omitempty"`
	Subtype ProductSubtype `json:"subtype,omitempty"`
	Token   *string        `json:"token"`

	Material     *string   `json:"material"`
	Appearance   *string   `json:"appearance"`
	TokenType    TokenType `json:"token_type,omitempty"`
	Owner        *string   `json:"owner"`
	Manufacturer *string   `json:"manufacturer"`
	Hidden       *bool     `json:"hidden"`

	ProductDescription *ProductDescription `json:"product_description"`
	PhysicalProperties *PhysicalProperties `json:"physical_properties"`

	// For interlayers.
	Code *string `json:"code"`
}

// ProductComposition is one layer in a composite product's ordered layer
// list, referencing the child product by type/subtype/token.
type ProductComposition struct {
	Type                 ProductType           `json:"type,omitempty"`
	Subtype              ProductSubtype        `json:"subtype,omitempty"`
	TokenType            TokenType             `json:"token_type,omitempty"`
	Token                *string               `json:"token"`
	Index                *int                  `json:"index"`
	Name                 *string               `json:"name"`
	Thickness            *float64              `json:"thickness"`
	CompositionDetails   *CompositionDetails   `json:"composition_details"`
	NewProductDefinition *NewProductDefinition `json:"new_product_definition"`

	LegacyFilename *string `json:"legacy_filename"`

	// Carried over when loading from an IGDB .mdb.
	IGDBLayerFilename  *string `json:"igdb_layer_filename"`
	IGDBLayerGlazingID *int    `json:"igdb_layer_glazing_id"`
}
