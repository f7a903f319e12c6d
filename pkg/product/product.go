package product

import (
	"github.com/shopspring/decimal"

	"igsdbcore/pkg/material"
	"igsdbcore/pkg/optical"
)

// DefaultCalculationStandard is assumed when a derived thermal accessor is
// called without a standard name.
const DefaultCalculationStandard = "NFRC"

// ThermalIRWavelengthThreshold is the wavelength above which measurements
// count as thermal-IR data.
const ThermalIRWavelengthThreshold = 2500

// IntegratedSpectralAveragesSummary pairs a summary-values tree with the
// calculation standard and engine that produced it.
type IntegratedSpectralAveragesSummary struct {
	SummaryValues       *optical.IntegratedSpectralAveragesSummaryValues `json:"summary_values"`
	CalculationStandard string                                           `json:"calculation_standard,omitempty"`
	Source              *string                                          `json:"source"`
	// SourceVersion tracks changes to calculation engines over time.
	SourceVersion *string `json:"source_version"`
}

// BaseProduct is the root record describing a glazing, shading or material
// product and its submission state. All nested records are optional; absent
// branches read as "no value" through the derived accessors.
type BaseProduct struct {
	Type      ProductType    `json:"type,omitempty"`
	Subtype   ProductSubtype `json:"subtype,omitempty"`
	TokenType TokenType      `json:"token_type,omitempty"`

	UnitsSystem string  `json:"units_system"` // SI or IP
	Active      bool    `json:"active"`
	ID          *int    `json:"id"`
	Token       *string `json:"token"`

	ProductID    *int         `json:"product_id"`
	DataFileName *string      `json:"data_file_name"`
	DataFileType DataFileType `json:"data_file_type,omitempty"`

	// Deconstructable products can be decomposed into parts.
	Deconstructable bool `json:"deconstructable"`

	// Reference products exist solely to get a child product into the
	// IGSDB using reference substrates. Only valid for APPLIED_FILM and
	// LAMINATE submissions.
	Reference bool `json:"reference"`

	// Version increments each time the product is updated in the IGSDB.
	Version      int              `json:"version"`
	IGSDBVersion *decimal.Decimal `json:"igsdb_version"`

	CoatedSide  CoatedSideType `json:"coated_side,omitempty"`
	CoatingName *string        `json:"coating_name"`

	// Legacy IGDB identifiers: for FILM and COATING products IGDBID comes
	// from the Coatings table, otherwise from GlazingProperties.
	IGDBID              *int `json:"igdb_id"`
	IGDBDatabaseVersion *int `json:"igdb_database_version"`

	// Legacy CGDB shading product identifiers.
	CGDBID              *int    `json:"cgdb_id"`
	CGDBDatabaseVersion *string `json:"cgdb_database_version"`

	// Shading layer fields captured during the CGDB migration.
	ShadeProperties *ShadeLayerProperties `json:"shade_properties"`

	Owner              *string                          `json:"owner"`
	Manufacturer       *string                          `json:"manufacturer"`
	Material           *string                          `json:"material"`
	ProductDescription *ProductDescription              `json:"product_description"`
	PublishedDate      *string                          `json:"published_date"`
	Hidden             bool                             `json:"hidden"`
	Appearance         *string                          `json:"appearance"`
	Acceptance         *string                          `json:"acceptance"`
	NFRCID             *string                          `json:"nfrc_id"`
	IGSDBChecksum      *string                          `json:"igsdb_checksum"`
	MaterialBulk       *material.MaterialBulkProperties `json:"material_bulk_properties"`

	// Ordered layer list describing how the product decomposes into child
	// products.
	Composition []ProductComposition `json:"composition"`

	// Per-standard integrated results, usually produced by the submission
	// tooling's calculation engine.
	IntegratedSpectralAveragesSummaries []IntegratedSpectralAveragesSummary `json:"integrated_spectral_averages_summaries"`

	// Catch-all for values that fit no structured record.
	ExtraData map[string]any `json:"extra_data,omitempty"`

	PhysicalProperties *PhysicalProperties `json:"physical_properties"`

	// Shape parameters, currently only used by shading products.
	GeometricProperties *GeometricProperties `json:"geometric_properties"`

	// Legacy IGDB values ignored by the IGSDB serializer.
	CoatingID         *int               `json:"coating_id"`
	GlazingID         *int               `json:"glazing_id"`
	SubstrateFilename *string            `json:"substrate_filename"`
	CreatedAt         *string            `json:"created_at"`
	UpdatedAt         *string            `json:"updated_at"`
	StructureLine     *string            `json:"structure_line"`
	InterlayerDetails *InterlayerDetails `json:"interlayer_details"`

	// The IGSDB stores the submitted product in a related model; published
	// products may carry it here.
	ProductJSON map[string]any `json:"product_json,omitempty"`
}

// NewBaseProduct constructs a product after validating the three enum
// fields against their vocabularies. Empty strings leave a field unset.
func NewBaseProduct(typ, subtype, tokenType string) (*BaseProduct, error) {
	p := &BaseProduct{
		UnitsSystem: "SI",
		Active:      true,
		Version:     1,
	}
	if err := p.SetType(typ); err != nil {
		return nil, err
	}
	if err := p.SetSubtype(subtype); err != nil {
		return nil, err
	}
	if err := p.SetTokenType(tokenType); err != nil {
		return nil, err
	}
	return p, nil
}

// NewPopulatedBaseProduct constructs a product with every optional
// sub-record instantiated to its empty default, for callers that need a
// guaranteed-navigable tree to fill in.
func NewPopulatedBaseProduct(typ, subtype, tokenType string) (*BaseProduct, error) {
	p, err := NewBaseProduct(typ, subtype, tokenType)
	if err != nil {
		return nil, err
	}
	p.ProductDescription = &ProductDescription{}
	p.PhysicalProperties = NewPhysicalProperties()
	p.GeometricProperties = &GeometricProperties{}
	p.MaterialBulk = &material.MaterialBulkProperties{}
	p.Composition = []ProductComposition{}
	p.IntegratedSpectralAveragesSummaries = []IntegratedSpectralAveragesSummary{}
	return p, nil
}

// SetType mutates the product type, rejecting values outside the
// vocabulary. Empty clears the field.
func (p *BaseProduct) SetType(v string) error {
	if v == "" {
		p.Type = ""
		return nil
	}
	t, err := ParseProductType(v)
	if err != nil {
		return err
	}
	p.Type = t
	return nil
}

// SetSubtype mutates the product subtype, rejecting values outside the
// vocabulary. Empty clears the field.
func (p *BaseProduct) SetSubtype(v string) error {
	if v == "" {
		p.Subtype = ""
		return nil
	}
	s, err := ParseProductSubtype(v)
	if err != nil {
		return err
	}
	p.Subtype = s
	return nil
}

// SetTokenType mutates the token type, rejecting values outside the
// vocabulary. Empty clears the field.
func (p *BaseProduct) SetTokenType(v string) error {
	if v == "" {
		p.TokenType = ""
		return nil
	}
	t, err := ParseTokenType(v)
	if err != nil {
		return err
	}
	p.TokenType = t
	return nil
}

// SetCoatedSide mutates the coated side, rejecting values outside the
// vocabulary. Empty clears the field.
func (p *BaseProduct) SetCoatedSide(v string) error {
	if v == "" {
		p.CoatedSide = ""
		return nil
	}
	c, err := ParseCoatedSideType(v)
	if err != nil {
		return err
	}
	p.CoatedSide = c
	return nil
}

// Name returns the product description name, if any.
func (p *BaseProduct) Name() *string {
	if p.ProductDescription == nil {
		return nil
	}
	return p.ProductDescription.Name
}

// SetName sets the product description name, creating the description
// record if needed.
func (p *BaseProduct) SetName(name string) {
	if p.ProductDescription == nil {
		p.ProductDescription = &ProductDescription{}
	}
	p.ProductDescription.Name = &name
}

// calculatedThermalIR returns the first non-nil picked value among the
// integrated summaries matching the standard name. Summaries of the same
// standard without the requested value are skipped rather than ending the
// search. Empty standardName means DefaultCalculationStandard.
func (p *BaseProduct) calculatedThermalIR(standardName string, pick func(*optical.ThermalIRResults) *float64) *float64 {
	if standardName == "" {
		standardName = DefaultCalculationStandard
	}
	for i := range p.IntegratedSpectralAveragesSummaries {
		s := &p.IntegratedSpectralAveragesSummaries[i]
		if s.CalculationStandard != standardName || s.SummaryValues == nil || s.SummaryValues.ThermalIR == nil {
			continue
		}
		if v := pick(s.SummaryValues.ThermalIR); v != nil {
			return v
		}
	}
	return nil
}

// TIRFront returns the front thermal-IR transmittance for the given
// standard. A calculated value always wins; otherwise the user-predefined
// value from the submission file header is returned, if any.
func (p *BaseProduct) TIRFront(standardName string) *float64 {
	if v := p.calculatedThermalIR(standardName, (*optical.ThermalIRResults).TransmittanceFront); v != nil {
		return v
	}
	if p.PhysicalProperties != nil {
		return p.PhysicalProperties.PredefinedTIRFront
	}
	return nil
}

// TIRBack returns the back thermal-IR transmittance for the given standard,
// falling back to the predefined back TIR.
func (p *BaseProduct) TIRBack(standardName string) *float64 {
	if v := p.calculatedThermalIR(standardName, (*optical.ThermalIRResults).TransmittanceBack); v != nil {
		return v
	}
	if p.PhysicalProperties != nil {
		return p.PhysicalProperties.PredefinedTIRBack
	}
	return nil
}

// EmissivityFront returns the front hemispheric emissivity for the given
// standard, falling back to the predefined front emissivity.
func (p *BaseProduct) EmissivityFront(standardName string) *float64 {
	if v := p.calculatedThermalIR(standardName, (*optical.ThermalIRResults).EmissivityFrontHemispheric); v != nil {
		return v
	}
	if p.PhysicalProperties != nil {
		return p.PhysicalProperties.PredefinedEmissivityFront
	}
	return nil
}

// EmissivityBack returns the back hemispheric emissivity for the given
// standard, falling back to the predefined back emissivity.
func (p *BaseProduct) EmissivityBack(standardName string) *float64 {
	if v := p.calculatedThermalIR(standardName, (*optical.ThermalIRResults).EmissivityBackHemispheric); v != nil {
		return v
	}
	if p.PhysicalProperties != nil {
		return p.PhysicalProperties.PredefinedEmissivityBack
	}
	return nil
}

// HasThermalIRWavelengths reports whether the product's optical data
// contains any wavelength beyond ThermalIRWavelengthThreshold. The nested
// wavelength collection is scanned in full on every call.
func (p *BaseProduct) HasThermalIRWavelengths() bool {
	if p.PhysicalProperties == nil || p.PhysicalProperties.OpticalProperties == nil {
		return false
	}
	return p.PhysicalProperties.OpticalProperties.OpticalData.HasWavelengthsAbove(ThermalIRWavelengthThreshold)
}

// HasCoatingOnSurface reports whether a LAMINATE has a COATED substrate
// layer whose coating faces the exterior. False for every other subtype.
// At most one COATED layer is expected in practice, but the first layer
// with the flag set decides.
func (p *BaseProduct) HasCoatingOnSurface() bool {
	if p.Subtype != SubtypeLaminate {
		return false
	}
	for i := range p.Composition {
		layer := &p.Composition[i]
		if layer.Subtype != SubtypeCoated || layer.CompositionDetails == nil {
			continue
		}
		if layer.CompositionDetails.CoatedSideFacesExterior {
			return true
		}
	}
	return false
}

// CanHavePredefinedThermalValues reports whether the product may carry
// user-predefined TIR and emissivity values. Historically only MONOLITHIC
// and uncoated LAMINATE products were allowed to set these in submission
// file headers.
func (p *BaseProduct) CanHavePredefinedThermalValues() bool {
	switch p.Subtype {
	case SubtypeMonolithic:
		return true
	case SubtypeLaminate:
		return !p.HasCoatingOnSurface()
	default:
		return false
	}
}
