// Package product defines the shared fenestration product data model
// exchanged between the submission tooling and the IGSDB: enumerated
// vocabularies, nested value records, derived thermal/optical accessors,
// and the slat geometry conversions for blind products.
package product

import "encoding/json"

// TokenType identifies the lifecycle state of a product submission token.
type TokenType string

const (
	// TokenPublished marks a product that has been accepted into the IGSDB
	// and published.
	TokenPublished TokenType = "PUBLISHED"

	// TokenUndefined means no token has been provided (and one might not
	// even be applicable).
	TokenUndefined TokenType = "UNDEFINED"

	// TokenProposed marks a token that is part of a new submission. It is
	// "proposed" because the submission may never become a published token.
	TokenProposed TokenType = "PROPOSED"

	// TokenIntragroup only applies to child products in a composition: the
	// child exists as a separate submission in the same submission group.
	TokenIntragroup TokenType = "INTRAGROUP"

	// TokenIntergroup only applies to child products in a composition: the
	// child exists as a separate submission in a different submission group.
	TokenIntergroup TokenType = "INTERGROUP"
)

// IGSDBTokenTypes lists the token types that can appear in the IGSDB itself.
func IGSDBTokenTypes() []TokenType {
	return []TokenType{TokenPublished, TokenUndefined}
}

// ProductType identifies the top-level product category.
type ProductType string

// Top-level product categories.
const (
	TypeGlazing  ProductType = "GLAZING"
	TypeShading  ProductType = "SHADING"
	TypeMaterial ProductType = "MATERIAL"
)

// ProductSubtype identifies the construction of a product within its type.
type ProductSubtype string

// Glazing subtypes.
const (
	SubtypeMonolithic      ProductSubtype = "MONOLITHIC"
	SubtypeLaminate        ProductSubtype = "LAMINATE"
	SubtypeInterlayer      ProductSubtype = "INTERLAYER"
	SubtypeEmbeddedCoating ProductSubtype = "EMBEDDED_COATING"
	SubtypeCoated          ProductSubtype = "COATED"
	SubtypeCoating         ProductSubtype = "COATING"
	SubtypeAppliedFilm     ProductSubtype = "APPLIED_FILM"
	SubtypeFilm            ProductSubtype = "FILM"
)

// Hybrid glazing / shading subtypes.
const (
	SubtypeFrittedGlass     ProductSubtype = "FRITTED_GLASS"
	SubtypeSandblastedGlass ProductSubtype = "SANDBLASTED_GLASS"
	SubtypeAcidEtchedGlass  ProductSubtype = "ACID_ETCHED_GLASS"
	SubtypeChromogenic      ProductSubtype = "CHROMOGENIC"
)

// Shading subtypes.
const (
	// These have a geometry (GeometricProperties) associated with them.
	SubtypeVenetianBlind    ProductSubtype = "VENETIAN_BLIND"
	SubtypeVerticalLouver   ProductSubtype = "VERTICAL_LOUVER"
	SubtypePerforatedScreen ProductSubtype = "PERFORATED_SCREEN"
	SubtypeWovenShade       ProductSubtype = "WOVEN_SHADE"

	// Must have a BSDF associated.
	SubtypeRollerShade ProductSubtype = "ROLLER_SHADE"

	// Must have a GEN_BSDF file attached (and may have a THMX precursor).
	SubtypeCellularShade ProductSubtype = "CELLULAR_SHADE"
	SubtypePleatedShade  ProductSubtype = "PLEATED_SHADE"
	SubtypeRomanShade    ProductSubtype = "ROMAN_SHADE"

	SubtypeDiffusingShade ProductSubtype = "DIFFUSING_SHADE"
	SubtypeSolarScreen    ProductSubtype = "SOLAR_SCREEN"

	// Shading materials.
	SubtypeShadeMaterial ProductSubtype = "SHADE_MATERIAL"

	SubtypeUnknown ProductSubtype = "UNKNOWN"
)

// CoatedSideType identifies which surface of a product carries a coating.
type CoatedSideType string

// Coated side identifiers.
const (
	CoatedSideFront   CoatedSideType = "FRONT"
	CoatedSideBack    CoatedSideType = "BACK"
	CoatedSideBoth    CoatedSideType = "BOTH"
	CoatedSideNeither CoatedSideType = "NEITHER"
	CoatedSideUnknown CoatedSideType = "UNKNOWN"
	CoatedSideNA      CoatedSideType = "NA"
)

// DataFileType identifies the format of a data file attached to a submission.
type DataFileType string

// Attached data file formats.
const (
	DataFileBSDFXML              DataFileType = "BSDF_XML"
	DataFileTHERM                DataFileType = "THERM"
	DataFileIGDBLegacySubmission DataFileType = "IGDB_LEGACY_SUBMISSION_FILE"
	DataFileCGDBLegacySubmission DataFileType = "CGDB_LEGACY_SUBMISSION_FILE"
	DataFileSPD                  DataFileType = "SPD"
	DataFileOther                DataFileType = "OTHER"
)

var tokenTypes = map[TokenType]struct{}{
	TokenPublished:  {},
	TokenUndefined:  {},
	TokenProposed:   {},
	TokenIntragroup: {},
	TokenIntergroup: {},
}

var productTypes = map[ProductType]string{
	TypeGlazing:  "glazing",
	TypeShading:  "shading",
	TypeMaterial: "material",
}

// productSubtypes maps subtype identifiers to their display names.
var productSubtypes = map[ProductSubtype]string{
	SubtypeMonolithic:       "Monolithic",
	SubtypeLaminate:         "Laminate",
	SubtypeInterlayer:       "Interlayer",
	SubtypeEmbeddedCoating:  "Embedded coating",
	SubtypeCoated:           "Coated glass",
	SubtypeCoating:          "Coating",
	SubtypeAppliedFilm:      "Applied film",
	SubtypeFilm:             "Film",
	SubtypeFrittedGlass:     "Fritted glass",
	SubtypeSandblastedGlass: "Sandblasted glass",
	SubtypeAcidEtchedGlass:  "Acid etched glass",
	SubtypeChromogenic:      "Chromogenic",
	SubtypeVenetianBlind:    "Venetian blind",
	SubtypeVerticalLouver:   "Vertical louver",
	SubtypePerforatedScreen: "Perforated screen",
	SubtypeWovenShade:       "Woven shade",
	SubtypeRollerShade:      "Roller shade",
	SubtypeCellularShade:    "Cellular shade",
	SubtypePleatedShade:     "Pleated Shade",
	SubtypeRomanShade:       "Roman shade",
	SubtypeDiffusingShade:   "Diffusing shade",
	SubtypeSolarScreen:      "Solar screen",
	SubtypeShadeMaterial:    "Shade material",
	SubtypeUnknown:          "Unknown",
}

var coatedSideTypes = map[CoatedSideType]string{
	CoatedSideFront:   "front",
	CoatedSideBack:    "back",
	CoatedSideBoth:    "both",
	CoatedSideNeither: "neither",
	CoatedSideUnknown: "unknown",
	CoatedSideNA:      "not applicable",
}

var dataFileTypes = map[DataFileType]struct{}{
	DataFileBSDFXML:              {},
	DataFileTHERM:                {},
	DataFileIGDBLegacySubmission: {},
	DataFileCGDBLegacySubmission: {},
	DataFileSPD:                  {},
	DataFileOther:                {},
}

// GlazingSubtypes returns the subtypes valid for GLAZING products.
func GlazingSubtypes() []ProductSubtype {
	return []ProductSubtype{
		SubtypeMonolithic,
		SubtypeLaminate,
		SubtypeInterlayer,
		SubtypeEmbeddedCoating,
		SubtypeCoated,
		SubtypeCoating,
		SubtypeAppliedFilm,
		SubtypeFilm,
		SubtypeFrittedGlass,
		SubtypeChromogenic,
	}
}

// ShadingSubtypes returns the subtypes valid for SHADING products.
func ShadingSubtypes() []ProductSubtype {
	return append(ShadingLayerSubtypes(), SubtypeShadeMaterial)
}

// ShadingLayerSubtypes returns the shading subtypes that carry a composition
// layer (as opposed to shade materials).
func ShadingLayerSubtypes() []ProductSubtype {
	return []ProductSubtype{
		SubtypeVenetianBlind,
		SubtypeDiffusingShade,
		SubtypeRollerShade,
		SubtypeWovenShade,
		SubtypeVerticalLouver,
		SubtypePerforatedScreen,
		SubtypeCellularShade,
		SubtypePleatedShade,
		SubtypeRomanShade,
	}
}

// LegacyCGDBShadingTypes maps legacy CGDB shading type codes to subtypes.
// The legacy mdb database had no way of telling cellular, pleated and roman
// shades apart (all code 7); when porting, code 7 is assumed CELLULAR_SHADE
// unless "pleated" or "roman" appears in the product name.
var LegacyCGDBShadingTypes = map[int]ProductSubtype{
	0: SubtypeVenetianBlind,
	1: SubtypeDiffusingShade,
	2: SubtypeRollerShade,
	3: SubtypeWovenShade,
	4: SubtypeFrittedGlass,
	5: SubtypeVerticalLouver,
	6: SubtypePerforatedScreen,
	7: SubtypeCellularShade,
}

// Valid reports whether t is a recognised token type.
func (t TokenType) Valid() bool {
	_, ok := tokenTypes[t]
	return ok
}

// ParseTokenType validates a wire-format token type string.
func ParseTokenType(s string) (TokenType, error) {
	t := TokenType(s)
	if !t.Valid() {
		return "", InvalidEnumValueError{Field: "token_type", Value: s}
	}
	return t, nil
}

// Valid reports whether t is a recognised product type.
func (t ProductType) Valid() bool {
	_, ok := productTypes[t]
	return ok
}

// DisplayName returns the human-readable form of the product type.
func (t ProductType) DisplayName() string { return productTypes[t] }

// ParseProductType validates a wire-format product type string.
func ParseProductType(s string) (ProductType, error) {
	t := ProductType(s)
	if !t.Valid() {
		return "", InvalidEnumValueError{Field: "type", Value: s}
	}
	return t, nil
}

// Valid reports whether s is a recognised product subtype.
func (s ProductSubtype) Valid() bool {
	_, ok := productSubtypes[s]
	return ok
}

// DisplayName returns the human-readable form of the subtype.
func (s ProductSubtype) DisplayName() string { return productSubtypes[s] }

// ParseProductSubtype validates a wire-format product subtype string.
func ParseProductSubtype(s string) (ProductSubtype, error) {
	sub := ProductSubtype(s)
	if !sub.Valid() {
		return "", InvalidEnumValueError{Field: "subtype", Value: s}
	}
	return sub, nil
}

// Valid reports whether c is a recognised coated side identifier.
func (c CoatedSideType) Valid() bool {
	_, ok := coatedSideTypes[c]
	return ok
}

// DisplayName returns the human-readable form of the coated side.
func (c CoatedSideType) DisplayName() string { return coatedSideTypes[c] }

// ParseCoatedSideType validates a wire-format coated side string.
func ParseCoatedSideType(s string) (CoatedSideType, error) {
	c := CoatedSideType(s)
	if !c.Valid() {
		return "", InvalidEnumValueError{Field: "coated_side", Value: s}
	}
	return c, nil
}

// Valid reports whether d is a recognised data file type.
func (d DataFileType) Valid() bool {
	_, ok := dataFileTypes[d]
	return ok
}

// ParseDataFileType validates a wire-format data file type string.
func ParseDataFileType(s string) (DataFileType, error) {
	d := DataFileType(s)
	if !d.Valid() {
		return "", InvalidEnumValueError{Field: "data_file_type", Value: s}
	}
	return d, nil
}

// UnmarshalJSON validates token types at the deserialization boundary.
// Null clears the value; anything outside the vocabulary is rejected.
func (t *TokenType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, t, "token_type", func(s string) bool { return TokenType(s).Valid() })
}

// UnmarshalJSON validates product types at the deserialization boundary.
func (t *ProductType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, t, "type", func(s string) bool { return ProductType(s).Valid() })
}

// UnmarshalJSON validates product subtypes at the deserialization boundary.
func (s *ProductSubtype) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, s, "subtype", func(v string) bool { return ProductSubtype(v).Valid() })
}

// UnmarshalJSON validates coated side identifiers at the deserialization boundary.
func (c *CoatedSideType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, c, "coated_side", func(s string) bool { return CoatedSideType(s).Valid() })
}

// UnmarshalJSON validates data file types at the deserialization boundary.
func (d *DataFileType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, d, "data_file_type", func(s string) bool { return DataFileType(s).Valid() })
}

func unmarshalEnum[T ~string](data []byte, dst *T, field string, valid func(string) bool) error {
	if string(data) == "null" {
		*dst = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s != "" && !valid(s) {
		return InvalidEnumValueError{Field: field, Value: s}
	}
	*dst = T(s)
	return nil
}
