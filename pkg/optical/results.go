package optical

// OpticalStandardMethodFluxResults holds the per-flux results of one
// standard method calculation. DirectDirect and DirectDiffuse correspond to
// the legacy "Specular" and "Diffuse" CGDB shade material columns.
type OpticalStandardMethodFluxResults struct {
	DirectDirect        *float64    `json:"direct_direct"`
	DirectDiffuse       *float64    `json:"direct_diffuse"`
	DirectHemispherical *float64    `json:"direct_hemispherical"`
	DiffuseDiffuse      *float64    `json:"diffuse_diffuse"`
	Matrix              [][]float64 `json:"matrix,omitempty"`
}

// OpticalStandardMethodResults aggregates transmittance, reflectance and
// absorptance results for one calculation method.
type OpticalStandardMethodResults struct {
	TransmittanceFront          *OpticalStandardMethodFluxResults `json:"transmittance_front"`
	TransmittanceBack           *OpticalStandardMethodFluxResults `json:"transmittance_back"`
	ReflectanceFront            *OpticalStandardMethodFluxResults `json:"reflectance_front"`
	ReflectanceBack             *OpticalStandardMethodFluxResults `json:"reflectance_back"`
	AbsorptanceFrontDirect      *float64                          `json:"absorptance_front_direct"`
	AbsorptanceBackDirect       *float64                          `json:"absorptance_back_direct"`
	AbsorptanceFrontHemispheric *float64                          `json:"absorptance_front_hemispheric"`
	AbsorptanceBackHemispheric  *float64                          `json:"absorptance_back_hemispheric"`
	Error                       *string                           `json:"error,omitempty"`
}

// ThermalIRResults holds the thermal-infrared calculation outputs.
type ThermalIRResults struct {
	TransmittanceFrontDiffuseDiffuse *float64 `json:"transmittance_front_diffuse_diffuse"`
	TransmittanceBackDiffuseDiffuse  *float64 `json:"transmittance_back_diffuse_diffuse"`
	AbsorptanceFrontHemispheric      *float64 `json:"absorptance_front_hemispheric"`
	AbsorptanceBackHemispheric       *float64 `json:"absorptance_back_hemispheric"`
	Error                            *string  `json:"error,omitempty"`
}

// EmissivityFrontHemispheric returns the front hemispheric emissivity, which
// equals the front hemispheric absorptance.
func (r *ThermalIRResults) EmissivityFrontHemispheric() *float64 {
	if r == nil {
		return nil
	}
	return r.AbsorptanceFrontHemispheric
}

// EmissivityBackHemispheric returns the back hemispheric emissivity.
func (r *ThermalIRResults) EmissivityBackHemispheric() *float64 {
	if r == nil {
		return nil
	}
	return r.AbsorptanceBackHemispheric
}

// TransmittanceFront returns the front diffuse-diffuse transmittance.
func (r *ThermalIRResults) TransmittanceFront() *float64 {
	if r == nil {
		return nil
	}
	return r.TransmittanceFrontDiffuseDiffuse
}

// TransmittanceBack returns the back diffuse-diffuse transmittance.
func (r *ThermalIRResults) TransmittanceBack() *float64 {
	if r == nil {
		return nil
	}
	return r.TransmittanceBackDiffuseDiffuse
}

// TrichromaticResult is a CIE XYZ color coordinate.
type TrichromaticResult struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
	Z *float64 `json:"z"`
}

// LabResult is a CIE L*a*b* color coordinate.
type LabResult struct {
	L *float64 `json:"l"`
	A *float64 `json:"a"`
	B *float64 `json:"b"`
}

// RGBResult is an RGB color coordinate.
type RGBResult struct {
	R *float64 `json:"r"`
	G *float64 `json:"g"`
	B *float64 `json:"b"`
}

// OpticalColorResult groups the color coordinate systems for one flux.
type OpticalColorResult struct {
	Trichromatic *TrichromaticResult `json:"trichromatic"`
	Lab          *LabResult          `json:"lab"`
	RGB          *RGBResult          `json:"rgb"`
}

// OpticalColorFluxResults holds color results per flux direction.
type OpticalColorFluxResults struct {
	DirectDirect        *OpticalColorResult `json:"direct_direct"`
	DirectDiffuse       *OpticalColorResult `json:"direct_diffuse"`
	DirectHemispherical *OpticalColorResult `json:"direct_hemispherical"`
	DiffuseDiffuse      *OpticalColorResult `json:"diffuse_diffuse"`
}

// OpticalColorResults aggregates color results for transmittance and
// reflectance on both sides.
type OpticalColorResults struct {
	TransmittanceFront *OpticalColorFluxResults `json:"transmittance_front"`
	TransmittanceBack  *OpticalColorFluxResults `json:"transmittance_back"`
	ReflectanceFront   *OpticalColorFluxResults `json:"reflectance_front"`
	ReflectanceBack    *OpticalColorFluxResults `json:"reflectance_back"`
	Error              *string                  `json:"error,omitempty"`
}
