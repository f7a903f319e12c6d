package optical

// IntegratedSpectralAveragesSummaryValues is the fixed-shape tree of
// integrated results for one calculation standard. Every branch is optional:
// a sparse instance leaves branches nil, while NewPopulatedSummaryValues
// yields a fully navigable tree.
type IntegratedSpectralAveragesSummaryValues struct {
	Solar     *OpticalStandardMethodResults `json:"solar"`
	Photopic  *OpticalStandardMethodResults `json:"photopic"`
	ThermalIR *ThermalIRResults             `json:"thermal_ir"`
	TUV       *OpticalStandardMethodResults `json:"tuv"`
	SPF       *OpticalStandardMethodResults `json:"spf"`
	TDW       *OpticalStandardMethodResults `json:"tdw"`
	TKR       *OpticalStandardMethodResults `json:"tkr"`
	Color     *OpticalColorResults          `json:"color"`
}

// Convenience getters. Each traverses its optional chain and returns nil
// when any link is absent; missing data is never an error.

func methodFlux(m *OpticalStandardMethodResults, pick func(*OpticalStandardMethodResults) *OpticalStandardMethodFluxResults) *OpticalStandardMethodFluxResults {
	if m == nil {
		return nil
	}
	return pick(m)
}

func fluxDirectDirect(f *OpticalStandardMethodFluxResults) *float64 {
	if f == nil {
		return nil
	}
	return f.DirectDirect
}

func fluxDirectDiffuse(f *OpticalStandardMethodFluxResults) *float64 {
	if f == nil {
		return nil
	}
	return f.DirectDiffuse
}

func fluxDirectHemispherical(f *OpticalStandardMethodFluxResults) *float64 {
	if f == nil {
		return nil
	}
	return f.DirectHemispherical
}

func tf(m *OpticalStandardMethodResults) *OpticalStandardMethodFluxResults {
	return m.TransmittanceFront
}
func tb(m *OpticalStandardMethodResults) *OpticalStandardMethodFluxResults {
	return m.TransmittanceBack
}
func rf(m *OpticalStandardMethodResults) *OpticalStandardMethodFluxResults {
	return m.ReflectanceFront
}
func rb(m *OpticalStandardMethodResults) *OpticalStandardMethodFluxResults {
	return m.ReflectanceBack
}

// Solar getters.

func (v *IntegratedSpectralAveragesSummaryValues) TFSol() *float64 {
	return fluxDirectDirect(methodFlux(v.Solar, tf))
}

func (v *IntegratedSpectralAveragesSummaryValues) TFSolDirDif() *float64 {
	return fluxDirectDiffuse(methodFlux(v.Solar, tf))
}

func (v *IntegratedSpectralAveragesSummaryValues) TFSolDirHem() *float64 {
	return fluxDirectHemispherical(methodFlux(v.Solar, tf))
}

func (v *IntegratedSpectralAveragesSummaryValues) TBSol() *float64 {
	return fluxDirectDirect(methodFlux(v.Solar, tb))
}

func (v *IntegratedSpectralAveragesSummaryValues) TBSolDirDif() *float64 {
	return fluxDirectDiffuse(methodFlux(v.Solar, tb))
}

func (v *IntegratedSpectralAveragesSummaryValues) TBSolDirHem() *float64 {
	return fluxDirectHemispherical(methodFlux(v.Solar, tb))
}

func (v *IntegratedSpectralAveragesSummaryValues) RFSol() *float64 {
	return fluxDirectDirect(methodFlux(v.Solar, rf))
}

func (v *IntegratedSpectralAveragesSummaryValues) RFSolDirDif() *float64 {
	return fluxDirectDiffuse(methodFlux(v.Solar, rf))
}

func (v *IntegratedSpectralAveragesSummaryValues) RFSolDirHem() *float64 {
	return fluxDirectHemispherical(methodFlux(v.Solar, rf))
}

func (v *IntegratedSpectralAveragesSummaryValues) RBSol() *float64 {
	return fluxDirectDirect(methodFlux(v.Solar, rb))
}

func (v *IntegratedSpectralAveragesSummaryValues) RBSolDirDif() *float64 {
	return fluxDirectDiffuse(methodFlux(v.Solar, rb))
}

func (v *IntegratedSpectralAveragesSummaryValues) RBSolDirHem() *float64 {
	return fluxDirectHemispherical(methodFlux(v.Solar, rb))
}

// Photopic getters.

func (v *IntegratedSpectralAveragesSummaryValues) TFVis() *float64 {
	return fluxDirectDirect(methodFlux(v.Photopic, tf))
}

func (v *IntegratedSpectralAveragesSummaryValues) TBVis() *float64 {
	return fluxDirectDirect(methodFlux(v.Photopic, tb))
}

func (v *IntegratedSpectralAveragesSummaryValues) TBVisDirDif() *float64 {
	return fluxDirectDiffuse(methodFlux(v.Photopic, tb))
}

func (v *IntegratedSpectralAveragesSummaryValues) TBVisDirHem() *float64 {
	return fluxDirectHemispherical(methodFlux(v.Photopic, tb))
}

func (v *IntegratedSpectralAveragesSummaryValues) RFVis() *float64 {
	return fluxDirectDirect(methodFlux(v.Photopic, rf))
}

func (v *IntegratedSpectralAveragesSummaryValues) RFVisDirDif() *float64 {
	return fluxDirectDiffuse(methodFlux(v.Photopic, rf))
}

func (v *IntegratedSpectralAveragesSummaryValues) RFVisDirHem() *float64 {
	return fluxDirectHemispherical(methodFlux(v.Photopic, rf))
}

func (v *IntegratedSpectralAveragesSummaryValues) RBVis() *float64 {
	return fluxDirectDirect(methodFlux(v.Photopic, rb))
}

func (v *IntegratedSpectralAveragesSummaryValues) RBVisDirDif() *float64 {
	return fluxDirectDiffuse(methodFlux(v.Photopic, rb))
}

func (v *IntegratedSpectralAveragesSummaryValues) RBVisDirHem() *float64 {
	return fluxDirectHemispherical(methodFlux(v.Photopic, rb))
}

// Single-value method getters.

func (v *IntegratedSpectralAveragesSummaryValues) TFTuv() *float64 {
	return fluxDirectDirect(methodFlux(v.TUV, tf))
}

func (v *IntegratedSpectralAveragesSummaryValues) TFSpf() *float64 {
	return fluxDirectDirect(methodFlux(v.SPF, tf))
}

func (v *IntegratedSpectralAveragesSummaryValues) TFTdw() *float64 {
	return fluxDirectDirect(methodFlux(v.TDW, tf))
}

func (v *IntegratedSpectralAveragesSummaryValues) TFTkr() *float64 {
	return fluxDirectDirect(methodFlux(v.TKR, tf))
}

// Color getters.

func (v *IntegratedSpectralAveragesSummaryValues) colorDirectDirect(pick func(*OpticalColorResults) *OpticalColorFluxResults) *OpticalColorResult {
	if v.Color == nil {
		return nil
	}
	flux := pick(v.Color)
	if flux == nil {
		return nil
	}
	return flux.DirectDirect
}

func trichromaticCoord(c *OpticalColorResult, pick func(*TrichromaticResult) *float64) *float64 {
	if c == nil || c.Trichromatic == nil {
		return nil
	}
	return pick(c.Trichromatic)
}

func rgbCoord(c *OpticalColorResult, pick func(*RGBResult) *float64) *float64 {
	if c == nil || c.RGB == nil {
		return nil
	}
	return pick(c.RGB)
}

func colorTF(c *OpticalColorResults) *OpticalColorFluxResults { return c.TransmittanceFront }
func colorRF(c *OpticalColorResults) *OpticalColorFluxResults { return c.ReflectanceFront }
func colorRB(c *OpticalColorResults) *OpticalColorFluxResults { return c.ReflectanceBack }

func (v *IntegratedSpectralAveragesSummaryValues) TFCieX() *float64 {
	return trichromaticCoord(v.colorDirectDirect(colorTF), func(t *TrichromaticResult) *float64 { return t.X })
}

func (v *IntegratedSpectralAveragesSummaryValues) TFCieY() *float64 {
	return trichromaticCoord(v.colorDirectDirect(colorTF), func(t *TrichromaticResult) *float64 { return t.Y })
}

func (v *IntegratedSpectralAveragesSummaryValues) TFCieZ() *float64 {
	return trichromaticCoord(v.colorDirectDirect(colorTF), func(t *TrichromaticResult) *float64 { return t.Z })
}

func (v *IntegratedSpectralAveragesSummaryValues) RFCieX() *float64 {
	return trichromaticCoord(v.colorDirectDirect(colorRF), func(t *TrichromaticResult) *float64 { return t.X })
}

func (v *IntegratedSpectralAveragesSummaryValues) RFCieY() *float64 {
	return trichromaticCoord(v.colorDirectDirect(colorRF), func(t *TrichromaticResult) *float64 { return t.Y })
}

func (v *IntegratedSpectralAveragesSummaryValues) RFCieZ() *float64 {
	return trichromaticCoord(v.colorDirectDirect(colorRF), func(t *TrichromaticResult) *float64 { return t.Z })
}

func (v *IntegratedSpectralAveragesSummaryValues) RBCieX() *float64 {
	return trichromaticCoord(v.colorDirectDirect(colorRB), func(t *TrichromaticResult) *float64 { return t.X })
}

func (v *IntegratedSpectralAveragesSummaryValues) RBCieY() *float64 {
	return trichromaticCoord(v.colorDirectDirect(colorRB), func(t *TrichromaticResult) *float64 { return t.Y })
}

func (v *IntegratedSpectralAveragesSummaryValues) RBCieZ() *float64 {
	return trichromaticCoord(v.colorDirectDirect(colorRB), func(t *TrichromaticResult) *float64 { return t.Z })
}

func (v *IntegratedSpectralAveragesSummaryValues) TFR() *float64 {
	return rgbCoord(v.colorDirectDirect(colorTF), func(r *RGBResult) *float64 { return r.R })
}

func (v *IntegratedSpectralAveragesSummaryValues) TFG() *float64 {
	return rgbCoord(v.colorDirectDirect(colorTF), func(r *RGBResult) *float64 { return r.G })
}

func (v *IntegratedSpectralAveragesSummaryValues) TFB() *float64 {
	return rgbCoord(v.colorDirectDirect(colorTF), func(r *RGBResult) *float64 { return r.B })
}

func (v *IntegratedSpectralAveragesSummaryValues) RFR() *float64 {
	return rgbCoord(v.colorDirectDirect(colorRF), func(r *RGBResult) *float64 { return r.R })
}

func (v *IntegratedSpectralAveragesSummaryValues) RFG() *float64 {
	return rgbCoord(v.colorDirectDirect(colorRF), func(r *RGBResult) *float64 { return r.G })
}

func (v *IntegratedSpectralAveragesSummaryValues) RFB() *float64 {
	return rgbCoord(v.colorDirectDirect(colorRF), func(r *RGBResult) *float64 { return r.B })
}

func (v *IntegratedSpectralAveragesSummaryValues) RBR() *float64 {
	return rgbCoord(v.colorDirectDirect(colorRB), func(r *RGBResult) *float64 { return r.R })
}

func (v *IntegratedSpectralAveragesSummaryValues) RBG() *float64 {
	return rgbCoord(v.colorDirectDirect(colorRB), func(r *RGBResult) *float64 { return r.G })
}

func (v *IntegratedSpectralAveragesSummaryValues) RBB() *float64 {
	return rgbCoord(v.colorDirectDirect(colorRB), func(r *RGBResult) *float64 { return r.B })
}

// Thermal-IR getters.

// TIRFront returns the front thermal-IR transmittance.
func (v *IntegratedSpectralAveragesSummaryValues) TIRFront() *float64 {
	return v.ThermalIR.TransmittanceFront()
}

// TIRBack returns the back thermal-IR transmittance.
func (v *IntegratedSpectralAveragesSummaryValues) TIRBack() *float64 {
	return v.ThermalIR.TransmittanceBack()
}

// EmissivityFront returns the front hemispheric emissivity.
func (v *IntegratedSpectralAveragesSummaryValues) EmissivityFront() *float64 {
	return v.ThermalIR.EmissivityFrontHemispheric()
}

// EmissivityBack returns the back hemispheric emissivity.
func (v *IntegratedSpectralAveragesSummaryValues) EmissivityBack() *float64 {
	return v.ThermalIR.EmissivityBackHemispheric()
}
