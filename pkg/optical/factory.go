package optical

// Factories for fully initialized result trees. The zero values are sparse
// (every branch nil); calculation engines that need a guaranteed-navigable
// instance to write into use these instead. Leaf numerics stay nil.

// NewPopulatedStandardMethodResults returns standard method results with
// every flux branch instantiated.
func NewPopulatedStandardMethodResults() *OpticalStandardMethodResults {
	return &OpticalStandardMethodResults{
		TransmittanceFront: &OpticalStandardMethodFluxResults{},
		TransmittanceBack:  &OpticalStandardMethodFluxResults{},
		ReflectanceFront:   &OpticalStandardMethodFluxResults{},
		ReflectanceBack:    &OpticalStandardMethodFluxResults{},
	}
}

// NewPopulatedColorResult returns a color result with every coordinate
// system instantiated.
func NewPopulatedColorResult() *OpticalColorResult {
	return &OpticalColorResult{
		Trichromatic: &TrichromaticResult{},
		Lab:          &LabResult{},
		RGB:          &RGBResult{},
	}
}

// NewPopulatedColorFluxResults returns color flux results with every flux
// direction instantiated.
func NewPopulatedColorFluxResults() *OpticalColorFluxResults {
	return &OpticalColorFluxResults{
		DirectDirect:        NewPopulatedColorResult(),
		DirectDiffuse:       NewPopulatedColorResult(),
		DirectHemispherical: NewPopulatedColorResult(),
		DiffuseDiffuse:      NewPopulatedColorResult(),
	}
}

// NewPopulatedColorResults returns color results with every flux branch
// instantiated.
func NewPopulatedColorResults() *OpticalColorResults {
	return &OpticalColorResults{
		TransmittanceFront: NewPopulatedColorFluxResults(),
		TransmittanceBack:  NewPopulatedColorFluxResults(),
		ReflectanceFront:   NewPopulatedColorFluxResults(),
		ReflectanceBack:    NewPopulatedColorFluxResults(),
	}
}

// NewPopulatedSummaryValues returns a summary-values tree with every method
// branch instantiated.
func NewPopulatedSummaryValues() *IntegratedSpectralAveragesSummaryValues {
	return &IntegratedSpectralAveragesSummaryValues{
		Solar:     NewPopulatedStandardMethodResults(),
		Photopic:  NewPopulatedStandardMethodResults(),
		ThermalIR: &ThermalIRResults{},
		TUV:       NewPopulatedStandardMethodResults(),
		SPF:       NewPopulatedStandardMethodResults(),
		TDW:       NewPopulatedStandardMethodResults(),
		TKR:       NewPopulatedStandardMethodResults(),
		Color:     NewPopulatedColorResults(),
	}
}
