package dto

// VehicleSubmissionRequest carries a community-submitted vehicle. The gateway
// checks field presence only and forwards the payload untouched; the backend
// owns every business rule about it.
type VehicleSubmissionRequest struct {
	BrandName         string `json:"brandName"`
	ModelName         string `json:"modelName"`
	VariantName       string `json:"variantName"`
	YearStart         int    `json:"yearStart"`
	YearEnd           *int   `json:"yearEnd,omitempty"`
	PowerKw           int    `json:"powerKw"`
	FiscalHp          *int   `json:"fiscalHp,omitempty"`
	Fuel              string `json:"fuel"`
	EuroNorm          string `json:"euroNorm"`
	CO2Wltp           *int   `json:"co2Wltp,omitempty"`
	CO2Nedc           *int   `json:"co2Nedc,omitempty"`
	DisplacementCc    *int   `json:"displacementCc,omitempty"`
	MmaKg             *int   `json:"mmaKg,omitempty"`
	HasParticleFilter *bool  `json:"hasParticleFilter,omitempty"`
}

// SubmissionReviewRequest is the optional reject body. Feedback is forwarded
// verbatim to the backend reviewer trail.
type SubmissionReviewRequest struct {
	Feedback string `json:"feedback,omitempty"`
}
