package dto

// FirstRegistrationDate pins the tax-relevant registration moment of a saved
// vehicle search. Month may legitimately be unknown for older vehicles.
type FirstRegistrationDate struct {
	Year         int  `json:"year"`
	Month        *int `json:"month,omitempty"`
	MonthUnknown bool `json:"monthUnknown,omitempty"`
}

// SavedSearchRequest references either a catalog variant or a community
// submission, never both absent.
type SavedSearchRequest struct {
	VariantID             *int64                 `json:"variantId,omitempty"`
	SubmissionID          *int64                 `json:"submissionId,omitempty"`
	Region                string                 `json:"region"`
	FirstRegistrationDate *FirstRegistrationDate `json:"firstRegistrationDate"`
	Label                 string                 `json:"label"`
}
