package pipeline

type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

type ClaimStatus string

const (
	ClaimStatusCandidate ClaimStatus = "candidate"
	ClaimStatusVerified  ClaimStatus = "verified"
	ClaimStatusRejected  ClaimStatus = "rejected"
)

type VariantTarget string

const (
	VariantTargetDraft   VariantTarget = "draft"
	VariantTargetSection VariantTarget = "section"
	VariantTargetBullet  VariantTarget = "bullet"
)

type ExportStatus string

const (
	ExportStatusDraft     ExportStatus = "draft"
	ExportStatusPublished ExportStatus = "published"
)
