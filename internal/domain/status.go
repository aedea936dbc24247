package domain

type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

type Mode string

const (
	ModeSingle Mode = "single"
	ModeBatch  Mode = "batch"
)

type Risk string

const (
	RiskLow    Risk = "Low"
	RiskMedium Risk = "Medium"
	RiskHigh   Risk = "High"
)

type RecommendationType string

const (
	RecommendationApproved RecommendationType = "approved"
	RecommendationReview   RecommendationType = "review"
)
