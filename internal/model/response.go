package model

type AuditResponse struct {
	AuditMetadata AuditMetadata `json:"audit_metadata" yaml:"audit_metadata"`
	AuditResult   AuditResult   `json:"audit_result" yaml:"audit_result"`
}

type AuditMetadata struct {
	AuditID          string `json:"audit_id" yaml:"audit_id"`
	AuditStartedAt   string `json:"audit_started_at" yaml:"audit_started_at"`
	AuditCompletedAt string `json:"audit_completed_at" yaml:"audit_completed_at"`
	AuditDurationMs  int64  `json:"audit_duration_ms" yaml:"audit_duration_ms"`
	AuditOutcome     string `json:"audit_outcome" yaml:"audit_outcome"`
}

type AuditResult struct {
	Messages                []CalculationMessage `json:"messages" yaml:"messages"`
	Breakdown               *Breakdown           `json:"breakdown" yaml:"breakdown"`
	Status                  Status               `json:"status,omitempty" yaml:"status,omitempty"`
	PrimaryRecommendation   *Recommendation      `json:"primary_recommendation" yaml:"primary_recommendation"`
	SecondaryRecommendation *Recommendation      `json:"secondary_recommendation" yaml:"secondary_recommendation"`
	Report                  string               `json:"report" yaml:"report"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
