package engine

import (
	"time"

	"github.com/google/uuid"

	"water-advisor/internal/model"
	"water-advisor/internal/report"
	"water-advisor/internal/rules"
)

// Compute estimates the household's daily water use and picks the
// recommendations. It has no side effects.
func Compute(in model.HouseholdInput) (model.Report, error) {
	if in.FamilySize <= 0 {
		return model.Report{}, ErrInvalidFamilySize
	}

	people := float64(in.FamilySize)

	b := model.Breakdown{
		ShowerLiters:  people * in.ShowerMinutes * FlowRateShower,
		FlushLiters:   people * FlushesPerPersonPerDay * FlushVolume,
		LaundryLiters: in.LaundryLoadsPerWeek * LaundryVolumePerLoad / daysPerWeek,
	}
	if in.UsesRO {
		b.ROWasteLiters = people * ROConsumptionPerPersonPerDay * ROWasteRatio
	}
	b.TotalLiters = b.ShowerLiters + b.FlushLiters + b.LaundryLiters + b.ROWasteLiters
	b.PerPersonLiters = b.TotalLiters / people

	status := model.StatusHigh
	if b.PerPersonLiters <= PerPersonBenchmark {
		status = model.StatusExcellent
	}

	return model.Report{
		Breakdown: b,
		Status:    status,
		Primary:   rules.Primary(&b),
		Secondary: rules.Secondary(),
	}, nil
}

// Audit returns the rendered report, or the advisory text when the input
// cannot be audited.
func Audit(in model.HouseholdInput) string {
	r, err := Compute(in)
	if err != nil {
		return err.Error()
	}
	return report.Render(&r)
}

func Process(req *model.AuditRequest) *model.AuditResponse {
	start := clock.Now()

	result := model.AuditResult{Messages: []model.CalculationMessage{}}
	outcome := model.OutcomeSuccess

	r, err := Compute(req.Input())
	if err != nil {
		result.Messages = append(result.Messages, model.CalculationMessage{
			ID:      0,
			Level:   model.LevelCritical,
			Code:    model.CodeInvalidFamilySize,
			Message: err.Error(),
		})
		result.Report = err.Error()
		outcome = model.OutcomeFailure
	} else {
		result.Breakdown = &r.Breakdown
		result.Status = r.Status
		result.PrimaryRecommendation = &r.Primary
		result.SecondaryRecommendation = &r.Secondary
		result.Report = report.Render(&r)
	}

	elapsed := clock.Since(start)
	now := clock.Now().UTC()

	return &model.AuditResponse{
		AuditMetadata: model.AuditMetadata{
			AuditID:          uuid.New().String(),
			AuditStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			AuditCompletedAt: now.Format(time.RFC3339),
			AuditDurationMs:  elapsed.Milliseconds(),
			AuditOutcome:     outcome,
		},
		AuditResult: result,
	}
}
