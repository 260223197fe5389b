package engine

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"water-advisor/internal/model"
	"water-advisor/internal/rules"
)

const tolerance = 1e-6

func approx(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestComputeFamilyOfFourWithRO(t *testing.T) {
	r, err := Compute(model.HouseholdInput{FamilySize: 4, ShowerMinutes: 10, LaundryLoadsPerWeek: 5, UsesRO: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b := r.Breakdown
	if b.ShowerLiters != 400 {
		t.Fatalf("expected shower 400, got %v", b.ShowerLiters)
	}
	if b.FlushLiters != 96 {
		t.Fatalf("expected flush 96, got %v", b.FlushLiters)
	}
	if !approx(b.LaundryLiters, 42.857142857) {
		t.Fatalf("expected laundry 42.857, got %v", b.LaundryLiters)
	}
	if b.ROWasteLiters != 24 {
		t.Fatalf("expected RO 24, got %v", b.ROWasteLiters)
	}
	if !approx(b.TotalLiters, 562.857142857) {
		t.Fatalf("expected total 562.857, got %v", b.TotalLiters)
	}
	if !approx(b.PerPersonLiters, 140.714285714) {
		t.Fatalf("expected per person 140.71, got %v", b.PerPersonLiters)
	}
	if r.Status != model.StatusHigh {
		t.Fatalf("expected HIGH, got %s", r.Status)
	}
	if r.Primary.Code != rules.CodeShower {
		t.Fatalf("expected shower recommendation, got %s", r.Primary.Code)
	}
	if !strings.Contains(r.Primary.Heading, "400 L/day") {
		t.Fatalf("expected heading to cite 400 L/day, got %q", r.Primary.Heading)
	}
}

func TestComputeCoupleWithoutRO(t *testing.T) {
	r, err := Compute(model.HouseholdInput{FamilySize: 2, ShowerMinutes: 5, LaundryLoadsPerWeek: 1, UsesRO: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b := r.Breakdown
	if b.ShowerLiters != 100 || b.FlushLiters != 48 || b.ROWasteLiters != 0 {
		t.Fatalf("unexpected breakdown: %+v", b)
	}
	if !approx(b.LaundryLiters, 8.571428571) {
		t.Fatalf("expected laundry 8.57, got %v", b.LaundryLiters)
	}
	if !approx(b.PerPersonLiters, 78.285714285) {
		t.Fatalf("expected per person 78.29, got %v", b.PerPersonLiters)
	}
	if r.Status != model.StatusExcellent {
		t.Fatalf("expected EXCELLENT, got %s", r.Status)
	}
	if r.Primary.Heading != "BIGGEST WASTE: SHOWERS (100 L/day)" {
		t.Fatalf("unexpected heading %q", r.Primary.Heading)
	}
}

func TestComputeFallsThroughToLeakyTap(t *testing.T) {
	r, err := Compute(model.HouseholdInput{FamilySize: 1, ShowerMinutes: 0, LaundryLoadsPerWeek: 0, UsesRO: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.Breakdown.FlushLiters != 24 || r.Breakdown.ROWasteLiters != 6 {
		t.Fatalf("unexpected breakdown: %+v", r.Breakdown)
	}
	if r.Primary.Code != rules.CodeLeakyTap {
		t.Fatalf("expected leaky tap tip, got %s", r.Primary.Code)
	}
	if r.Secondary.Code != rules.CodeBrushTeeth {
		t.Fatalf("expected brushing tip, got %s", r.Secondary.Code)
	}
}

func TestComputeInvalidFamilySize(t *testing.T) {
	for _, size := range []int{0, -1, -15} {
		_, err := Compute(model.HouseholdInput{FamilySize: size, ShowerMinutes: 10, LaundryLoadsPerWeek: 5, UsesRO: true})
		if !errors.Is(err, ErrInvalidFamilySize) {
			t.Fatalf("family size %d: expected ErrInvalidFamilySize, got %v", size, err)
		}

		got := Audit(model.HouseholdInput{FamilySize: size, ShowerMinutes: 99, LaundryLoadsPerWeek: -3})
		if got != "Please enter a valid family size." {
			t.Fatalf("family size %d: unexpected advisory %q", size, got)
		}
	}
}

func TestBenchmarkIsInclusive(t *testing.T) {
	// 2 * 10.5 * 10 + 2 * 4 * 6 + 2 * 2 * 3 = 270 -> 135 per person
	r, err := Compute(model.HouseholdInput{FamilySize: 2, ShowerMinutes: 10.5, UsesRO: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Breakdown.PerPersonLiters != 135 {
		t.Fatalf("expected exactly 135 per person, got %v", r.Breakdown.PerPersonLiters)
	}
	if r.Status != model.StatusExcellent {
		t.Fatalf("expected EXCELLENT at the benchmark, got %s", r.Status)
	}
}

func TestPerPersonIsTotalOverFamilySize(t *testing.T) {
	inputs := []model.HouseholdInput{
		{FamilySize: 1, ShowerMinutes: 1, LaundryLoadsPerWeek: 0},
		{FamilySize: 3, ShowerMinutes: 7, LaundryLoadsPerWeek: 3, UsesRO: true},
		{FamilySize: 15, ShowerMinutes: 60, LaundryLoadsPerWeek: 40, UsesRO: true},
		{FamilySize: 6, ShowerMinutes: -2, LaundryLoadsPerWeek: -1},
	}
	for _, in := range inputs {
		r, err := Compute(in)
		if err != nil {
			t.Fatalf("unexpected error for %+v: %v", in, err)
		}
		want := r.Breakdown.TotalLiters / float64(in.FamilySize)
		if !approx(r.Breakdown.PerPersonLiters, want) {
			t.Fatalf("per person %v != total/size %v for %+v", r.Breakdown.PerPersonLiters, want, in)
		}
	}
}

func TestNegativeInputsAreAccepted(t *testing.T) {
	r, err := Compute(model.HouseholdInput{FamilySize: 2, ShowerMinutes: -5, LaundryLoadsPerWeek: -7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Breakdown.ShowerLiters != -100 || r.Breakdown.LaundryLiters != -60 {
		t.Fatalf("unexpected breakdown: %+v", r.Breakdown)
	}
}

func TestAuditHugeShowerMinutes(t *testing.T) {
	out := Audit(model.HouseholdInput{FamilySize: 1, ShowerMinutes: 1e18})
	if strings.Contains(out, "-9223372036854775808") {
		t.Fatalf("figures wrapped around:\n%s", out)
	}
	if !strings.Contains(out, "Total Household Usage: 10000000000000000000 Liters/day") {
		t.Fatalf("expected exact truncated total:\n%s", out)
	}
	if !strings.Contains(out, "BIGGEST WASTE: SHOWERS (10000000000000000000 L/day)") {
		t.Fatalf("expected exact shower heading:\n%s", out)
	}
	if !strings.Contains(out, "HIGH USAGE") {
		t.Fatalf("expected HIGH USAGE:\n%s", out)
	}
}

func TestAuditIsIdempotent(t *testing.T) {
	in := model.HouseholdInput{FamilySize: 4, ShowerMinutes: 10, LaundryLoadsPerWeek: 5, UsesRO: true}
	first := Audit(in)
	second := Audit(in)
	if first != second {
		t.Fatalf("expected identical output, got:\n%s\nvs\n%s", first, second)
	}
	if !strings.Contains(first, "BIGGEST WASTE: SHOWERS (400 L/day)") {
		t.Fatalf("expected shower fix in report:\n%s", first)
	}
	if !strings.Contains(first, "HIGH USAGE") {
		t.Fatalf("expected HIGH USAGE in report:\n%s", first)
	}
}

func TestProcess(t *testing.T) {
	fake := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC))
	SetClock(fake)
	defer SetClock(nil)

	resp := Process(&model.AuditRequest{
		FamilySize:          4,
		ShowerMinutes:       10,
		LaundryLoadsPerWeek: 5,
		ROPurifier:          "Yes",
	})

	meta := resp.AuditMetadata
	if meta.AuditOutcome != model.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s", meta.AuditOutcome)
	}
	if meta.AuditID == "" {
		t.Fatal("expected audit_id to be set")
	}
	if meta.AuditStartedAt != "2026-03-01T08:30:00Z" || meta.AuditCompletedAt != "2026-03-01T08:30:00Z" {
		t.Fatalf("unexpected timestamps %s / %s", meta.AuditStartedAt, meta.AuditCompletedAt)
	}

	res := resp.AuditResult
	if len(res.Messages) != 0 {
		t.Fatalf("expected 0 messages, got %d", len(res.Messages))
	}
	if res.Breakdown == nil || res.Breakdown.ROWasteLiters != 24 {
		t.Fatalf("expected RO term of 24, got %+v", res.Breakdown)
	}
	if res.Status != model.StatusHigh {
		t.Fatalf("expected HIGH, got %s", res.Status)
	}
	if res.PrimaryRecommendation == nil || res.PrimaryRecommendation.Code != rules.CodeShower {
		t.Fatalf("unexpected primary recommendation %+v", res.PrimaryRecommendation)
	}
	if res.Report != Audit(model.HouseholdInput{FamilySize: 4, ShowerMinutes: 10, LaundryLoadsPerWeek: 5, UsesRO: true}) {
		t.Fatal("expected report to match Audit output")
	}
}

func TestProcessROOnlyOnExactYes(t *testing.T) {
	for _, v := range []string{"yes", "YES", "No", "", "maybe"} {
		resp := Process(&model.AuditRequest{FamilySize: 1, ROPurifier: v})
		if resp.AuditResult.Breakdown.ROWasteLiters != 0 {
			t.Fatalf("ro_purifier %q: expected no RO term, got %v", v, resp.AuditResult.Breakdown.ROWasteLiters)
		}
	}
}

func TestProcessInvalidFamilySize(t *testing.T) {
	resp := Process(&model.AuditRequest{FamilySize: 0, ShowerMinutes: 10, ROPurifier: "Yes"})

	if resp.AuditMetadata.AuditOutcome != model.OutcomeFailure {
		t.Fatalf("expected FAILURE, got %s", resp.AuditMetadata.AuditOutcome)
	}
	if len(resp.AuditResult.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(resp.AuditResult.Messages))
	}
	msg := resp.AuditResult.Messages[0]
	if msg.Code != model.CodeInvalidFamilySize || msg.Level != model.LevelCritical {
		t.Fatalf("unexpected message %+v", msg)
	}
	if resp.AuditResult.Breakdown != nil {
		t.Fatal("expected no breakdown for invalid input")
	}
	if resp.AuditResult.Report != "Please enter a valid family size." {
		t.Fatalf("unexpected report %q", resp.AuditResult.Report)
	}
}
