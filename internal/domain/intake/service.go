package intake

import (
	"context"

	"github.com/google/uuid"

	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/audit"
	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/matching"
	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/selection"
	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/triage"
)

// Service runs the decision pipeline for one encounter in strict order:
// validate, classify, match, with an audit entry per decision. A validation
// failure short-circuits; nothing downstream runs on unvalidated input.
// No stage is retried.
type Service struct {
	validator  *selection.Validator
	classifier *triage.Classifier
	matcher    *matching.Service
	auditor    *audit.Logger
}

func NewService(validator *selection.Validator, classifier *triage.Classifier, matcher *matching.Service, auditor *audit.Logger) *Service {
	return &Service{
		validator:  validator,
		classifier: classifier,
		matcher:    matcher,
		auditor:    auditor,
	}
}

// Evaluate runs the full pipeline. The returned error is either a
// validation error (caller asks the user to correct input) or a roster
// failure; every other state, including no eligible providers, is a result.
func (s *Service) Evaluate(ctx context.Context, correlationID uuid.UUID, req *EvaluationRequest) (*EvaluationResult, error) {
	warnings, err := s.validator.ValidateSelectionSet(&req.SelectionSet)
	if err != nil {
		s.auditor.Log(ctx, correlationID, audit.ActionValidationFailed, err.Error(), nil)
		return nil, err
	}
	s.auditor.Log(ctx, correlationID, audit.ActionValidationPassed, "selection set valid",
		map[string]any{"selections": len(req.SelectionSet.Selections), "warnings": len(warnings)})

	redFlags := s.validator.CheckRedFlags(&req.SelectionSet)
	score := s.validator.CalculateTriageScore(&req.SelectionSet)

	bundle := s.bundle(req, redFlags)
	result := s.classifier.Classify(bundle)
	s.auditor.Log(ctx, correlationID, audit.ActionTriageClassified,
		"urgency "+string(result.Urgency),
		map[string]any{
			"urgency":        string(result.Urgency),
			"priority_score": result.PriorityScore,
			"specialty":      string(result.RecommendedSpecialty),
			"red_flags":      len(result.RedFlags),
		})

	matchReq := matching.Request{
		PatientAgeYears:   req.PatientAgeYears,
		PatientGender:     req.PatientGender,
		PreferredLanguage: req.PreferredLanguage,
		RequestedMode:     req.RequestedMode,
		Limit:             req.Limit,
	}
	outcome, err := s.matcher.Match(ctx, correlationID, matchReq, result, bundle.ComplaintType)
	if err != nil {
		return nil, err
	}

	return &EvaluationResult{
		CorrelationID: correlationID,
		Triage:        result,
		TriageScore:   score,
		Warnings:      warnings,
		Appointment: AppointmentUrgencyContext{
			Urgency:      result.Urgency,
			WaitTime:     triage.WaitTimeGuidance(result.Urgency),
			BlockedModes: outcome.BlockedModes,
		},
		Match: outcome,
	}, nil
}

// bundle assembles the typed classifier input from the validated set. On any
// signal that raises urgency the bundle is biased up, never down: emergency
// attention from the body map raises the screening category to IMMEDIATE
// even when screening itself answered lower.
func (s *Service) bundle(req *EvaluationRequest, redFlags []selection.RedFlagFinding) *triage.EncounterBundle {
	category := req.ScreeningCategory
	if category == "" {
		category = triage.CategoryRoutine
	}
	if s.validator.RequiresEmergencyAttention(&req.SelectionSet) {
		category = triage.CategoryImmediate
	}

	maxIntensity := 0
	onset := selection.OnsetGradual
	zoneIDs := make([]string, 0, len(req.SelectionSet.Selections))
	for _, sel := range req.SelectionSet.Selections {
		if sel.Intensity > maxIntensity {
			maxIntensity = sel.Intensity
		}
		if sel.Onset == selection.OnsetSudden {
			onset = selection.OnsetSudden
		}
		zoneIDs = append(zoneIDs, sel.ZoneID)
	}

	complaintType := req.ComplaintType
	if complaintType == "" {
		complaintType = triage.DeriveComplaintType(req.SelectionSet.PrimaryComplaint)
	}

	return &triage.EncounterBundle{
		ScreeningCategory: category,
		ScreeningPositive: req.ScreeningPositive,
		RedFlags:          redFlags,
		MaxPainIntensity:  maxIntensity,
		Onset:             onset,
		Trend:             req.Trend,
		ComplaintType:     complaintType,
		ChiefComplaint:    req.SelectionSet.PrimaryComplaint,
		PatientAgeYears:   req.PatientAgeYears,
		ZoneIDs:           zoneIDs,
	}
}
