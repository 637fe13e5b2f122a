// Package clinicalerr defines the coded, bilingual error taxonomy shared by
// the triage decision core. Every error carries a stable machine code plus an
// English and an Arabic message so the collaborating UI can surface it in the
// patient's language without re-mapping.
package clinicalerr

import "fmt"

// Machine codes. Stable; logged and returned to API clients.
const (
	CodeInvalidIntensity   = "INVALID_INTENSITY"
	CodeInvalidOnset       = "INVALID_ONSET"
	CodeInvalidTimestamp   = "INVALID_TIMESTAMP"
	CodeInvalidZoneID      = "INVALID_ZONE_ID"
	CodeUnknownZone        = "UNKNOWN_ZONE"
	CodeSelectionRequired  = "SELECTION_REQUIRED"
	CodeComplaintRequired  = "COMPLAINT_REQUIRED"
	CodeRosterUnavailable  = "ROSTER_UNAVAILABLE"
	CodeAuditWriteFailure  = "AUDIT_WRITE_FAILURE"
)

// Error is a coded validation or data error. Field names the offending input
// field when the error is field-level, otherwise it is empty.
type Error struct {
	Code      string `json:"code"`
	Field     string `json:"field,omitempty"`
	MessageEN string `json:"message_en"`
	MessageAR string `json:"message_ar"`
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (%s): %s", e.Code, e.Field, e.MessageEN)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.MessageEN)
}

// Is reports whether target is a *Error with the same code, so callers can
// match with errors.Is against a sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// New builds a coded error. The two messages must say the same thing.
func New(code, field, en, ar string) *Error {
	return &Error{Code: code, Field: field, MessageEN: en, MessageAR: ar}
}

// Sentinels for errors.Is matching. Messages on a sentinel are generic; the
// validators return more specific instances carrying the same code.
var (
	ErrInvalidIntensity = New(CodeInvalidIntensity, "intensity",
		"pain intensity must be a whole number between 1 and 10",
		"يجب أن تكون شدة الألم رقمًا صحيحًا بين 1 و 10")
	ErrInvalidOnset = New(CodeInvalidOnset, "onset",
		"onset must be either sudden or gradual",
		"يجب أن تكون بداية الأعراض إما مفاجئة أو تدريجية")
	ErrInvalidTimestamp = New(CodeInvalidTimestamp, "timestamp",
		"selection timestamp is missing or not a valid point in time",
		"طابع الوقت للاختيار مفقود أو غير صالح")
	ErrInvalidZoneID = New(CodeInvalidZoneID, "zone_id",
		"selected body zone does not exist",
		"منطقة الجسم المختارة غير موجودة")
	ErrUnknownZone = New(CodeUnknownZone, "",
		"requested body zone is not defined in the registry",
		"منطقة الجسم المطلوبة غير معرفة في السجل")
	ErrSelectionRequired = New(CodeSelectionRequired, "selections",
		"at least one body selection is required",
		"مطلوب اختيار منطقة واحدة على الأقل من الجسم")
	ErrComplaintRequired = New(CodeComplaintRequired, "primary_complaint",
		"a primary complaint description is required",
		"وصف الشكوى الرئيسية مطلوب")
	ErrRosterUnavailable = New(CodeRosterUnavailable, "",
		"provider directory is unavailable; no recommendation can be made",
		"دليل مقدمي الرعاية غير متاح؛ لا يمكن تقديم توصية")
)
