package catalog

import "fmt"

type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warning"
)

const (
	codeDuplicateID    = "duplicate_id"
	codeInvalidID      = "invalid_id"
	codeMissingName    = "missing_name"
	codeNoTypes        = "no_types"
	codeUnknownType    = "unknown_type"
	codeMissingSprite  = "missing_sprite"
	codeNegativeHeight = "negative_height"
	codeNegativeWeight = "negative_weight"
)

// KnownTypes is the reference type vocabulary. Records carrying a type
// outside this list are reported as warnings, not rejected: unknown
// types render generically.
var KnownTypes = []string{
	"normal", "fire", "water", "electric", "grass", "ice",
	"fighting", "poison", "ground", "flying", "psychic", "bug",
	"rock", "ghost", "dragon", "dark", "steel", "fairy", "stellar",
}

type Issue struct {
	Severity Severity
	Code     string
	Message  string
	RecordID int
	Name     string
}

type Report struct {
	Issues []Issue
}

// Errors reports whether the report contains error-severity issues.
func (r *Report) Errors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Validate runs consistency checks over the full record set: id
// validity and uniqueness, required names, and vocabulary warnings.
func Validate(records []Record) *Report {
	known := make(map[string]struct{}, len(KnownTypes))
	for _, t := range KnownTypes {
		known[t] = struct{}{}
	}

	issues := make([]Issue, 0)
	seen := make(map[int]struct{}, len(records))

	for _, r := range records {
		if r.ID <= 0 {
			issues = append(issues, issue(r, SeverityError, codeInvalidID, "id must be positive"))
		} else if _, dup := seen[r.ID]; dup {
			issues = append(issues, issue(r, SeverityError, codeDuplicateID, "id is not unique"))
		} else {
			seen[r.ID] = struct{}{}
		}

		if r.Name == "" {
			issues = append(issues, issue(r, SeverityError, codeMissingName, "name is empty"))
		}
		if len(r.Types) == 0 {
			issues = append(issues, issue(r, SeverityWarn, codeNoTypes, "record has no types"))
		}
		for _, t := range r.Types {
			if _, ok := known[t]; !ok {
				issues = append(issues, issue(r, SeverityWarn, codeUnknownType, fmt.Sprintf("unknown type %q", t)))
			}
		}
		if r.Sprite == "" {
			issues = append(issues, issue(r, SeverityWarn, codeMissingSprite, "record has no sprite"))
		}
		if r.Height != nil && *r.Height < 0 {
			issues = append(issues, issue(r, SeverityError, codeNegativeHeight, "height is negative"))
		}
		if r.Weight != nil && *r.Weight < 0 {
			issues = append(issues, issue(r, SeverityError, codeNegativeWeight, "weight is negative"))
		}
	}

	return &Report{Issues: issues}
}

func issue(r Record, severity Severity, code, message string) Issue {
	return Issue{
		Severity: severity,
		Code:     code,
		Message:  message,
		RecordID: r.ID,
		Name:     r.Name,
	}
}
