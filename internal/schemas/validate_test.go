package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Verdict(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{"complete", `{"verdict": "Yes", "missing_points": [], "incorrect_points": [], "score": 9}`, false},
		{"only required keys", `{"verdict": "No", "score": 0}`, false},
		{"fractional score", `{"verdict": "Partially", "score": 6.5}`, false},
		{"unknown verdict", `{"verdict": "Maybe", "score": 5}`, true},
		{"score above range", `{"verdict": "Yes", "score": 11}`, true},
		{"negative score", `{"verdict": "Yes", "score": -1}`, true},
		{"score as string", `{"verdict": "Yes", "score": "8"}`, true},
		{"missing score", `{"verdict": "Yes"}`, true},
		{"points not strings", `{"verdict": "No", "score": 2, "missing_points": [1, 2]}`, true},
		{"not an object", `[1, 2, 3]`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(VerdictSchema, tt.doc)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_ReportsFieldErrors(t *testing.T) {
	err := Validate(VerdictSchema, `{"verdict": "Maybe", "score": 42}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.GreaterOrEqual(t, len(validationErr.Errors), 2)
	assert.Contains(t, validationErr.Error(), "score")
}

func TestValidate_MalformedDocument(t *testing.T) {
	err := Validate(VerdictSchema, `{"verdict": "Yes", `)
	require.Error(t, err)

	var docErr *DocumentError
	assert.ErrorAs(t, err, &docErr)
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("missing.schema.json", `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidate_EvaluationRecord(t *testing.T) {
	valid := `{"relevance_score": 3.33, "confidence_score": 6, "star_score": 2,
		"correctness_score": 5, "readiness_score": 4.95, "feedback": ["Answer is too brief."]}`
	assert.NoError(t, Validate(EvaluationRecordSchema, valid))

	outOfRange := `{"relevance_score": 3.33, "confidence_score": 6, "star_score": 7,
		"correctness_score": 5, "readiness_score": 4.95, "feedback": ["x"]}`
	assert.Error(t, Validate(EvaluationRecordSchema, outOfRange))

	noFeedback := `{"relevance_score": 0, "confidence_score": 5, "star_score": 0,
		"correctness_score": 5, "readiness_score": 3.5, "feedback": []}`
	assert.Error(t, Validate(EvaluationRecordSchema, noFeedback))
}
