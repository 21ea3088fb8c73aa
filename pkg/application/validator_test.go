package application

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aazdagabde/smart-hire/pkg/apperr"
	"github.com/aazdagabde/smart-hire/pkg/offer"
)

func textField(label string, required bool) offer.CustomField {
	return offer.CustomField{ID: uuid.New(), Label: label, Type: offer.FieldText, Required: required}
}

func checkboxField(label string, required bool, options ...string) offer.CustomField {
	return offer.CustomField{ID: uuid.New(), Label: label, Type: offer.FieldCheckbox, Required: required, Options: options}
}

func TestValidateSubmissionRequiresResume(t *testing.T) {
	_, err := ValidateSubmission(nil, nil, false)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeValidation))
	assert.Contains(t, apperr.FieldsOf(err), "cv")
}

func TestValidateSubmissionRequiredAnswers(t *testing.T) {
	motivation := textField("Мотивация", true)
	stack := checkboxField("Стек", true, "Go", "Python")
	optional := textField("Портфолио", false)
	schema := []offer.CustomField{motivation, stack, optional}

	t.Run("missing required text", func(t *testing.T) {
		_, err := ValidateSubmission(schema, []SubmittedAnswer{
			{FieldID: stack.ID, Selected: []string{"Go"}},
		}, true)
		require.Error(t, err)
		fields := apperr.FieldsOf(err)
		assert.Equal(t, "обязательный вопрос без ответа", fields["Мотивация"])
		assert.NotContains(t, fields, "Портфолио")
	})

	t.Run("whitespace-only answer is missing", func(t *testing.T) {
		_, err := ValidateSubmission(schema, []SubmittedAnswer{
			{FieldID: motivation.ID, Value: "   "},
			{FieldID: stack.ID, Selected: []string{"Go"}},
		}, true)
		require.Error(t, err)
		assert.Contains(t, apperr.FieldsOf(err), "Мотивация")
	})

	t.Run("required checkbox without selection", func(t *testing.T) {
		_, err := ValidateSubmission(schema, []SubmittedAnswer{
			{FieldID: motivation.ID, Value: "хочу"},
			{FieldID: stack.ID, Selected: []string{" ", ""}},
		}, true)
		require.Error(t, err)
		assert.Equal(t, "выберите хотя бы один вариант", apperr.FieldsOf(err)["Стек"])
	})

	t.Run("optional unanswered is fine", func(t *testing.T) {
		canonical, err := ValidateSubmission(schema, []SubmittedAnswer{
			{FieldID: motivation.ID, Value: "хочу"},
			{FieldID: stack.ID, Selected: []string{"Go", "Python"}},
		}, true)
		require.NoError(t, err)
		require.Len(t, canonical, 2)
	})
}

func TestValidateSubmissionCanonicalForm(t *testing.T) {
	motivation := textField("Мотивация", true)
	stack := checkboxField("Стек", true, "Go", "Python", "Rust")
	schema := []offer.CustomField{motivation, stack}

	canonical, err := ValidateSubmission(schema, []SubmittedAnswer{
		// порядок подачи не совпадает с порядком схемы
		{FieldID: stack.ID, Selected: []string{" Go ", "Rust", ""}},
		{FieldID: motivation.ID, Value: "  интересный проект  "},
		{FieldID: uuid.New(), Value: "ответ на несуществующий вопрос"},
	}, true)
	require.NoError(t, err)
	require.Len(t, canonical, 2, "ответ на неизвестный вопрос отброшен")

	// canonical answers follow schema order
	assert.Equal(t, motivation.ID, canonical[0].FieldID)
	assert.Equal(t, "интересный проект", canonical[0].Value)
	assert.Equal(t, stack.ID, canonical[1].FieldID)
	assert.Equal(t, "Go;Rust", canonical[1].Value)
	assert.Equal(t, []string{"Go", "Rust"}, SplitCheckboxValue(canonical[1].Value))
}

func TestSplitCheckboxValueEmpty(t *testing.T) {
	assert.Nil(t, SplitCheckboxValue(""))
}
