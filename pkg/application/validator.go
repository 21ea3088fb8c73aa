package application

import (
	"strings"

	"github.com/aazdagabde/smart-hire/pkg/apperr"
	"github.com/aazdagabde/smart-hire/pkg/offer"
)

// checkbox selections are stored as one delimited string; options themselves
// are validated semicolon-free on the schema side.
const checkboxSeparator = ";"

// SplitCheckboxValue разворачивает каноничное значение CHECKBOX обратно в список.
func SplitCheckboxValue(v string) []string {
	if v == "" {
		return nil
	}
	return strings.Split(v, checkboxSeparator)
}

// ValidateSubmission проверяет ответы кандидата против схемы оффера и строит
// каноничный список ответов: по одной записи на отвеченный вопрос, в порядке
// схемы. Запускается один раз при подаче; при чтении не перепроверяется.
//
// Резюме обязательно всегда, независимо от схемы. Для обязательных вопросов
// ответ должен присутствовать; для CHECKBOX — хотя бы один выбранный вариант.
// Необязательные вопросы без ответа допустимы. Ответы на неизвестные вопросы
// отбрасываются.
func ValidateSubmission(schema []offer.CustomField, submitted []SubmittedAnswer, hasResume bool) ([]Answer, error) {
	if !hasResume {
		return nil, apperr.Validation("резюме обязательно", map[string]string{"cv": "файл резюме не приложен"})
	}

	byField := make(map[string]SubmittedAnswer, len(submitted))
	for _, a := range submitted {
		byField[a.FieldID.String()] = a
	}

	problems := map[string]string{}
	var canonical []Answer
	for _, f := range schema {
		a, ok := byField[f.ID.String()]
		value := ""
		if ok {
			if f.Type == offer.FieldCheckbox {
				var picked []string
				for _, opt := range a.Selected {
					if v := strings.TrimSpace(opt); v != "" {
						picked = append(picked, v)
					}
				}
				value = strings.Join(picked, checkboxSeparator)
			} else {
				value = strings.TrimSpace(a.Value)
			}
		}
		if value == "" {
			if f.Required {
				if f.Type == offer.FieldCheckbox {
					problems[f.Label] = "выберите хотя бы один вариант"
				} else {
					problems[f.Label] = "обязательный вопрос без ответа"
				}
			}
			continue
		}
		canonical = append(canonical, Answer{FieldID: f.ID, Value: value})
	}
	if len(problems) > 0 {
		return nil, apperr.Validation("не все обязательные вопросы отвечены", problems)
	}
	return canonical, nil
}
