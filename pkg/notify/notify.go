package notify

import "context"

// TemplateType выбирает шаблон исходящего сообщения кандидату.
type TemplateType string

const (
	TemplateInterview TemplateType = "interview_invitation"
	TemplateAccept    TemplateType = "offer_acceptance"
	TemplateStatus    TemplateType = "status_update"
)

// Message is a single outreach payload addressed to one applicant.
type Message struct {
	RecipientEmail string
	RecipientName  string
	Template       TemplateType
	Body           string
}

// Sender — порт отправки уведомлений кандидатам. Доставка считается
// fire-and-forget: ошибка одного получателя не влияет на остальных.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
