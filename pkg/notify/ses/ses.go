package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/aazdagabde/smart-hire/pkg/notify"
)

var subjects = map[notify.TemplateType]string{
	notify.TemplateInterview: "Приглашение на собеседование",
	notify.TemplateAccept:    "Ваша кандидатура одобрена",
	notify.TemplateStatus:    "Обновление по вашему отклику",
}

// Sender delivers applicant notifications through Amazon SES.
type Sender struct {
	client *ses.Client
	from   string
}

func New(ctx context.Context, region, from string) (*Sender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &Sender{client: ses.NewFromConfig(cfg), from: from}, nil
}

func (s *Sender) Send(ctx context.Context, msg notify.Message) error {
	subject, ok := subjects[msg.Template]
	if !ok {
		subject = subjects[notify.TemplateStatus]
	}
	body := msg.Body
	if msg.RecipientName != "" {
		body = fmt.Sprintf("Здравствуйте, %s!\n\n%s", msg.RecipientName, msg.Body)
	}
	_, err := s.client.SendEmail(ctx, &ses.SendEmailInput{
		Source:      &s.from,
		Destination: &types.Destination{ToAddresses: []string{msg.RecipientEmail}},
		Message: &types.Message{
			Subject: &types.Content{Data: &subject},
			Body:    &types.Body{Text: &types.Content{Data: &body}},
		},
	})
	return err
}
