package notify

import (
	"context"

	"go.uber.org/zap"
)

// LogSender пишет уведомления в лог вместо реальной доставки.
// Используется, когда почтовый транспорт не сконфигурирован.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender { return &LogSender{log: log} }

func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.log.Info("notification (no mail transport configured)",
		zap.String("to", msg.RecipientEmail),
		zap.String("template", string(msg.Template)),
		zap.String("body", msg.Body),
	)
	return nil
}
