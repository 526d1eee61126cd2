package produce

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const EmailExchange = "email_exchange"

// EmailMessage is consumed by the external mail delivery service.
type EmailMessage struct {
	Type          string `json:"type"`
	Recipient     string `json:"recipient"`
	RecipientName string `json:"recipientName,omitempty"`
	Subject       string `json:"subject,omitempty"`
	Content       string `json:"content"`
	ActionUrl     string `json:"actionUrl,omitempty"`
}

type EmailService struct {
	channel *amqp.Channel
}

func InitEmailService(channel *amqp.Channel) *EmailService {
	err := channel.ExchangeDeclare(
		EmailExchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		panic("Failed to declare Email exchange: " + err.Error())
	}

	return &EmailService{channel: channel}
}

// SendInvitation publishes a signing invitation email.
func (s *EmailService) SendInvitation(ctx context.Context, email, recipientName, content, actionUrl string) error {
	message := EmailMessage{
		Type:          "invitation",
		Recipient:     email,
		RecipientName: recipientName,
		Subject:       "You have been invited to sign a contract",
		Content:       content,
		ActionUrl:     actionUrl,
	}
	return s.publishEmail(ctx, "email.invitation", message)
}

// SendReminder publishes a signing reminder email.
func (s *EmailService) SendReminder(ctx context.Context, email, recipientName, content string) error {
	message := EmailMessage{
		Type:          "reminder",
		Recipient:     email,
		RecipientName: recipientName,
		Subject:       "Reminder: contract pending signature",
		Content:       content,
	}
	return s.publishEmail(ctx, "email.reminder", message)
}

func (s *EmailService) publishEmail(ctx context.Context, routingKey string, message EmailMessage) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal email message: %w", err)
	}

	err = s.channel.PublishWithContext(
		ctx,
		EmailExchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish email message: %w", err)
	}

	return nil
}
