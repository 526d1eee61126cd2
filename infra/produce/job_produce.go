package produce

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	JobExchange = "jobs.exchange"

	AIGenerateQueue      = "jobs.ai_generate"
	AIGenerateRoutingKey = "jobs.ai_generate"

	PDFGenerateQueue      = "jobs.pdf_generate"
	PDFGenerateRoutingKey = "jobs.pdf_generate"
)

// AIGenerateMessage dispatches an AI generation job to the consumer.
type AIGenerateMessage struct {
	JobID        string         `json:"job_id"`
	ContractID   string         `json:"contract_id,omitempty"`
	TemplateID   string         `json:"template_id,omitempty"`
	ContractType string         `json:"contract_type"`
	Jurisdiction string         `json:"jurisdiction,omitempty"`
	Inputs       map[string]any `json:"inputs"`
	UserID       string         `json:"user_id"`
	UserName     string         `json:"user_name,omitempty"`
	Timestamp    int64          `json:"timestamp"`
}

// PDFGenerateMessage dispatches a PDF rendering job to the consumer.
type PDFGenerateMessage struct {
	JobID            string `json:"job_id"`
	ContractID       string `json:"contract_id"`
	IncludeAuditPage bool   `json:"include_audit_page"`
	UserID           string `json:"user_id"`
	Timestamp        int64  `json:"timestamp"`
}

// JobService publishes job dispatch messages for the consumer workers.
type JobService struct {
	channel *amqp.Channel
}

func InitJobService(channel *amqp.Channel) *JobService {
	service := &JobService{channel: channel}

	err := channel.ExchangeDeclare(
		JobExchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		panic("Failed to declare Job exchange: " + err.Error())
	}

	for queue, key := range map[string]string{
		AIGenerateQueue:  AIGenerateRoutingKey,
		PDFGenerateQueue: PDFGenerateRoutingKey,
	} {
		_, err = channel.QueueDeclare(
			queue,
			true,  // durable
			false, // auto-delete
			false, // exclusive
			false, // no-wait
			nil,
		)
		if err != nil {
			panic("Failed to declare queue " + queue + ": " + err.Error())
		}

		err = channel.QueueBind(queue, key, JobExchange, false, nil)
		if err != nil {
			panic("Failed to bind queue " + queue + ": " + err.Error())
		}
	}

	return service
}

func (s *JobService) PublishAIGenerate(ctx context.Context, msg AIGenerateMessage) error {
	msg.Timestamp = time.Now().Unix()
	return s.publish(ctx, AIGenerateRoutingKey, msg)
}

func (s *JobService) PublishPDFGenerate(ctx context.Context, msg PDFGenerateMessage) error {
	msg.Timestamp = time.Now().Unix()
	return s.publish(ctx, PDFGenerateRoutingKey, msg)
}

func (s *JobService) publish(ctx context.Context, routingKey string, message any) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal job message: %w", err)
	}

	err = s.channel.PublishWithContext(
		ctx,
		JobExchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish job message: %w", err)
	}

	return nil
}
