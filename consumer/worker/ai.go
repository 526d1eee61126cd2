package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/contractify/contractify-backend/entity"
	"github.com/contractify/contractify-backend/generator"
	infraPkg "github.com/contractify/contractify-backend/infra"
	"github.com/contractify/contractify-backend/infra/produce"
	"github.com/contractify/contractify-backend/repository"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

type AIConsumer struct {
	channel    *amqp.Channel
	infra      *infraPkg.Infra
	repository *repository.Repository
	cacheTTL   time.Duration
}

// permanentError marks a failure retrying cannot fix; the retry loop fails
// the job on first sight instead of re-running the attempt.
type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

func permanentf(format string, args ...any) error {
	return &permanentError{err: fmt.Errorf(format, args...)}
}

func isPermanent(err error) bool {
	var pe *permanentError
	return errors.As(err, &pe)
}

// contractAcceptsContent rejects generated content for contracts whose
// lifecycle has ended.
func contractAcceptsContent(contract *entity.Contract) error {
	if entity.IsTerminal(contract.Status) {
		return permanentf("contract %s is %s and no longer accepts content", contract.ID, contract.Status)
	}
	return nil
}

// aiGeneration carries the work already done across retry attempts so a
// failure late in one attempt does not repeat the side effects of the earlier
// steps: the content is generated once and the contract gets at most one new
// version and one transition per job.
type aiGeneration struct {
	content      string
	metadata     generator.Metadata
	cached       bool
	generated    bool
	version      *entity.ContractVersion
	transitioned bool
}

func (gen *aiGeneration) result() map[string]any {
	out := map[string]any{
		"content":  gen.content,
		"metadata": gen.metadata,
		"cached":   gen.cached,
	}
	if gen.version != nil {
		out["contractId"] = gen.version.ContractID
		out["version"] = gen.version.Version
	}
	return out
}

func NewAIConsumer(channel *amqp.Channel, infra *infraPkg.Infra, repo *repository.Repository, cacheTTL time.Duration) *AIConsumer {
	return &AIConsumer{
		channel:    channel,
		infra:      infra,
		repository: repo,
		cacheTTL:   cacheTTL,
	}
}

func (c *AIConsumer) Start(ctx context.Context) error {
	msgs, err := c.channel.Consume(
		produce.AIGenerateQueue,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register AI generate consumer: %w", err)
	}

	c.infra.Logger.InfoWithContextf(ctx, "[AI Consumer] Started listening for generation jobs on queue: %s", produce.AIGenerateQueue)

	go func() {
		for {
			select {
			case <-ctx.Done():
				c.infra.Logger.InfoWithContextf(ctx, "[AI Consumer] Shutting down...")
				return
			case msg, ok := <-msgs:
				if !ok {
					c.infra.Logger.WarningWithContextf(ctx, "[AI Consumer] Channel closed")
					return
				}
				c.handleGenerate(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *AIConsumer) handleGenerate(ctx context.Context, msg amqp.Delivery) {
	var payload produce.AIGenerateMessage
	if err := json.Unmarshal(msg.Body, &payload); err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[AI Consumer] Failed to unmarshal message: %v", err)
		_ = msg.Nack(false, false)
		return
	}

	jobID, err := uuid.Parse(payload.JobID)
	if err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[AI Consumer] Invalid job ID %q: %v", payload.JobID, err)
		_ = msg.Nack(false, false)
		return
	}

	// The PENDING guard means a redelivered message for a job some other
	// worker already picked up is simply dropped.
	started, err := c.repository.JobRepo.MarkRunning(jobID)
	if err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[AI Consumer] Failed to start job %s: %v", jobID, err)
		_ = msg.Nack(false, true)
		return
	}
	if !started {
		c.infra.Logger.WarningWithContextf(ctx, "[AI Consumer] Job %s is not PENDING, skipping", jobID)
		_ = msg.Ack(false)
		return
	}

	gen := &aiGeneration{}
	maxRetries := 3
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = c.executeGenerate(ctx, jobID, &payload, gen)
		if err == nil {
			c.infra.Logger.InfoWithContextf(ctx, "[AI Consumer] Job %s completed", jobID)
			_ = msg.Ack(false)
			return
		}

		c.infra.Logger.ErrorWithContextf(ctx, err, "[AI Consumer] Attempt %d/%d for job %s failed: %v", attempt, maxRetries, jobID, err)

		if isPermanent(err) {
			break
		}
		if attempt < maxRetries {
			time.Sleep(time.Duration(attempt) * 2 * time.Second)
		}
	}

	if _, markErr := c.repository.JobRepo.MarkFailed(jobID, err.Error()); markErr != nil {
		c.infra.Logger.ErrorWithContextf(ctx, markErr, "[AI Consumer] Failed to mark job %s failed: %v", jobID, markErr)
	}
	_ = msg.Nack(false, false)
}

func (c *AIConsumer) executeGenerate(ctx context.Context, jobID uuid.UUID, payload *produce.AIGenerateMessage, gen *aiGeneration) error {
	type generation struct {
		Content  string             `json:"content"`
		Metadata generator.Metadata `json:"metadata"`
	}

	if !gen.generated {
		cacheKey := "ai:generation:" + generator.CacheKey(payload.ContractType, payload.Inputs)
		var result generation
		gen.cached = true
		if err := c.infra.Redis.Get(ctx, cacheKey, &result); err != nil {
			if err != infraPkg.ErrCacheMiss {
				c.infra.Logger.WarningWithContextf(ctx, "[AI Consumer] Cache lookup failed for %s: %v", cacheKey, err)
			}
			gen.cached = false
			result.Content, result.Metadata = generator.Generate(payload.ContractType, payload.Inputs)
			if err := c.infra.Redis.Set(ctx, cacheKey, result, c.cacheTTL); err != nil {
				c.infra.Logger.WarningWithContextf(ctx, "[AI Consumer] Failed to cache generation %s: %v", cacheKey, err)
			}
		}
		gen.content = result.Content
		gen.metadata = result.Metadata
		gen.generated = true
	}

	if payload.ContractID != "" {
		contractID, err := uuid.Parse(payload.ContractID)
		if err != nil {
			return permanentf("invalid contract ID %q: %v", payload.ContractID, err)
		}

		contract, err := c.repository.ContractRepo.FindByID(contractID)
		if err != nil {
			return fmt.Errorf("failed to load contract %s: %w", contractID, err)
		}
		if err := contractAcceptsContent(contract); err != nil {
			return err
		}

		if gen.version == nil {
			version, err := c.repository.VersionRepo.CreateNext(contractID, gen.content, entity.VersionSourceAI, payload.UserID)
			if err != nil {
				return fmt.Errorf("failed to store generated version: %w", err)
			}
			gen.version = version
		}

		if !gen.transitioned && (contract.Status == entity.ContractStatusDraft || contract.Status == entity.ContractStatusGenerated) {
			if _, err := c.repository.ContractRepo.ApplyTransition(contract, entity.ContractStatusGenerated,
				payload.UserID, payload.UserName, ""); err != nil {
				return fmt.Errorf("failed to move contract %s to GENERATED: %w", contractID, err)
			}
			gen.transitioned = true
		}
	}

	resultJSON, err := json.Marshal(gen.result())
	if err != nil {
		return fmt.Errorf("failed to marshal job result: %w", err)
	}

	advanced, err := c.repository.JobRepo.MarkSucceeded(jobID, resultJSON)
	if err != nil {
		return fmt.Errorf("failed to mark job succeeded: %w", err)
	}
	if !advanced {
		// Watchdog failed the job while we were working; the result is
		// discarded rather than resurrecting a terminal job.
		c.infra.Logger.WarningWithContextf(ctx, "[AI Consumer] Job %s was no longer RUNNING, result discarded", jobID)
	}

	return nil
}
