package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/contractify/contractify-backend/entity"
	infraPkg "github.com/contractify/contractify-backend/infra"
	"github.com/contractify/contractify-backend/infra/produce"
	"github.com/contractify/contractify-backend/repository"
	"github.com/contractify/contractify-backend/utils"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

type PDFConsumer struct {
	channel    *amqp.Channel
	infra      *infraPkg.Infra
	repository *repository.Repository
}

func NewPDFConsumer(channel *amqp.Channel, infra *infraPkg.Infra, repo *repository.Repository) *PDFConsumer {
	return &PDFConsumer{
		channel:    channel,
		infra:      infra,
		repository: repo,
	}
}

func (c *PDFConsumer) Start(ctx context.Context) error {
	if err := c.infra.Minio.EnsureDocumentBucket(ctx); err != nil {
		return fmt.Errorf("failed to ensure document bucket: %w", err)
	}

	msgs, err := c.channel.Consume(
		produce.PDFGenerateQueue,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register PDF generate consumer: %w", err)
	}

	c.infra.Logger.InfoWithContextf(ctx, "[PDF Consumer] Started listening for rendering jobs on queue: %s", produce.PDFGenerateQueue)

	go func() {
		for {
			select {
			case <-ctx.Done():
				c.infra.Logger.InfoWithContextf(ctx, "[PDF Consumer] Shutting down...")
				return
			case msg, ok := <-msgs:
				if !ok {
					c.infra.Logger.WarningWithContextf(ctx, "[PDF Consumer] Channel closed")
					return
				}
				c.handleGenerate(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *PDFConsumer) handleGenerate(ctx context.Context, msg amqp.Delivery) {
	var payload produce.PDFGenerateMessage
	if err := json.Unmarshal(msg.Body, &payload); err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[PDF Consumer] Failed to unmarshal message: %v", err)
		_ = msg.Nack(false, false)
		return
	}

	jobID, err := uuid.Parse(payload.JobID)
	if err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[PDF Consumer] Invalid job ID %q: %v", payload.JobID, err)
		_ = msg.Nack(false, false)
		return
	}

	started, err := c.repository.JobRepo.MarkRunning(jobID)
	if err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[PDF Consumer] Failed to start job %s: %v", jobID, err)
		_ = msg.Nack(false, true)
		return
	}
	if !started {
		c.infra.Logger.WarningWithContextf(ctx, "[PDF Consumer] Job %s is not PENDING, skipping", jobID)
		_ = msg.Ack(false)
		return
	}

	maxRetries := 3
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = c.executeGenerate(ctx, jobID, &payload)
		if err == nil {
			c.infra.Logger.InfoWithContextf(ctx, "[PDF Consumer] Job %s completed", jobID)
			_ = msg.Ack(false)
			return
		}

		c.infra.Logger.ErrorWithContextf(ctx, err, "[PDF Consumer] Attempt %d/%d for job %s failed: %v", attempt, maxRetries, jobID, err)

		if attempt < maxRetries {
			time.Sleep(time.Duration(attempt) * 2 * time.Second)
		}
	}

	if _, markErr := c.repository.JobRepo.MarkFailed(jobID, err.Error()); markErr != nil {
		c.infra.Logger.ErrorWithContextf(ctx, markErr, "[PDF Consumer] Failed to mark job %s failed: %v", jobID, markErr)
	}
	_ = msg.Nack(false, false)
}

func (c *PDFConsumer) executeGenerate(ctx context.Context, jobID uuid.UUID, payload *produce.PDFGenerateMessage) error {
	contractID, err := uuid.Parse(payload.ContractID)
	if err != nil {
		return fmt.Errorf("invalid contract ID %q: %w", payload.ContractID, err)
	}

	contract, err := c.repository.ContractRepo.FindByID(contractID)
	if err != nil {
		return fmt.Errorf("failed to load contract %s: %w", contractID, err)
	}

	version, err := c.repository.VersionRepo.FindLatest(contractID)
	if err != nil {
		return fmt.Errorf("contract %s has no content to render: %w", contractID, err)
	}

	lines := []string{contract.Title, ""}
	lines = append(lines, contentLines(version.Content)...)

	if payload.IncludeAuditPage {
		logs, err := c.repository.ActivityRepo.FindByContractID(contractID)
		if err != nil {
			return fmt.Errorf("failed to load audit trail: %w", err)
		}
		lines = append(lines, "", "--- Audit Trail ---")
		for _, entry := range logs {
			lines = append(lines, fmt.Sprintf("%s  %s  %s",
				entry.Timestamp.UTC().Format("2006-01-02 15:04:05"), entry.Action, entry.UserName))
		}
	}

	pdf := renderPDF(lines)
	hash := utils.HashDocument(pdf)
	objectKey := fmt.Sprintf("%s/%s.pdf", contractID, hash[:16])

	if err := c.infra.Minio.PutDocument(ctx, objectKey, pdf); err != nil {
		return err
	}

	document := &entity.Document{
		ID:         uuid.New(),
		ContractID: contractID,
		ObjectKey:  objectKey,
		Hash:       hash,
		SizeBytes:  int64(len(pdf)),
		CreatedBy:  payload.UserID,
	}
	if err := c.repository.DocumentRepo.Create(document); err != nil {
		return fmt.Errorf("failed to store document record: %w", err)
	}

	resultJSON, err := json.Marshal(map[string]any{
		"documentId":   document.ID,
		"documentHash": hash,
		"downloadUrl":  "/api/documents/" + document.ID.String() + "/download",
	})
	if err != nil {
		return fmt.Errorf("failed to marshal job result: %w", err)
	}

	advanced, err := c.repository.JobRepo.MarkSucceeded(jobID, resultJSON)
	if err != nil {
		return fmt.Errorf("failed to mark job succeeded: %w", err)
	}
	if !advanced {
		c.infra.Logger.WarningWithContextf(ctx, "[PDF Consumer] Job %s was no longer RUNNING, result discarded", jobID)
	}

	return nil
}

var htmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// contentLines flattens template HTML into plain text lines for the renderer.
func contentLines(content string) []string {
	text := htmlTagPattern.ReplaceAllString(content, "")
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// renderPDF produces a minimal single-font PDF document from text lines. The
// layout is intentionally plain; pagination happens every 54 lines on Letter.
func renderPDF(lines []string) []byte {
	const linesPerPage = 54

	var pages [][]string
	for start := 0; start < len(lines); start += linesPerPage {
		end := start + linesPerPage
		if end > len(lines) {
			end = len(lines)
		}
		pages = append(pages, lines[start:end])
	}
	if len(pages) == 0 {
		pages = [][]string{{""}}
	}

	// Object layout: 1 catalog, 2 page tree, 3 font, then per page one page
	// object and one content stream.
	var objects []string
	pageRefs := make([]string, 0, len(pages))
	nextID := 4
	for range pages {
		pageRefs = append(pageRefs, fmt.Sprintf("%d 0 R", nextID))
		nextID += 2
	}

	objects = append(objects,
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(pageRefs, " "), len(pages)),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	)

	nextID = 4
	for _, pageLines := range pages {
		var content bytes.Buffer
		content.WriteString("BT /F1 11 Tf 50 742 Td 13 TL\n")
		for _, line := range pageLines {
			content.WriteString("(" + escapePDFText(line) + ") Tj T*\n")
		}
		content.WriteString("ET")

		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", nextID+1),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", content.Len(), content.String()),
		)
		nextID += 2
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, offset := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offset)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefOffset)

	return buf.Bytes()
}

func escapePDFText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "(", `\(`)
	s = strings.ReplaceAll(s, ")", `\)`)
	return s
}
