package worker

import (
	"context"
	"time"

	"github.com/contractify/contractify-backend/entity"
	infraPkg "github.com/contractify/contractify-backend/infra"
	"github.com/contractify/contractify-backend/repository"
)

const reminderLockKey = "notifications:reminders:lock"

// ReminderDispatcher publishes reminder emails for scheduled reminders that
// have come due. Same single-flight shape as the job watchdog: a redis SetNX
// lock elects one sweeper per interval, the sent_at guard on each reminder
// covers the rest.
type ReminderDispatcher struct {
	infra      *infraPkg.Infra
	repository *repository.Repository
	interval   time.Duration
}

func NewReminderDispatcher(infra *infraPkg.Infra, repo *repository.Repository, interval time.Duration) *ReminderDispatcher {
	return &ReminderDispatcher{
		infra:      infra,
		repository: repo,
		interval:   interval,
	}
}

func (d *ReminderDispatcher) Start(ctx context.Context) {
	d.infra.Logger.InfoWithContextf(ctx, "[Reminder] Started, dispatching every %s", d.interval)

	go func() {
		ticker := time.NewTicker(d.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				d.infra.Logger.InfoWithContextf(ctx, "[Reminder] Shutting down...")
				return
			case <-ticker.C:
				d.sweep(ctx)
			}
		}
	}()
}

func (d *ReminderDispatcher) sweep(ctx context.Context) {
	acquired, err := d.infra.Redis.SetNX(ctx, reminderLockKey, time.Now().Unix(), d.interval)
	if err != nil {
		d.infra.Logger.WarningWithContextf(ctx, "[Reminder] Failed to acquire sweep lock: %v", err)
		return
	}
	if !acquired {
		return
	}

	due, err := d.repository.InvitationRepo.FindDueReminders(time.Now().UTC())
	if err != nil {
		d.infra.Logger.ErrorWithContextf(ctx, err, "[Reminder] Failed to load due reminders: %v", err)
		return
	}

	for _, reminder := range due {
		d.dispatch(ctx, reminder)
	}
}

func (d *ReminderDispatcher) dispatch(ctx context.Context, reminder entity.Reminder) {
	claimed, err := d.repository.InvitationRepo.MarkReminderSent(reminder.ID)
	if err != nil {
		d.infra.Logger.ErrorWithContextf(ctx, err, "[Reminder] Failed to claim reminder %s: %v", reminder.ID, err)
		return
	}
	if !claimed {
		return
	}

	contract, err := d.repository.ContractRepo.FindByID(reminder.ContractID)
	if err != nil {
		d.infra.Logger.ErrorWithContextf(ctx, err, "[Reminder] Contract %s gone for reminder %s: %v", reminder.ContractID, reminder.ID, err)
		return
	}
	if contract.Status != entity.ContractStatusSigning {
		d.infra.Logger.InfoWithContextf(ctx, "[Reminder] Contract %s is %s, skipping reminder %s", contract.ID, contract.Status, reminder.ID)
		return
	}

	parties, err := d.repository.PartyRepo.FindByContractID(reminder.ContractID)
	if err != nil {
		d.infra.Logger.ErrorWithContextf(ctx, err, "[Reminder] Failed to load parties for %s: %v", reminder.ContractID, err)
		return
	}

	content := reminder.Message
	if content == "" {
		content = "Reminder: \"" + contract.Title + "\" is awaiting your signature."
	}

	sent := 0
	for _, party := range parties {
		if party.SignatureStatus == entity.PartySignatureSigned {
			continue
		}
		if err := d.infra.Produce.EmailService.SendReminder(ctx, party.Email, party.Name, content); err != nil {
			d.infra.Logger.ErrorWithContextf(ctx, err, "[Reminder] Failed to publish reminder to %s: %v", party.Email, err)
			continue
		}
		sent++
	}

	d.infra.Logger.InfoWithContextf(ctx, "[Reminder] Dispatched reminder %s for contract %s to %d parties", reminder.ID, contract.ID, sent)
}
