package produce

import amqp "github.com/rabbitmq/amqp091-go"

type Produce struct {
	JobService   *JobService
	EmailService *EmailService
}

var produceInstance *Produce

func InitProduce(channel *amqp.Channel) *Produce {
	if produceInstance != nil {
		return produceInstance
	}

	jobService := InitJobService(channel)
	if jobService == nil {
		panic("Failed to initialize Job produce service")
	}

	emailService := InitEmailService(channel)
	if emailService == nil {
		panic("Failed to initialize Email produce service")
	}

	produceInstance = &Produce{
		JobService:   jobService,
		EmailService: emailService,
	}

	return produceInstance
}

func GetProduce() *Produce {
	if produceInstance == nil {
		panic("Produce not initialized. Call InitProduce() first.")
	}
	return produceInstance
}
