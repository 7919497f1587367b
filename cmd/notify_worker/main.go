package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/videotube/backend/config"
	pginfra "github.com/videotube/backend/internal/infrastructure/postgres"
	"github.com/videotube/backend/pkg/helpers"
	"github.com/videotube/backend/pkg/mailer"
	"github.com/videotube/backend/pkg/notify"
)

// Worker draining the notification queue: resolves recipients from the
// datastore and sends emails through Mailgun. The API publishes jobs
// fire-and-forget; delivery retries happen here via message requeue.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-notify", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	subs := pginfra.NewSubscriptionRepository(pool)
	users := pginfra.NewUserRepository(pool)
	mg := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("failed to connect to rabbitmq: %v", err)
	}
	defer func() { _ = conn.Close() }()
	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("failed to open channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(cfg.RabbitMQNotifyQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("failed to declare queue: %v", err)
	}
	if err := ch.Qos(10, 0, false); err != nil {
		log.Fatalf("failed to set qos: %v", err)
	}

	deliveries, err := ch.Consume(cfg.RabbitMQNotifyQueue, "notify-worker", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("failed to consume: %v", err)
	}

	w := &worker{subs: subs, users: users, mail: mg, logger: logger, sendEnabled: cfg.NotifySendEnabled}

	logger.Infof("notify worker consuming from %q", cfg.RabbitMQNotifyQueue)
	for {
		select {
		case <-ctx.Done():
			logger.Info("notify worker shutting down")
			return
		case d, ok := <-deliveries:
			if !ok {
				logger.Warn("delivery channel closed")
				return
			}
			if err := w.handle(ctx, d.Body); err != nil {
				logger.WithError(err).Warn("job failed, requeueing")
				_ = d.Nack(false, true)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

type worker struct {
	subs        *pginfra.SubscriptionRepository
	users       *pginfra.UserRepository
	mail        *mailer.Mailgun
	logger      *logrus.Logger
	sendEnabled bool
}

func (w *worker) handle(ctx context.Context, body []byte) error {
	var job notify.Job
	if err := json.Unmarshal(body, &job); err != nil {
		// Poison message; do not requeue forever.
		w.logger.WithError(err).Error("undecodable job dropped")
		return nil
	}

	switch job.Type {
	case notify.VideoPublished:
		return w.videoPublished(ctx, job)
	case notify.NewSubscriber:
		return w.newSubscriber(ctx, job)
	default:
		w.logger.WithField("type", job.Type).Warn("unknown job type dropped")
		return nil
	}
}

func (w *worker) videoPublished(ctx context.Context, job notify.Job) error {
	emails, err := w.subs.SubscriberEmails(ctx, job.ChannelID)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("%s uploaded a new video", job.ChannelName)
	text := fmt.Sprintf("%s just published %q. Check it out!", job.ChannelName, job.VideoTitle)
	for _, to := range emails {
		if err := w.send(ctx, to, subject, text); err != nil {
			w.logger.WithError(err).WithField("to", to).Warn("email send failed")
		}
	}
	w.logger.WithFields(logrus.Fields{"video_id": job.VideoID, "recipients": len(emails)}).Info("upload notifications sent")
	return nil
}

func (w *worker) newSubscriber(ctx context.Context, job notify.Job) error {
	owner, err := w.users.GetByID(ctx, job.ChannelID)
	if err != nil {
		return err
	}
	subscriber, err := w.users.GetByID(ctx, job.SubscriberID)
	if err != nil {
		return err
	}
	subject := "You have a new subscriber"
	text := fmt.Sprintf("%s subscribed to your channel.", subscriber.Username)
	if err := w.send(ctx, owner.Email, subject, text); err != nil {
		w.logger.WithError(err).WithField("to", owner.Email).Warn("email send failed")
	}
	return nil
}

func (w *worker) send(ctx context.Context, to, subject, text string) error {
	if !w.sendEnabled {
		w.logger.WithField("to", to).Debug("sending disabled, skipping email")
		return nil
	}
	return w.mail.Send(ctx, to, subject, text, "")
}
