package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/smtp"
	"time"

	"fitcircle/internal/logger"
	"fitcircle/internal/metrics"

	"github.com/redis/go-redis/v9"
)

const (
	queueKey       = "emails"
	failedQueueKey = "emails:failed"
	maxTries       = 3
	popTimeout     = 2 * time.Second
)

// Job is one queued email.
type Job struct {
	Type    string    `json:"type"`
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

// Sender delivers a single email.
type Sender interface {
	Send(job Job) error
}

type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Pass     string
	From     string
	FromName string
}

type smtpSender struct {
	cfg SMTPConfig
}

func NewSMTPSender(cfg SMTPConfig) Sender {
	return &smtpSender{cfg: cfg}
}

func (s *smtpSender) Send(job Job) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.cfg.User != "" && s.cfg.Pass != "" {
		auth = smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	}

	return smtp.SendMail(s.cfg.Host+":"+s.cfg.Port, auth, s.cfg.From, []string{job.To}, []byte(message))
}

// Queue stores outgoing emails in a redis list and drains it through a Sender.
type Queue struct {
	redis      redis.Cmdable
	sender     Sender
	retryDelay time.Duration
	minBackoff time.Duration
	maxBackoff time.Duration
}

func NewQueue(client redis.Cmdable, sender Sender) *Queue {
	return &Queue{
		redis:      client,
		sender:     sender,
		retryDelay: 5 * time.Second,
		minBackoff: 500 * time.Millisecond,
		maxBackoff: 30 * time.Second,
	}
}

func (q *Queue) Enqueue(ctx context.Context, job Job) error {
	job.Tries = 0
	job.Created = time.Now().UTC()

	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal email job: %w", err)
	}

	if err := q.redis.LPush(ctx, queueKey, string(data)).Err(); err != nil {
		metrics.RecordEmail(job.Type, "enqueue_failed")
		return fmt.Errorf("queue email to %s: %w", job.To, err)
	}

	metrics.RecordEmail(job.Type, "queued")
	logger.Info("email queued", "type", job.Type, "to", job.To)
	return nil
}

// Run processes jobs until ctx is done. While redis is unreachable the worker
// waits between attempts, doubling the wait up to maxBackoff.
func (q *Queue) Run(ctx context.Context) {
	logger.Info("email worker started")

	var backoff time.Duration
	for {
		if ctx.Err() != nil {
			logger.Info("email worker stopped")
			return
		}

		_, err := q.processNext(ctx)
		if err == nil || ctx.Err() != nil {
			backoff = 0
			continue
		}

		backoff = nextBackoff(backoff, q.minBackoff, q.maxBackoff)
		logger.Warn("email queue unavailable", "retry_in", backoff.String(), "error", err)
		select {
		case <-ctx.Done():
		case <-time.After(backoff):
		}
	}
}

func nextBackoff(current, lo, hi time.Duration) time.Duration {
	if current < lo {
		return lo
	}
	if next := current * 2; next < hi {
		return next
	}
	return hi
}

// processNext handles at most one job. It reports whether an email went out;
// the error is set only when the queue itself could not be read.
func (q *Queue) processNext(ctx context.Context) (bool, error) {
	result, err := q.redis.BRPop(ctx, popTimeout, queueKey).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("pop email job: %w", err)
	}

	var job Job
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Error("bad email payload", "error", err)
		return false, nil
	}

	job.Tries++
	if err := q.sender.Send(job); err != nil {
		logger.Warn("email delivery failed", "to", job.To, "attempt", job.Tries, "error", err)

		if job.Tries < maxTries {
			q.requeue(ctx, job)
		} else {
			q.saveFailed(ctx, job, err)
		}
		return false, nil
	}

	metrics.RecordEmail(job.Type, "sent")
	logger.Info("email sent", "type", job.Type, "to", job.To)
	return true, nil
}

func (q *Queue) requeue(ctx context.Context, job Job) {
	if q.retryDelay > 0 {
		select {
		case <-ctx.Done():
		case <-time.After(q.retryDelay):
		}
	}

	data, _ := json.Marshal(job)
	if err := q.redis.LPush(context.WithoutCancel(ctx), queueKey, string(data)).Err(); err != nil {
		logger.Error("failed to requeue email", "to", job.To, "error", err)
	}
}

func (q *Queue) saveFailed(ctx context.Context, job Job, cause error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": cause.Error(),
		"time":  time.Now().UTC(),
	}
	data, _ := json.Marshal(failed)
	if err := q.redis.LPush(context.WithoutCancel(ctx), failedQueueKey, string(data)).Err(); err != nil {
		logger.Error("failed to store dead email", "to", job.To, "error", err)
	}

	metrics.RecordEmail(job.Type, "failed")
	logger.Error("email moved to failed queue", "to", job.To, "tries", job.Tries)
}

// Length reports the pending jobs and updates the queue gauge.
func (q *Queue) Length(ctx context.Context) int64 {
	length, err := q.redis.LLen(ctx, queueKey).Result()
	if err != nil {
		return 0
	}
	metrics.EmailQueueLength.Set(float64(length))
	return length
}

// MonitorLength refreshes the queue gauge every interval until ctx is done.
func (q *Queue) MonitorLength(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			q.Length(ctx)
		}
	}
}
