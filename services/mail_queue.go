package services

import (
	"sync"

	"go.uber.org/zap"
)

type Mail struct {
	Recipient string
	Subject   string
	HTMLBody  string
	Fallback  string
}

// IMailDispatcher accepts mail for background delivery. Enqueue never
// blocks the caller and delivery is at-most-once: a failed or dropped send
// is logged, never retried, and never surfaces to the request that queued it.
type IMailDispatcher interface {
	Enqueue(mail Mail)
}

type MailQueue struct {
	mails  chan Mail
	sender IMailService
	wg     sync.WaitGroup
}

func NewMailQueue(sender IMailService) *MailQueue {
	return &MailQueue{
		mails:  make(chan Mail, 64),
		sender: sender,
	}
}

func (q *MailQueue) StartWorkerPool(workers int) {
	for range workers {
		q.wg.Add(1)
		go q.worker()
	}
}

func (q *MailQueue) worker() {
	defer q.wg.Done()
	for mail := range q.mails {
		if err := q.sender.Send(mail.Recipient, mail.Subject, mail.HTMLBody, mail.Fallback); err != nil {
			zap.L().Error("Failed to send mail",
				zap.String("recipient", mail.Recipient),
				zap.Error(err))
		}
	}
}

func (q *MailQueue) Enqueue(mail Mail) {
	select {
	case q.mails <- mail:
	default:
		zap.L().Warn("Mail queue full, dropping message",
			zap.String("recipient", mail.Recipient))
	}
}

// Stop closes the queue and waits for in-flight sends to finish.
func (q *MailQueue) Stop() {
	close(q.mails)
	q.wg.Wait()
}
