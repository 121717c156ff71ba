package notification

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/sultangaziagd/agdsgazi/utils"
)

// pushTopic is the FCM topic every portal client subscribes to.
const pushTopic = "agd-sultangazi"

type Service interface {
	Broadcast(title, message, senderName string) (Notification, error)
	List() ([]Notification, error)
}

// Roster supplies the addresses a broadcast is mailed to.
type Roster interface {
	MemberEmails() ([]string, error)
}

type service struct {
	repo   Repository
	roster Roster
}

func NewService(r Repository, roster Roster) Service {
	return &service{repo: r, roster: roster}
}

// broadcastEvent is the wire form published to Kafka for fan-out.
type broadcastEvent struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	SenderName string `json:"senderName"`
	Timestamp  int64  `json:"timestamp"`
}

// Broadcast stores a district-wide notification and hands it to the
// fan-out pipeline. Delivery failures never fail the broadcast; the
// stored feed is the source of truth.
func (s *service) Broadcast(title, message, senderName string) (Notification, error) {
	now := time.Now()
	n := Notification{
		ID:         uuid.NewString(),
		Title:      title,
		Message:    message,
		Date:       now.Format("02.01.2006"),
		Timestamp:  now.UnixMilli(),
		SenderName: senderName,
	}

	if err := s.repo.Create(&n); err != nil {
		return Notification{}, err
	}

	event := broadcastEvent{
		ID:         n.ID,
		Title:      n.Title,
		Message:    n.Message,
		SenderName: n.SenderName,
		Timestamp:  n.Timestamp,
	}

	if utils.IsKafkaEnabled() {
		payload, err := json.Marshal(event)
		if err == nil {
			if err := utils.PublishMessage(context.Background(), n.ID, payload); err != nil {
				log.Printf("⚠️ Kafka publish failed for notification %s: %v", n.ID, err)
				deliver(event, s.roster)
			}
		}
	} else {
		deliver(event, s.roster)
	}

	return n, nil
}

func (s *service) List() ([]Notification, error) {
	return s.repo.ListNewestFirst()
}

// deliver pushes one notification out over FCM and mails the roster.
func deliver(event broadcastEvent, roster Roster) {
	if utils.IsFCMEnabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := utils.SendPushToTopic(ctx, pushTopic, event.Title, event.Message); err != nil {
			log.Printf("⚠️ FCM push failed for notification %s: %v", event.ID, err)
		}
	}

	if roster == nil {
		return
	}
	emails, err := roster.MemberEmails()
	if err != nil {
		log.Printf("⚠️ Roster lookup failed for notification %s: %v", event.ID, err)
		return
	}
	for _, to := range emails {
		if err := utils.SendNotificationEmail(to, event.Title, event.Message, event.SenderName); err != nil {
			log.Printf("⚠️ Notification mail to %s failed: %v", to, err)
		}
	}
}

// StartKafkaConsumer drains the notification topic and delivers each
// broadcast. Run it in its own goroutine; it returns when the context
// is cancelled or the broker is not configured.
func StartKafkaConsumer(ctx context.Context, roster Roster) {
	reader := utils.NewConsumer("agd-notification-fanout")
	if reader == nil {
		return
	}
	defer reader.Close()

	log.Println("🔄 Notification consumer started")
	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("⚠️ Notification consumer read error: %v", err)
			continue
		}

		var event broadcastEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Printf("⚠️ Bad notification payload: %v", err)
			continue
		}
		deliver(event, roster)
	}
}
