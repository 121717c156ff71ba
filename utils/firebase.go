package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var (
	firebaseApp    *firebase.App
	firebaseClient *messaging.Client
	firebaseOnce   sync.Once
	firebaseErr    error
)

// InitFirebase initializes the Firebase Admin SDK and FCM client. Missing
// credentials disable push delivery without failing startup.
func InitFirebase() error {
	firebaseOnce.Do(func() {
		ctx := context.Background()

		credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
		if credentialsPath == "" {
			credentialsPath = os.Getenv("FCM_CREDENTIALS_PATH")
		}
		if credentialsPath == "" {
			credentialsPath = "./serviceAccountKey.json"
		}

		if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
			firebaseErr = fmt.Errorf("firebase credentials file not found: %s", credentialsPath)
			log.Printf("⚠️ %v - push notifications disabled", firebaseErr)
			return
		}

		conf := &firebase.Config{ProjectID: os.Getenv("FCM_PROJECT_ID")}
		app, err := firebase.NewApp(ctx, conf, option.WithCredentialsFile(credentialsPath))
		if err != nil {
			firebaseErr = fmt.Errorf("firebase init failed: %w", err)
			return
		}
		firebaseApp = app

		client, err := app.Messaging(ctx)
		if err != nil {
			firebaseErr = fmt.Errorf("fcm client init failed: %w", err)
			return
		}
		firebaseClient = client
	})

	return firebaseErr
}

// IsFCMEnabled reports whether push delivery is available.
func IsFCMEnabled() bool {
	return firebaseClient != nil
}

// GetInitError returns the recorded initialization error, if any.
func GetInitError() error {
	return firebaseErr
}

// SendPushToTopic broadcasts one push message to the shared district topic.
func SendPushToTopic(ctx context.Context, topic, title, body string) error {
	if firebaseClient == nil {
		return nil
	}
	_, err := firebaseClient.Send(ctx, &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	})
	return err
}
