package middleware

import (
	"bytes"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"sync"
	"time"
)

type AlertConfig struct {
	WebhookURL  string
	Environment string
	AppName     string
}

type ErrorAlertMiddleware struct {
	config        AlertConfig
	alertedErrors map[string]time.Time // hash -> last alert time
	mutex         sync.RWMutex
	alertCooldown time.Duration // prevent spam
}

func NewErrorAlertMiddleware(config AlertConfig) *ErrorAlertMiddleware {
	return &ErrorAlertMiddleware{
		config:        config,
		alertedErrors: make(map[string]time.Time),
		alertCooldown: 10 * time.Minute, // Don't alert same error more than once per 10min
	}
}

// HTTP Middleware - wraps HTTP handlers
func (m *ErrorAlertMiddleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer m.recoverAndAlert(w, fmt.Sprintf("HTTP %s %s", r.Method, r.URL.Path))
		next.ServeHTTP(w, r)
	})
}

// WrapBackgroundTask wraps a background goroutine so a panic is alerted
// instead of crashing the process
func (m *ErrorAlertMiddleware) WrapBackgroundTask(name string, task func() error) func() {
	return func() {
		defer m.recoverAndAlert(nil, fmt.Sprintf("Background task %s", name))

		if err := task(); err != nil {
			m.alertOnError(err, fmt.Sprintf("Background task %s", name))
		}
	}
}

func (m *ErrorAlertMiddleware) recoverAndAlert(w http.ResponseWriter, source string) {
	if r := recover(); r != nil {
		err := fmt.Errorf("panic: %v", r)
		log.Printf("❌ Recovered panic in %s: %v\n%s", source, r, debug.Stack())
		m.alertOnError(err, source)
		if w != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}
}

func (m *ErrorAlertMiddleware) alertOnError(err error, source string) {
	if m.config.WebhookURL == "" {
		return
	}

	// Deduplicate by error text so a hot failure path does not flood the
	// alert channel
	hash := fmt.Sprintf("%x", md5.Sum([]byte(err.Error())))

	m.mutex.Lock()
	lastAlert, seen := m.alertedErrors[hash]
	if seen && time.Since(lastAlert) < m.alertCooldown {
		m.mutex.Unlock()
		return
	}
	m.alertedErrors[hash] = time.Now()
	m.mutex.Unlock()

	go m.sendAlert(err, source)
}

func (m *ErrorAlertMiddleware) sendAlert(err error, source string) {
	payload := map[string]string{
		"text": fmt.Sprintf("🚨 [%s/%s] %s: %v",
			m.config.AppName, m.config.Environment, source, err),
	}
	body, marshalErr := json.Marshal(payload)
	if marshalErr != nil {
		log.Printf("⚠️ Failed to marshal alert payload: %v", marshalErr)
		return
	}

	resp, postErr := http.Post(m.config.WebhookURL, "application/json", bytes.NewBuffer(body))
	if postErr != nil {
		log.Printf("⚠️ Failed to send error alert: %v", postErr)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("⚠️ Error alert webhook returned status %d", resp.StatusCode)
	}
}
