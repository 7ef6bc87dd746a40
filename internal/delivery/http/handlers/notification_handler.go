package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	notificationRequest "github.com/LavaJover/shvark-moderation-service/internal/delivery/http/dto/notification/request"
	notificationResponse "github.com/LavaJover/shvark-moderation-service/internal/delivery/http/dto/notification/response"
	"github.com/LavaJover/shvark-moderation-service/internal/domain"
)

// HTTPNotificationHandler delivers emails and in-band messages through the
// notification-service. Delivery failures are never swallowed: the caller
// decides whether to roll its writes back.
type HTTPNotificationHandler struct {
	Address string
	client  *http.Client
}

func NewHTTPNotificationHandler(address string) (*HTTPNotificationHandler, error) {
	return &HTTPNotificationHandler{
		Address: address,
		client:  &http.Client{Timeout: 5 * time.Second},
	}, nil
}

func (h *HTTPNotificationHandler) SendEmail(ctx context.Context, user *domain.RemoteUser, subject, message, fromEmail string) error {
	requestBodyBytes, err := json.Marshal(notificationRequest.SendEmailRequest{
		UserID:    user.ID,
		Email:     user.Email,
		Subject:   subject,
		Message:   message,
		FromEmail: fromEmail,
	})
	if err != nil {
		return err
	}

	return h.post(ctx, fmt.Sprintf("%s/notifications/email", h.Address), requestBodyBytes)
}

func (h *HTTPNotificationHandler) SendMessage(ctx context.Context, user *domain.RemoteUser, message string) error {
	requestBodyBytes, err := json.Marshal(notificationRequest.SendMessageRequest{
		UserID:  user.ID,
		Message: message,
	})
	if err != nil {
		return err
	}

	return h.post(ctx, fmt.Sprintf("%s/notifications/messages", h.Address), requestBodyBytes)
}

func (h *HTTPNotificationHandler) post(ctx context.Context, url string, body []byte) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := h.client.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return nil
	} else {
		var errorResponse notificationResponse.ErrorResponse
		if err := json.Unmarshal(responseBodyBytes, &errorResponse); err != nil {
			return fmt.Errorf("%w: status %s", domain.ErrDeliveryFailed, response.Status)
		}
		return fmt.Errorf("%w: %s", domain.ErrDeliveryFailed, errorResponse.Error)
	}
}
