package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	userResponse "github.com/LavaJover/shvark-moderation-service/internal/delivery/http/dto/user/response"
	"github.com/LavaJover/shvark-moderation-service/internal/domain"
)

// HTTPUserHandler resolves user identities against the sso-service.
type HTTPUserHandler struct {
	Address string
	client  *http.Client
}

func NewHTTPUserHandler(address string) (*HTTPUserHandler, error) {
	return &HTTPUserHandler{
		Address: address,
		client:  &http.Client{Timeout: 3 * time.Second},
	}, nil
}

func (h *HTTPUserHandler) ResolveUser(ctx context.Context, userID string) (*domain.RemoteUser, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/users/%s", h.Address, userID), nil)
	if err != nil {
		return nil, err
	}

	response, err := h.client.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode == http.StatusNotFound {
		return nil, domain.ErrUserNotFound
	}
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		var user userResponse.UserResponse
		if err := json.Unmarshal(responseBodyBytes, &user); err != nil {
			return nil, err
		}
		return &domain.RemoteUser{
			ID:       user.ID,
			Email:    user.Email,
			Username: user.Username,
		}, nil
	} else {
		var errorResponse userResponse.ErrorResponse
		if err := json.Unmarshal(responseBodyBytes, &errorResponse); err != nil {
			return nil, err
		}
		return nil, errors.New(errorResponse.Error)
	}
}
