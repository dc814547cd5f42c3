package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"task-tracker-app/internal/task"
	"task-tracker-app/internal/task/adapter"
	pkgResponse "task-tracker-app/pkg/response"
)

const maxBodyBytes = 1 << 20

// HandleTaskWebhook godoc
// @Summary     Task change notification
// @Description Accepts a signed task change event and invalidates the affected month.
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Param       X-Signature-256 header string           true "sha256=<hex HMAC of body>"
// @Param       body            body   TaskEventPayload true "Task event"
// @Success     200 {object} pkgResponse.Resp "accepted"
// @Failure     400 {object} pkgResponse.Resp "Bad Request"
// @Failure     401 {object} map[string]string "invalid signature"
// @Failure     403 {object} map[string]string "IP not allowed"
// @Failure     429 {object} map[string]string "rate limit exceeded"
// @Router      /webhook/tasks [POST]
func (h *Handler) HandleTaskWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "webhook: %v", err)
		c.JSON(http.StatusForbidden, gin.H{"error": "ip not allowed"})
		return
	}

	if err := h.security.CheckRateLimit(c.ClientIP()); err != nil {
		h.l.Warnf(ctx, "webhook: %v", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		h.l.Errorf(ctx, "webhook: failed to read body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if err := h.security.ValidateSignature(body, c.GetHeader(SignatureHeader)); err != nil {
		h.l.Errorf(ctx, "webhook: signature verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	payload, err := decodePayload(body)
	if err != nil {
		h.l.Errorf(ctx, "webhook: invalid payload: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	h.l.Infof(ctx, "webhook: received %s for task %s", payload.Event, adapter.RecordID(payload.Task))

	go h.processAsync(payload)

	// Acknowledge immediately
	pkgResponse.OK(c, gin.H{"status": "accepted"})
}

// decodePayload parses and checks everything Sync would reject, so that bad
// notifications fail the request instead of the background job.
func decodePayload(body []byte) (TaskEventPayload, error) {
	var payload TaskEventPayload
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return payload, fmt.Errorf("failed to parse payload: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(payload.Event)) {
	case task.EventCreated, task.EventUpdated, task.EventDeleted:
	default:
		return payload, fmt.Errorf("%w: %q", task.ErrUnknownEvent, payload.Event)
	}
	if adapter.RecordID(payload.Task) == "" {
		return payload, task.ErrMissingTaskID
	}
	return payload, nil
}

// processAsync applies the change with exponential backoff on source failures.
func (h *Handler) processAsync(payload TaskEventPayload) {
	ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
	defer cancel()

	out, err := h.syncWithRetry(ctx, payload)
	if err != nil {
		h.l.Errorf(ctx, "webhook: failed to sync task %s after %d attempts: %v", adapter.RecordID(payload.Task), h.maxRetries, err)
	} else {
		h.l.Infof(ctx, "webhook: synced task %s (month=%q removed=%d)", out.TaskID, out.MonthID, out.Removed)
	}

	if h.done != nil {
		h.done(out, err)
	}
}

func (h *Handler) syncWithRetry(ctx context.Context, payload TaskEventPayload) (task.SyncOutput, error) {
	backoff := h.retryBackoff
	var lastErr error

	for i := 0; i < h.maxRetries; i++ {
		out, err := h.uc.Sync(ctx, task.SyncInput{Event: payload.Event, Record: payload.Task})
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, task.ErrTaskSourceUnavailable) {
			return task.SyncOutput{}, err
		}

		lastErr = err
		h.l.Warnf(ctx, "webhook: sync failed (retry %d/%d): %v", i+1, h.maxRetries, err)
		if i == h.maxRetries-1 {
			break
		}

		select {
		case <-ctx.Done():
			return task.SyncOutput{}, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return task.SyncOutput{}, lastErr
}
