package worker

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

type Handler struct {
	contactProcessor *ContactProcessor
	verifyProcessor  *VerifyProcessor
	log              zerolog.Logger
}

func NewHandler(
	contactProcessor *ContactProcessor,
	verifyProcessor *VerifyProcessor,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		contactProcessor: contactProcessor,
		verifyProcessor:  verifyProcessor,
		log:              log.With().Str("component", "handler").Logger(),
	}
}

func (h *Handler) Process(ctx context.Context, msg *Message) error {
	h.log.Debug().Str("type", msg.Type).Str("id", msg.ID).Msg("processing message")

	switch msg.Type {
	case JobContactsSanitize:
		return h.contactProcessor.ProcessBatch(ctx, msg)
	case JobVerifyEmail:
		return h.verifyProcessor.ProcessVerify(ctx, msg)
	default:
		h.log.Warn().Str("type", msg.Type).Msg("unknown job type")
		return nil
	}
}

func ParsePayload[T any](msg *Message) (*T, error) {
	var payload T
	data, err := json.Marshal(msg.Payload)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
