package usecase

import (
	"strings"

	"go.uber.org/zap"

	"github.com/xavierca1/postcard-ads/internal/entity"
)

type SendContactUseCase struct {
	Sender ContactSender
	log    *zap.Logger
}

func NewSendContactUseCase(sender ContactSender, log *zap.Logger) *SendContactUseCase {
	return &SendContactUseCase{Sender: sender, log: log}
}

// Execute sends exactly one email per valid submission. Nothing is stored
// and repeated submissions are sent again.
func (uc *SendContactUseCase) Execute(input ContactInput) (*ContactOutput, error) {
	if verr := ValidateContactInput(input); verr != nil {
		return nil, verr
	}

	msg := entity.ContactMessage{
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.TrimSpace(input.Email),
		Phone:        strings.TrimSpace(input.Phone),
		BusinessName: strings.TrimSpace(input.BusinessName),
		Message:      input.Message,
	}

	id, err := uc.Sender.SendContact(msg)
	if err != nil {
		uc.log.Error("failed to send contact email", zap.String("reply_to", msg.Email), zap.Error(err))
		return nil, &DeliveryError{Err: err}
	}

	uc.log.Info("contact email sent", zap.String("message_id", id))
	return &ContactOutput{Success: true, ID: id}, nil
}
