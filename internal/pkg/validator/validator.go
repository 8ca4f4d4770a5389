package validator

import (
	"fmt"
	"strings"

	"github.com/ideasage/backend/internal/entity"
)

// ValidateCreateIdea checks an idea submission. The title is optional;
// a blank title is filled by the suggested-title flow, so only the
// description is required.
func ValidateCreateIdea(req *entity.CreateIdeaRequest) error {
	if strings.TrimSpace(req.Description) == "" {
		return fmt.Errorf("%w: description", entity.ErrMissingField)
	}
	return nil
}

// ValidateSendMessage rejects blank chat input before anything is
// persisted.
func ValidateSendMessage(req *entity.SendMessageRequest) error {
	if strings.TrimSpace(req.Message) == "" {
		return entity.ErrBlankMessage
	}
	return nil
}

// ValidateSetCredential checks the supplied API key.
func ValidateSetCredential(req *entity.SetCredentialRequest) error {
	if strings.TrimSpace(req.APIKey) == "" {
		return fmt.Errorf("%w: api_key", entity.ErrMissingField)
	}
	return nil
}
