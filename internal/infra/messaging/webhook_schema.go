package messaging

import (
	"bytes"
	"encoding/json"
	"strings"

	"lineconnect/internal/domain/entity"
	domainerrors "lineconnect/internal/domain/errors"
	"lineconnect/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

const webhookSchemaURL = "https://lineconnect.local/schema/webhook.json"

// webhookSchema describes the parts of the webhook body the dispatcher relies on.
// Unknown event types and extra properties are allowed.
const webhookSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["events"],
  "properties": {
    "destination": {"type": "string"},
    "events": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["type"],
        "properties": {
          "type": {"type": "string", "minLength": 1},
          "timestamp": {"type": "integer"},
          "webhookEventId": {"type": "string"},
          "replyToken": {"type": "string"},
          "source": {
            "type": "object",
            "properties": {
              "type": {"type": "string"},
              "userId": {"type": "string"}
            }
          },
          "message": {
            "type": "object",
            "required": ["type"],
            "properties": {
              "id": {"type": "string"},
              "type": {"type": "string"}
            }
          }
        }
      }
    }
  }
}`

// PayloadParser validates webhook bodies against a JSON schema before decoding.
type PayloadParser struct {
	schema *jsonschema.Schema
}

// NewPayloadParser compiles the webhook schema.
func NewPayloadParser() (service.WebhookPayloadParser, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(webhookSchema))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read webhook schema")
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(webhookSchemaURL, doc); err != nil {
		return nil, errors.Wrap(err, "failed to register webhook schema")
	}
	schema, err := compiler.Compile(webhookSchemaURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compile webhook schema")
	}

	return &PayloadParser{schema: schema}, nil
}

// Parse implements service.WebhookPayloadParser.
func (p *PayloadParser) Parse(rawBody []byte) (*entity.WebhookPayload, error) {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(rawBody))
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("webhook body is not valid JSON").WithCause(err)
	}
	if err := p.schema.Validate(inst); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("webhook body does not match schema").WithCause(err)
	}

	var payload entity.WebhookPayload
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("webhook body could not be decoded").WithCause(err)
	}

	return &payload, nil
}
