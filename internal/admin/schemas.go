// internal/admin/schemas.go
package admin

import (
	"fmt"

	"club-portal/internal/common/errors"

	"github.com/xeipuuv/gojsonschema"
)

// Payload schemas for the three managed tables. Writes are checked against
// these before they reach the store, so a malformed admin request never
// produces a half-formed row.
const eventSchema = `{
	"type": "object",
	"properties": {
		"title":       {"type": "string", "minLength": 1},
		"description": {"type": "string", "minLength": 1},
		"date":        {"type": "string", "minLength": 1},
		"venue":       {"type": "string", "minLength": 1},
		"status":      {"type": "string", "enum": ["upcoming", "past"]},
		"content_md":  {"type": "string"}
	},
	"required": ["title", "description", "date", "venue", "status"],
	"additionalProperties": false
}`

const memberSchema = `{
	"type": "object",
	"properties": {
		"name":      {"type": "string", "minLength": 1},
		"role":      {"type": "string", "minLength": 1},
		"domain":    {"type": "string", "minLength": 1},
		"image_url": {"type": "string", "minLength": 1},
		"bio_md":    {"type": "string"}
	},
	"required": ["name", "role", "domain", "image_url"],
	"additionalProperties": false
}`

const gallerySchema = `{
	"type": "object",
	"properties": {
		"image_url":  {"type": "string", "minLength": 1},
		"caption":    {"type": "string", "minLength": 1},
		"details_md": {"type": "string"}
	},
	"required": ["image_url", "caption"],
	"additionalProperties": false
}`

func validatePayload(schema string, payload map[string]interface{}) error {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewGoLoader(payload)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return errors.NewValidationFailedError(fmt.Sprintf("validation error: %v", err))
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return errors.NewValidationFailedError(fmt.Sprintf("payload validation failed: %v", errs))
	}

	return nil
}
