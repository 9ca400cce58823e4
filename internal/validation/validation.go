// Package validation checks request payloads before they reach storage.
// Every violated constraint is collected, not just the first one, and
// translated to a fixed human-readable message so API clients can rely on
// the exact text and order.
package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/vferraz/garage-api/internal/models"
)

var validate = validator.New()

// messages maps field+tag pairs to the message reported to clients.
// Fields are visited in struct order, so message order is stable.
var messages = map[string]string{
	"AdministratorDTO.Email.required":    "email cannot be empty",
	"AdministratorDTO.Email.contains":    "email must contain @",
	"AdministratorDTO.Password.required": "password cannot be empty",
	"AdministratorDTO.Profile.required":  "profile must be either Admin or Editor",
	"AdministratorDTO.Profile.oneof":     "profile must be either Admin or Editor",
	"VehicleDTO.Name.required":           "name cannot be empty",
	"VehicleDTO.Brand.required":          "brand cannot be empty",
	"VehicleDTO.Year.gte":                "year must be 1950 or later",
}

// Administrator validates an administrator creation payload.
// An empty message list means the payload is valid.
func Administrator(dto models.AdministratorDTO) models.ValidationError {
	return translate(validate.Struct(dto))
}

// Vehicle validates a vehicle creation or update payload
func Vehicle(dto models.VehicleDTO) models.ValidationError {
	return translate(validate.Struct(dto))
}

// translate converts validator field errors into the fixed client-facing
// messages, preserving field order
func translate(err error) models.ValidationError {
	var result models.ValidationError
	if err == nil {
		return result
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Struct-level failure outside field validation, should not happen
		// for the DTO types this package validates
		return models.NewValidationError(err.Error())
	}

	for _, fe := range fieldErrors {
		key := fe.StructNamespace() + "." + fe.Tag()
		if msg, found := messages[key]; found {
			result.Messages = append(result.Messages, msg)
		} else {
			result.Messages = append(result.Messages, fe.Error())
		}
	}
	return result
}
