// Package validator holds the field rules used by the contact forms.
//
// Rules are lazy: a Rule pairs a Check with the ValidationError reported
// when it fails, and Apply or First evaluate them in order.
//
//	err := validator.Apply(
//		validator.Required("email", email),
//		validator.ValidEmail("email", email),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs.Has("email") {
//		...
//	}
//
// Every error carries a TranslationKey (contact.required,
// contact.invalidEmail, contact.invalidPhone) so callers can localize
// the English Message.
//
// Structs can be validated through tags:
//
//	type Inquiry struct {
//		Name  string `json:"name" validate:"required;max:100"`
//		Email string `json:"email" validate:"required;email"`
//		Phone string `json:"phone" validate:"phone"`
//	}
//
//	err := validator.ValidateStruct(&inquiry)
package validator
