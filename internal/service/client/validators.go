package client

import (
	"fmt"
	"regexp"

	"delivery-service/internal/entities"
	"delivery-service/internal/pkg/validation"
)

const (
	msgNameNull      = "O nome não pode ser nulo"
	msgNameLength    = "O nome não deve ter menos que 3 ou mais que 100 caracteres"
	msgNameFormat    = "O nome='%s' não pode conter caracteres especiais ou números, ou conter 4 caracteres iguais em sequencia"
	msgEmailNull     = "O email não pode ser nulo"
	msgEmailInvalid  = "O email='%s' é inválido"
	msgEmailLength   = "O email não deve ter mais que 255 caracteres"
	msgTelephoneNull = "O telefone não pode ser nulo"
	msgTelephoneBad  = "O telefone='%s' é inválido"

	nameMinLength   = 3
	nameMaxLength   = 100
	nameMaxRepeated = 4
	emailMaxLength  = 255
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var nameFormat = validation.Rule[string]{
	Valid: func(name string) bool {
		return validation.LettersAndSpaces(name) && !validation.HasRepeatedRun(name, nameMaxRepeated)
	},
	Message: func(name string) string {
		return fmt.Sprintf(msgNameFormat, name)
	},
}

func validateClient(clientModify entities.ClientModify, telephonePattern *regexp.Regexp) error {
	return validation.Validate(
		validation.Field("name", clientModify.Name, msgNameNull,
			validation.Length(nameMinLength, nameMaxLength, msgNameLength),
			nameFormat,
		),
		validation.Field("email", clientModify.Email, msgEmailNull,
			validation.MaxLength(emailMaxLength, msgEmailLength),
			validation.Match(emailPattern, msgEmailInvalid),
		),
		validation.Field("telephone", clientModify.Telephone, msgTelephoneNull,
			validation.Match(telephonePattern, msgTelephoneBad),
		),
	)
}
