package delivery

import (
	"fmt"

	"delivery-service/internal/entities"
	"delivery-service/internal/pkg/validation"
)

const (
	msgTaxNegative = "O campo tax não pode ser negativo"
	msgTaxTooLarge = "O campo tax não pode ser maior que 9999999999.99"

	// NUMERIC(12,2) в таблице deliveries
	taxMax = 9999999999.99

	recipientMaxLength       = 255
	recipientNumberMaxLength = 30
)

func notNull(field string) string {
	return "O campo " + field + " não pode ser nulo"
}

func maxLength(field string, n int) validation.Rule[string] {
	return validation.MaxLength(n, fmt.Sprintf("O campo %s não deve ter mais que %d caracteres", field, n))
}

var (
	taxNonNegative = validation.Rule[float64]{
		Valid:   func(tax float64) bool { return tax >= 0 },
		Message: validation.Static[float64](msgTaxNegative),
	}
	taxUpperBound = validation.Rule[float64]{
		Valid:   func(tax float64) bool { return tax <= taxMax },
		Message: validation.Static[float64](msgTaxTooLarge),
	}
)

func validateDelivery(deliveryModify entities.DeliveryModify) error {
	return validation.Validate(
		validation.Field("clientId", deliveryModify.ClientID, notNull("clientId")),
		validation.Field("recipientName", deliveryModify.RecipientName, notNull("recipientName"),
			maxLength("recipientName", recipientMaxLength),
		),
		validation.Field("recipientStreet", deliveryModify.RecipientStreet, notNull("recipientStreet"),
			maxLength("recipientStreet", recipientMaxLength),
		),
		validation.Field("recipientNumber", deliveryModify.RecipientNumber, notNull("recipientNumber"),
			maxLength("recipientNumber", recipientNumberMaxLength),
		),
		validation.Field("recipientNeighborhood", deliveryModify.RecipientNeighborhood, notNull("recipientNeighborhood"),
			maxLength("recipientNeighborhood", recipientMaxLength),
		),
		validation.Field("recipientComplement", deliveryModify.RecipientComplement, "",
			maxLength("recipientComplement", recipientMaxLength),
		),
		validation.Field("tax", deliveryModify.Tax, notNull("tax"), taxNonNegative, taxUpperBound),
	)
}
