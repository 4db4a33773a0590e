package entities

// DeliveryEmail уведомление клиенту о смене статуса доставки.
type DeliveryEmail struct {
	DeliveryID  int64
	ClientEmail string
	Subject     string
	Body        string
}
