package finans

import "errors"

// Rejection returns the message shown to the user when an order is rejected.
// Errors that are not order rejections are returned as is.
func Rejection(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInsufficientBalance):
		return "Yetersiz bakiye! Satın alma işlemi gerçekleştirilemiyor."
	case errors.Is(err, ErrInsufficientHolding):
		return "Yetersiz varlık! Satış işlemi gerçekleştirilemiyor."
	case errors.Is(err, ErrInvalidQuantity):
		return "Geçersiz miktar! Miktar sıfırdan büyük olmalıdır."
	case errors.Is(err, ErrUnknownAsset):
		return "Bilinmeyen varlık!"
	default:
		return err.Error()
	}
}
