package response

// Preference is the payment preference returned by create-payment.
type Preference struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}
