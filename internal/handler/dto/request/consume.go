package request

type ConsumeMinutesRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Minutes int    `json:"minutes,omitempty"`
}
