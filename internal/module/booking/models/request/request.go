package request

// Reserve is the checkout form of the seat page.
type Reserve struct {
	Email      string `form:"email" validate:"required,email"`
	ShowtimeID int64  `form:"showtime_id"`
	Format     string `form:"format" validate:"omitempty,oneof=2D 3D"`
}

type Reservation struct {
	Movie int64   `json:"movie" validate:"required"`
	Seats []int64 `json:"seats" validate:"required,min=1"`
}

type Payment struct {
	Seats      []int64 `json:"seats" validate:"required,min=1"`
	Email      string  `json:"email" validate:"required,email"`
	Format     string  `json:"format,omitempty"`
	ShowtimeID int64   `json:"showtime_id,omitempty"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}
