package models

// ConfirmationPayload is the asynq task body enqueued after a booking is
// accepted; the worker turns it into an outbound notice.
type ConfirmationPayload struct {
	BookingID string `json:"bookingId"`
	ServiceID string `json:"serviceId"`
	UserID    string `json:"userId,omitempty"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// ReminderPayload is the task body for the scheduled pre-appointment
// reminder, processed shortly before the booked slot starts.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	ServiceID string `json:"serviceId"`
	UserID    string `json:"userId,omitempty"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}
