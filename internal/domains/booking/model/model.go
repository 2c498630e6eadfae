package model

import (
	"livecity/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldClientName      = "client_name"
	FieldEmail           = "email"
	FieldContactPhone    = "contact_phone"
	FieldEventType       = "event_type"
	FieldGuestCount      = "guest_count"
	FieldVenueName       = "venue_name"
	FieldVenueLocation   = "venue_location"
	FieldEventDate       = "event_date"
	FieldStartTime       = "start_time"
	FieldEndTime         = "end_time"
	FieldPaymentMethod   = "payment_method"
	FieldLighting        = "lighting"
	FieldPhotography     = "photography"
	FieldVideoVisuals    = "video_visuals"
	FieldAdditionalHours = "additional_hours"
	FieldAgreeToTerms    = "agree_to_terms"
	FieldTotal           = "total"
	FieldEventTimestamp  = "event_timestamp"
	FieldReminderSent    = "reminder_sent"
	FieldReminderSentAt  = "reminder_sent_at"
)

type PaymentMethod string

const (
	PaymentMethodCash    PaymentMethod = "cash"
	PaymentMethodCard    PaymentMethod = "card"
	PaymentMethodZelle   PaymentMethod = "zelle"
	PaymentMethodVenmo   PaymentMethod = "venmo"
	PaymentMethodCashApp PaymentMethod = "cashapp"
	PaymentMethodCheck   PaymentMethod = "check"
)

// Booking is append-only apart from the reminder columns, which flip exactly once.
type Booking struct {
	ID              string        `db:"id"`
	ClientName      string        `db:"client_name"`
	Email           string        `db:"email"`
	ContactPhone    string        `db:"contact_phone"`
	EventType       string        `db:"event_type"`
	GuestCount      int           `db:"guest_count"`
	VenueName       string        `db:"venue_name"`
	VenueLocation   string        `db:"venue_location"`
	EventDate       string        `db:"event_date"`
	StartTime       string        `db:"start_time"`
	EndTime         string        `db:"end_time"`
	PaymentMethod   PaymentMethod `db:"payment_method"`
	Lighting        bool          `db:"lighting"`
	Photography     bool          `db:"photography"`
	VideoVisuals    bool          `db:"video_visuals"`
	AdditionalHours int           `db:"additional_hours"`
	AgreeToTerms    bool          `db:"agree_to_terms"`
	Total           int           `db:"total"`
	EventTimestamp  time.Time     `db:"event_timestamp"`
	ReminderSent    bool          `db:"reminder_sent"`
	ReminderSentAt  *time.Time    `db:"reminder_sent_at"`
	model.Metadata
}
