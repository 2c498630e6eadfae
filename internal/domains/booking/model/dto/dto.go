package dto

import (
	"livecity/internal/domains/booking/model"
	"livecity/internal/domains/pricing"
	"livecity/shared"
	"livecity/shared/constant"
	gDto "livecity/shared/dto"
	"livecity/shared/failure"
	gModel "livecity/shared/model"
	"livecity/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// CreateBookingRequest carries the raw form fields as the client typed them.
// Tags cover presence and format only; the ordered business rules live in the validation package.
type CreateBookingRequest struct {
	ClientName      string `json:"client_name"      validate:"required,max=100"`
	Email           string `json:"email"            validate:"required,max=254"`
	ContactPhone    string `json:"contact_phone"    validate:"required,max=32"`
	EventType       string `json:"event_type"       validate:"required,max=100"`
	GuestCount      int    `json:"guest_count"      validate:"gte=0"`
	VenueName       string `json:"venue_name"       validate:"omitempty,max=200"`
	VenueLocation   string `json:"venue_location"   validate:"omitempty,max=300"`
	EventDate       string `json:"event_date"       validate:"required,dateonly"`
	StartTime       string `json:"start_time"       validate:"omitempty,timeofday"`
	EndTime         string `json:"end_time"         validate:"omitempty,timeofday"`
	PaymentMethod   string `json:"payment_method"   validate:"required,oneof=cash card zelle venmo cashapp check"`
	Lighting        bool   `json:"lighting"`
	Photography     bool   `json:"photography"`
	VideoVisuals    bool   `json:"video_visuals"`
	AdditionalHours int    `json:"additional_hours" validate:"gte=0,lte=24"`
	AgreeToTerms    bool   `json:"agree_to_terms"`
}

func (c *CreateBookingRequest) PricingOptions() pricing.Options {
	return pricing.Options{
		Lighting:        c.Lighting,
		Photography:     c.Photography,
		VideoVisuals:    c.VideoVisuals,
		AdditionalHours: c.AdditionalHours,
	}
}

func (c *CreateBookingRequest) ToModel(total int, eventTimestamp, now time.Time) model.Booking {
	return model.Booking{
		ID:              uuid.NewString(),
		ClientName:      c.ClientName,
		Email:           c.Email,
		ContactPhone:    c.ContactPhone,
		EventType:       c.EventType,
		GuestCount:      c.GuestCount,
		VenueName:       c.VenueName,
		VenueLocation:   c.VenueLocation,
		EventDate:       c.EventDate,
		StartTime:       c.StartTime,
		EndTime:         c.EndTime,
		PaymentMethod:   model.PaymentMethod(c.PaymentMethod),
		Lighting:        c.Lighting,
		Photography:     c.Photography,
		VideoVisuals:    c.VideoVisuals,
		AdditionalHours: c.AdditionalHours,
		AgreeToTerms:    c.AgreeToTerms,
		Total:           total,
		EventTimestamp:  eventTimestamp,
		ReminderSent:    false,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}
}

type QuoteRequest struct {
	Lighting        bool `json:"lighting"`
	Photography     bool `json:"photography"`
	VideoVisuals    bool `json:"video_visuals"`
	AdditionalHours int  `json:"additional_hours" validate:"gte=0,lte=24"`
}

func (q *QuoteRequest) PricingOptions() pricing.Options {
	return pricing.Options{
		Lighting:        q.Lighting,
		Photography:     q.Photography,
		VideoVisuals:    q.VideoVisuals,
		AdditionalHours: q.AdditionalHours,
	}
}

type QuoteResponse struct {
	pricing.Quote
	FormattedTotal string `json:"formatted_total"`
}

func (r *QuoteResponse) FromQuote(quote pricing.Quote) {
	r.Quote = quote
	r.FormattedTotal = pricing.FormatTotal(quote.Total)
}

type SubmitResponse struct {
	ID             string `json:"id"`
	Total          int    `json:"total"`
	FormattedTotal string `json:"formatted_total"`
}

func (r *SubmitResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Total = model.Total
	r.FormattedTotal = pricing.FormatTotal(model.Total)
}

type BookingResponse struct {
	ID              string  `json:"id"`
	ClientName      string  `json:"client_name"`
	Email           string  `json:"email"`
	ContactPhone    string  `json:"contact_phone"`
	EventType       string  `json:"event_type"`
	GuestCount      int     `json:"guest_count"`
	VenueName       string  `json:"venue_name"`
	VenueLocation   string  `json:"venue_location"`
	EventDate       string  `json:"event_date"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	PaymentMethod   string  `json:"payment_method"`
	Lighting        bool    `json:"lighting"`
	Photography     bool    `json:"photography"`
	VideoVisuals    bool    `json:"video_visuals"`
	AdditionalHours int     `json:"additional_hours"`
	Total           int     `json:"total"`
	ReminderSent    bool    `json:"reminder_sent"`
	ReminderSentAt  *string `json:"reminder_sent_at,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.ClientName = model.ClientName
	r.Email = model.Email
	r.ContactPhone = model.ContactPhone
	r.EventType = model.EventType
	r.GuestCount = model.GuestCount
	r.VenueName = model.VenueName
	r.VenueLocation = model.VenueLocation
	r.EventDate = model.EventDate
	r.StartTime = model.StartTime
	r.EndTime = model.EndTime
	r.PaymentMethod = string(model.PaymentMethod)
	r.Lighting = model.Lighting
	r.Photography = model.Photography
	r.VideoVisuals = model.VideoVisuals
	r.AdditionalHours = model.AdditionalHours
	r.Total = model.Total
	r.ReminderSent = model.ReminderSent

	if model.ReminderSentAt != nil {
		r.ReminderSentAt = lo.ToPtr(model.ReminderSentAt.Format(constant.DateFormat))
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = lo.Map(models, func(mod model.Booking, _ int) BookingResponse {
		var res BookingResponse
		res.FromModel(mod)

		return res
	})
}

// BookingFilter narrows the admin listing. Empty fields are ignored.
type BookingFilter struct {
	EventFrom    string `json:"event_from"    validate:"omitempty,dateonly"`
	EventTo      string `json:"event_to"      validate:"omitempty,dateonly"`
	ReminderSent *bool  `json:"reminder_sent"`
}

func (f *BookingFilter) ToFilterGroup() (gDto.FilterGroup, error) {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if f.EventFrom != constant.Empty {
		from, err := timezone.Parse(constant.DateOnlyFormat, f.EventFrom)
		if err != nil {
			return group, failure.BadRequestFromString("event_from must be a YYYY-MM-DD date") //nolint:wrapcheck
		}

		group.Filters = append(group.Filters, gDto.Filter{
			ArgName:  "event_from",
			Field:    model.FieldEventTimestamp,
			Value:    from,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.TableName,
		})
	}

	if f.EventTo != constant.Empty {
		to, err := timezone.Parse(constant.DateOnlyFormat, f.EventTo)
		if err != nil {
			return group, failure.BadRequestFromString("event_to must be a YYYY-MM-DD date") //nolint:wrapcheck
		}

		// event_to is inclusive of the whole day
		group.Filters = append(group.Filters, gDto.Filter{
			ArgName:  "event_to",
			Field:    model.FieldEventTimestamp,
			Value:    to.AddDate(0, 0, 1),
			Operator: gDto.FilterOperatorLess,
			Table:    model.TableName,
		})
	}

	if f.ReminderSent != nil {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldReminderSent,
			Value:    *f.ReminderSent,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return group, nil
}

// SortableFields are the columns the admin listing may order by.
var SortableFields = []string{
	constant.FieldCreatedAt,
	model.FieldEventTimestamp,
	model.FieldClientName,
	model.FieldTotal,
}
