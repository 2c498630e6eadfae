package validation

import (
	"livecity/config"
	"livecity/internal/domains/booking/model"
	"livecity/internal/domains/booking/model/dto"
	"livecity/internal/domains/pricing"
	"livecity/shared/constant"
	"livecity/shared/failure"
	"livecity/shared/timezone"
	"livecity/shared/validator"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

type Rule string

const (
	RuleEmail      Rule = "email"
	RulePhone      Rule = "phone"
	RuleAddress    Rule = "address"
	RuleTimeWindow Rule = "time_window"
	RuleTerms      Rule = "terms"
)

const (
	phoneDigits      = 10
	minAddressLength = 5
	defaultLatestEnd = 2 * time.Hour
	day              = 24 * time.Hour
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Policy switches individual rules on or off. The terms rule cannot be disabled.
type Policy struct {
	Email      bool
	Phone      bool
	Address    bool
	TimeWindow bool
	CollectAll bool
	// LatestEnd is how far past the following midnight an event may run.
	LatestEnd time.Duration
}

func PolicyFromConfig(cfg *config.Config) Policy {
	latest := defaultLatestEnd

	if cfg.Validation.LatestEnd != constant.Empty {
		parsed, err := time.Parse(constant.TimeOfDayFormat, cfg.Validation.LatestEnd)
		if err != nil {
			log.Warn().Err(err).Str("latest_end", cfg.Validation.LatestEnd).Msg("invalid latest end time, using 02:00")
		} else {
			latest = sinceMidnight(parsed)
		}
	}

	return Policy{
		Email:      cfg.Validation.Email,
		Phone:      cfg.Validation.Phone,
		Address:    cfg.Validation.Address,
		TimeWindow: cfg.Validation.TimeWindow,
		CollectAll: cfg.Validation.CollectAll,
		LatestEnd:  latest,
	}
}

type rule struct {
	name    Rule
	field   string
	enabled func(Policy) bool
	check   func(Policy, *dto.CreateBookingRequest) (string, bool)
}

// rules run in this order; without CollectAll the first failure wins.
var rules = []rule{
	{
		name:    RuleEmail,
		field:   model.FieldEmail,
		enabled: func(p Policy) bool { return p.Email },
		check:   checkEmail,
	},
	{
		name:    RulePhone,
		field:   model.FieldContactPhone,
		enabled: func(p Policy) bool { return p.Phone },
		check:   checkPhone,
	},
	{
		name:    RuleAddress,
		field:   model.FieldVenueLocation,
		enabled: func(p Policy) bool { return p.Address },
		check:   checkAddress,
	},
	{
		name:    RuleTimeWindow,
		field:   model.FieldEndTime,
		enabled: func(p Policy) bool { return p.TimeWindow },
		check:   checkTimeWindow,
	},
	{
		name:    RuleTerms,
		field:   model.FieldAgreeToTerms,
		enabled: func(Policy) bool { return true },
		check:   checkTerms,
	},
}

type Validator struct {
	policy  Policy
	pricing pricing.Pricing
}

func New(policy Policy, prices pricing.Pricing) *Validator {
	return &Validator{
		policy:  policy,
		pricing: prices,
	}
}

// Check runs the field format tags and then the ordered booking rules.
// It returns a *failure.Failure carrying one Detail per broken rule.
func (v *Validator) Check(req *dto.CreateBookingRequest) error {
	if err := validator.ValidateStruct(req); err != nil {
		return err //nolint:wrapcheck
	}

	var details []failure.Detail

	for _, r := range rules {
		if !r.enabled(v.policy) {
			continue
		}

		msg, ok := r.check(v.policy, req)
		if ok {
			continue
		}

		details = append(details, failure.Detail{Field: r.field, Rule: string(r.name), Message: msg})

		if !v.policy.CollectAll {
			break
		}
	}

	return failure.Invalid(details...) //nolint:wrapcheck
}

// Validate turns raw form input into a booking ready to be stored.
// Nothing is persisted here.
func (v *Validator) Validate(req dto.CreateBookingRequest, now time.Time) (model.Booking, error) {
	if err := v.Check(&req); err != nil {
		return model.Booking{}, err
	}

	eventTimestamp, err := timezone.Parse(constant.DateOnlyFormat, req.EventDate)
	if err != nil {
		return model.Booking{}, failure.Invalid(failure.Detail{ //nolint:wrapcheck
			Field:   model.FieldEventDate,
			Rule:    "dateonly",
			Message: "event_date must be a date in YYYY-MM-DD format",
		})
	}

	total := v.pricing.ComputeTotal(req.PricingOptions())

	return req.ToModel(total, eventTimestamp, now), nil
}

func checkEmail(_ Policy, req *dto.CreateBookingRequest) (string, bool) {
	return "email must be a valid email address", emailPattern.MatchString(req.Email)
}

func checkPhone(_ Policy, req *dto.CreateBookingRequest) (string, bool) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}

		return -1
	}, req.ContactPhone)

	return "contact_phone must contain exactly 10 digits", utf8.RuneCountInString(digits) == phoneDigits
}

// checkAddress only screens out obvious junk, it does not verify the address exists.
func checkAddress(_ Policy, req *dto.CreateBookingRequest) (string, bool) {
	address := strings.TrimSpace(req.VenueLocation)
	if address == constant.Empty {
		return constant.Empty, true
	}

	hasLetter := strings.IndexFunc(address, unicode.IsLetter) >= 0
	hasDigit := strings.IndexFunc(address, unicode.IsDigit) >= 0

	return "venue_location must look like a street address with a number and a street name",
		hasLetter && hasDigit && utf8.RuneCountInString(address) >= minAddressLength
}

func checkTimeWindow(policy Policy, req *dto.CreateBookingRequest) (string, bool) {
	if req.StartTime == constant.Empty || req.EndTime == constant.Empty {
		return constant.Empty, true
	}

	startAt, err := time.Parse(constant.TimeOfDayFormat, req.StartTime)
	if err != nil {
		return "start_time must be in HH:MM format", false
	}

	endAt, err := time.Parse(constant.TimeOfDayFormat, req.EndTime)
	if err != nil {
		return "end_time must be in HH:MM format", false
	}

	start, end := sinceMidnight(startAt), sinceMidnight(endAt)

	// an end at or before the start means the event runs past midnight
	if end <= start {
		end += day
	}

	if end > day+policy.LatestEnd || start >= end {
		return "events may run past midnight but must end by " + formatClock(policy.LatestEnd), false
	}

	return constant.Empty, true
}

func checkTerms(_ Policy, req *dto.CreateBookingRequest) (string, bool) {
	return "agree_to_terms must be accepted", req.AgreeToTerms
}

func sinceMidnight(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
}

func formatClock(d time.Duration) string {
	return time.Time{}.Add(d).Format(constant.TimeOfDayFormat)
}
