package validators

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Ramos-bot/GestOnGo-App/internal/domain/servico"
	"github.com/Ramos-bot/GestOnGo-App/internal/httperr"
	"github.com/Ramos-bot/GestOnGo-App/internal/models"
	"github.com/Ramos-bot/GestOnGo-App/internal/timezone"
)

const (
	MinNameLength      = 2
	MaxDescription     = 500
	MinPasswordLength  = 6
	DefaultPageLimit   = 50
	MaxPageLimit       = 100
	MaxPageNumber      = 10000
	DefaultCountryCode = "351"
)

var phoneNoise = regexp.MustCompile(`[^\d+]`)

// Report collects field failures so a request is rejected once, with every
// offending field listed.
type Report struct {
	fields []httperr.FieldError
}

func (r *Report) Add(field, message string) {
	r.fields = append(r.fields, httperr.FieldError{Field: field, Message: message})
}

func (r *Report) Addf(field, format string, args ...any) {
	r.Add(field, fmt.Sprintf(format, args...))
}

func (r *Report) OK() bool {
	return len(r.fields) == 0
}

// Err returns nil when nothing failed.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	return httperr.Validation(r.fields...)
}

// Rules holds the configuration dependent validations.
type Rules struct {
	clock            *timezone.Clock
	phone            []*regexp.Regexp
	checkEmailDomain bool
}

func New(countryCode string, clock *timezone.Clock, checkEmailDomain bool) *Rules {
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}
	cc := regexp.QuoteMeta(countryCode)

	return &Rules{
		clock: clock,
		phone: []*regexp.Regexp{
			regexp.MustCompile(`^\+` + cc + `\d{9}$`),
			regexp.MustCompile(`^` + cc + `\d{9}$`),
			regexp.MustCompile(`^\d{9}$`),
		},
		checkEmailDomain: checkEmailDomain,
	}
}

// Name trims and title-cases a person or client name.
func (r *Rules) Name(rep *Report, field, raw string) string {
	name := strings.TrimSpace(raw)
	if utf8.RuneCountInString(name) < MinNameLength {
		rep.Addf(field, "deve ter pelo menos %d caracteres", MinNameLength)
		return name
	}
	// Casers keep state, one per call.
	return cases.Title(language.Portuguese).String(name)
}

// Phone keeps digits and "+" only. Blank input means no phone.
func (r *Rules) Phone(rep *Report, field string, raw *string) *string {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil
	}

	clean := phoneNoise.ReplaceAllString(*raw, "")
	for _, re := range r.phone {
		if re.MatchString(clean) {
			return &clean
		}
	}

	rep.Add(field, "formato de telefone inválido")
	return nil
}

// Text trims optional free text; empty becomes absent.
func Text(raw *string) *string {
	if raw == nil {
		return nil
	}
	v := strings.TrimSpace(*raw)
	if v == "" {
		return nil
	}
	return &v
}

func Description(rep *Report, field string, raw *string) *string {
	v := Text(raw)
	if v != nil && utf8.RuneCountInString(*v) > MaxDescription {
		rep.Addf(field, "não pode exceder %d caracteres", MaxDescription)
	}
	return v
}

// ServiceDate rejects dates before today in the configured timezone.
func (r *Rules) ServiceDate(rep *Report, field string, d models.Date) {
	today := models.NewDate(r.clock.Today())
	if d.Before(today) {
		rep.Add(field, "a data do serviço não pode ser no passado")
	}
}

func Duration(rep *Report, field string, hours int, v servico.Variant) {
	if hours < servico.MinDuration || hours > v.MaxDuration {
		rep.Addf(field, "deve estar entre %d e %d horas", servico.MinDuration, v.MaxDuration)
	}
}

// ServiceType resolves the type of a service for the variant. Module tables
// impose their type; an explicit different literal is an error.
func ServiceType(rep *Report, field, raw string, v servico.Variant) servico.Type {
	t := servico.Type(strings.TrimSpace(raw))

	if v.IsModule() {
		if t != "" && t != v.FixedType {
			rep.Addf(field, "deve ser %q", v.FixedType)
		}
		return v.FixedType
	}

	if !t.Valid() {
		rep.Addf(field, "deve ser %q ou %q", servico.TypeGarden, servico.TypePool)
	}
	return t
}

func Status(rep *Report, field, raw string) servico.Status {
	s := servico.Status(strings.TrimSpace(raw))
	if !s.Valid() {
		rep.Add(field, "estado inválido")
	}
	return s
}

// Email lower-cases the address and, when enabled, checks that its domain
// resolves.
func (r *Rules) Email(rep *Report, field, raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if r.checkEmailDomain && !IsEmailDomainValid(email) {
		rep.Add(field, "domínio de email inexistente")
	}
	return email
}

func Password(rep *Report, field, raw string) {
	if utf8.RuneCountInString(raw) < MinPasswordLength {
		rep.Addf(field, "deve ter pelo menos %d caracteres", MinPasswordLength)
	}
}

// Page bounds list pagination.
// PageNumber checks 1-based page paging, keeping (number-1)*limit small.
func PageNumber(rep *Report, number, limit int) {
	if number < 1 || number > MaxPageNumber {
		rep.Addf("page", "deve estar entre 1 e %d", MaxPageNumber)
	}
	if limit < 1 || limit > MaxPageLimit {
		rep.Addf("limit", "deve estar entre 1 e %d", MaxPageLimit)
	}
}

func Page(rep *Report, offset, limit int) {
	if offset < 0 {
		rep.Add("offset", "não pode ser negativo")
	}
	if limit < 1 || limit > MaxPageLimit {
		rep.Addf("limit", "deve estar entre 1 e %d", MaxPageLimit)
	}
}
