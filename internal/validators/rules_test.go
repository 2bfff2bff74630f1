package validators

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramos-bot/GestOnGo-App/internal/domain/servico"
	"github.com/Ramos-bot/GestOnGo-App/internal/httperr"
	"github.com/Ramos-bot/GestOnGo-App/internal/models"
	"github.com/Ramos-bot/GestOnGo-App/internal/timezone"
)

func newRules() *Rules {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return New("351", timezone.FixedClock(now, "Europe/Lisbon"), false)
}

func ptr(s string) *string { return &s }

func TestName(t *testing.T) {
	r := newRules()

	cases := map[string]string{
		"  joão silva ": "João Silva",
		"MARIA":         "Maria",
		"ana":           "Ana",
	}
	for in, want := range cases {
		var rep Report
		assert.Equal(t, want, r.Name(&rep, "nome", in))
		assert.True(t, rep.OK(), in)
	}
}

func TestName_TooShort(t *testing.T) {
	r := newRules()

	for _, in := range []string{"", " ", " a ", "x"} {
		var rep Report
		r.Name(&rep, "nome", in)
		assert.False(t, rep.OK(), "%q should fail", in)
	}
}

func TestPhone_AcceptedForms(t *testing.T) {
	r := newRules()

	cases := map[string]string{
		"912345678":          "912345678",
		"912 345 678":        "912345678",
		"+351 912 345 678":   "+351912345678",
		"351-912-345-678":    "351912345678",
		"(+351) 912.345.678": "+351912345678",
	}
	for in, want := range cases {
		var rep Report
		got := r.Phone(&rep, "telefone", ptr(in))
		require.True(t, rep.OK(), in)
		require.NotNil(t, got, in)
		assert.Equal(t, want, *got)
	}
}

func TestPhone_Rejected(t *testing.T) {
	r := newRules()

	for _, in := range []string{"12345", "+44912345678", "9123456789", "+3519123456", "abc"} {
		var rep Report
		assert.Nil(t, r.Phone(&rep, "telefone", ptr(in)))
		assert.False(t, rep.OK(), in)
	}
}

func TestPhone_BlankIsAbsent(t *testing.T) {
	r := newRules()

	var rep Report
	assert.Nil(t, r.Phone(&rep, "telefone", nil))
	assert.Nil(t, r.Phone(&rep, "telefone", ptr("   ")))
	assert.True(t, rep.OK())
}

func TestPhone_OtherCountryCode(t *testing.T) {
	r := New("34", timezone.NewClock("Europe/Madrid"), false)

	var rep Report
	got := r.Phone(&rep, "telefone", ptr("+34 612 345 678"))
	require.True(t, rep.OK())
	assert.Equal(t, "+34612345678", *got)
}

func TestText(t *testing.T) {
	assert.Nil(t, Text(nil))
	assert.Nil(t, Text(ptr("   ")))
	assert.Equal(t, "Rua A", *Text(ptr("  Rua A ")))
}

func TestDescription(t *testing.T) {
	var rep Report
	assert.Nil(t, Description(&rep, "descricao", ptr("")))
	assert.True(t, rep.OK())

	Description(&rep, "descricao", ptr(strings.Repeat("á", MaxDescription)))
	assert.True(t, rep.OK())

	Description(&rep, "descricao", ptr(strings.Repeat("a", MaxDescription+1)))
	assert.False(t, rep.OK())
}

func TestServiceDate(t *testing.T) {
	r := newRules()

	today, _ := models.ParseDate("2026-03-10")
	yesterday, _ := models.ParseDate("2026-03-09")

	var ok Report
	r.ServiceDate(&ok, "data_servico", today)
	assert.True(t, ok.OK())

	var bad Report
	r.ServiceDate(&bad, "data_servico", yesterday)
	assert.False(t, bad.OK())
}

func TestServiceDate_UsesBusinessTimezone(t *testing.T) {
	// 23:30 UTC on 31 May is already 1 June in Lisbon (summer time).
	now := time.Date(2026, 5, 31, 23, 30, 0, 0, time.UTC)
	r := New("351", timezone.FixedClock(now, "Europe/Lisbon"), false)

	may31, _ := models.ParseDate("2026-05-31")

	var rep Report
	r.ServiceDate(&rep, "data_servico", may31)
	assert.False(t, rep.OK())
}

func TestDuration(t *testing.T) {
	cases := []struct {
		hours   int
		variant servico.Variant
		ok      bool
	}{
		{1, servico.Base, true},
		{12, servico.Base, true},
		{13, servico.Base, false},
		{0, servico.Base, false},
		{24, servico.Garden, true},
		{25, servico.Pool, false},
	}
	for _, tc := range cases {
		var rep Report
		Duration(&rep, "duracao_horas", tc.hours, tc.variant)
		assert.Equal(t, tc.ok, rep.OK(), "%d h in %s", tc.hours, tc.variant.Table)
	}
}

func TestServiceType(t *testing.T) {
	var rep Report
	assert.Equal(t, servico.TypePool, ServiceType(&rep, "tipo", "piscina", servico.Base))
	assert.True(t, rep.OK())

	ServiceType(&rep, "tipo", "limpeza", servico.Base)
	assert.False(t, rep.OK())
}

func TestServiceType_ModuleForcesType(t *testing.T) {
	var rep Report
	assert.Equal(t, servico.TypeGarden, ServiceType(&rep, "tipo", "", servico.Garden))
	assert.True(t, rep.OK())

	ServiceType(&rep, "tipo", "piscina", servico.Garden)
	assert.False(t, rep.OK())
}

func TestStatus(t *testing.T) {
	for _, s := range servico.Statuses {
		var rep Report
		Status(&rep, "status", string(s))
		assert.True(t, rep.OK(), s)
	}

	var rep Report
	Status(&rep, "status", "pendente")
	assert.False(t, rep.OK())
}

func TestEmailAndPassword(t *testing.T) {
	r := newRules()

	var rep Report
	assert.Equal(t, "ana@example.com", r.Email(&rep, "email", " Ana@Example.COM "))
	Password(&rep, "senha", "123456")
	assert.True(t, rep.OK())

	Password(&rep, "senha", "12345")
	assert.False(t, rep.OK())
}

func TestPage(t *testing.T) {
	var ok Report
	Page(&ok, 0, 1)
	Page(&ok, 10, MaxPageLimit)
	assert.True(t, ok.OK())

	var bad Report
	Page(&bad, -1, 0)
	assert.False(t, bad.OK())
}

func TestPageNumber(t *testing.T) {
	var ok Report
	PageNumber(&ok, 1, 1)
	PageNumber(&ok, MaxPageNumber, MaxPageLimit)
	assert.True(t, ok.OK())

	for _, number := range []int{0, -3, MaxPageNumber + 1, 1 << 62} {
		var bad Report
		PageNumber(&bad, number, DefaultPageLimit)
		assert.False(t, bad.OK(), number)
	}
}

func TestReport_ErrCollectsAllFields(t *testing.T) {
	var rep Report
	assert.NoError(t, rep.Err())

	rep.Add("nome", "curto")
	rep.Add("telefone", "inválido")

	var appErr *httperr.Error
	require.ErrorAs(t, rep.Err(), &appErr)
	assert.Equal(t, httperr.KindValidation, appErr.Kind)
	assert.Len(t, appErr.Fields, 2)
}

func TestIsEmailDomainValid_Malformed(t *testing.T) {
	assert.False(t, IsEmailDomainValid("semarroba"))
	assert.False(t, IsEmailDomainValid("ana@"))
}

type fakeResolver struct {
	mx  map[string][]*net.MX
	ips map[string][]net.IPAddr
}

func (f fakeResolver) LookupMX(_ context.Context, name string) ([]*net.MX, error) {
	if mx, ok := f.mx[name]; ok {
		return mx, nil
	}
	return nil, &net.DNSError{Err: "no such host", Name: name, IsNotFound: true}
}

func (f fakeResolver) LookupIPAddr(_ context.Context, host string) ([]net.IPAddr, error) {
	if ips, ok := f.ips[host]; ok {
		return ips, nil
	}
	return nil, &net.DNSError{Err: "no such host", Name: host, IsNotFound: true}
}

func TestEmailDomainResolves(t *testing.T) {
	r := fakeResolver{
		mx:  map[string][]*net.MX{"gestongo.pt": {{Host: "mail.gestongo.pt.", Pref: 10}}},
		ips: map[string][]net.IPAddr{"jardins.pt": {{IP: net.IPv4(10, 0, 0, 1)}}},
	}
	ctx := context.Background()

	assert.True(t, EmailDomainResolves(ctx, r, "ana@gestongo.pt"))
	assert.True(t, EmailDomainResolves(ctx, r, "rui@Jardins.PT."))
	assert.False(t, EmailDomainResolves(ctx, r, "rui@inexistente.pt"))
	assert.False(t, EmailDomainResolves(ctx, r, "a@b@gestongo.pt"))
}
