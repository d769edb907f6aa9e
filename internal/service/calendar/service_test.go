package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontoflow/ponto-backend-go/internal/domain/calendar"
)

type stubCalendarRepo struct {
	holidays []calendar.Holiday
	recesses []calendar.Recess
}

func (s *stubCalendarRepo) ListHolidays(_ context.Context, _ string) ([]calendar.Holiday, error) {
	return s.holidays, nil
}

func (s *stubCalendarRepo) ListRecesses(_ context.Context, _ string) ([]calendar.Recess, error) {
	return s.recesses, nil
}

func (s *stubCalendarRepo) CreateHoliday(_ context.Context, h calendar.Holiday) (calendar.Holiday, error) {
	h.ID = "hol-1"
	return h, nil
}

func (s *stubCalendarRepo) CreateRecess(_ context.Context, r calendar.Recess) (calendar.Recess, error) {
	r.ID = "rec-1"
	return r, nil
}

func authedContext(t *testing.T, companyID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"company_id": companyID})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestListHolidays_DateColumnFormatsToItsOwnDay(t *testing.T) {
	// DATE columns scan as midnight UTC; the rendered date must not shift
	// when the service runs west of UTC.
	loc := time.FixedZone("BRT", -3*60*60)
	repo := &stubCalendarRepo{holidays: []calendar.Holiday{{
		ID:    "hol-1",
		Date:  time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC),
		Label: "Consciência Negra",
	}}}
	svc := NewCalendarService(repo, loc)

	got, err := svc.ListHolidays(authedContext(t, "company-1"))
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "2025-11-20", got[0].Date)
	assert.Equal(t, "Consciência Negra", got[0].Label)
}

func TestListRecesses_DateColumnsFormatToTheirOwnDays(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	repo := &stubCalendarRepo{recesses: []calendar.Recess{{
		ID:        "rec-1",
		Label:     "Recesso de Fim de Ano",
		StartDate: time.Date(2025, time.December, 22, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC),
	}}}
	svc := NewCalendarService(repo, loc)

	got, err := svc.ListRecesses(authedContext(t, "company-1"))
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "2025-12-22", got[0].StartDate)
	assert.Equal(t, "2026-01-02", got[0].EndDate)
}

func TestCreateHoliday_EchoesRequestedDate(t *testing.T) {
	svc := NewCalendarService(&stubCalendarRepo{}, time.FixedZone("BRT", -3*60*60))

	got, err := svc.CreateHoliday(authedContext(t, "company-1"), calendar.CreateHolidayRequest{
		Date:  "2025-11-20",
		Label: "Consciência Negra",
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-11-20", got.Date)
}

func TestCreateRecess_InvalidRangeRejected(t *testing.T) {
	svc := NewCalendarService(&stubCalendarRepo{}, time.UTC)

	_, err := svc.CreateRecess(authedContext(t, "company-1"), calendar.CreateRecessRequest{
		Label:     "Recesso",
		StartDate: "2025-12-23",
		EndDate:   "2025-12-22",
	})
	assert.Error(t, err)
}

func TestListHolidays_WithoutClaimsFails(t *testing.T) {
	svc := NewCalendarService(&stubCalendarRepo{}, time.UTC)

	_, err := svc.ListHolidays(context.Background())
	assert.Error(t, err)
}
