package accounting

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportApp() *fiber.App {
	app := fiber.New()
	app.Get("/api/accounting/entries", GetEntriesAPI)
	app.Get("/api/accounting/grand-livre", GetGeneralLedgerAPI)
	app.Get("/api/accounting/balance", GetTrialBalanceAPI)
	app.Get("/api/accounting/compte-resultat", GetIncomeStatementAPI)
	app.Get("/api/accounting/bilan", GetBalanceSheetAPI)
	app.Get("/api/accounting/grand-livre/export", ExportGeneralLedgerAPI)
	app.Get("/api/accounting/balance/export", ExportTrialBalanceAPI)
	app.Get("/api/accounting/compte-resultat/export", ExportIncomeStatementAPI)
	app.Get("/api/accounting/bilan/export", ExportBalanceSheetAPI)
	return app
}

func errorMessage(t *testing.T, resp io.Reader) string {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp).Decode(&body))
	msg, _ := body["error"].(string)
	return msg
}

func TestReports_RequirePeriod(t *testing.T) {
	app := newReportApp()

	for _, path := range []string{
		"/api/accounting/entries",
		"/api/accounting/grand-livre",
		"/api/accounting/balance",
		"/api/accounting/compte-resultat",
		"/api/accounting/bilan",
		"/api/accounting/grand-livre/export",
		"/api/accounting/balance/export",
		"/api/accounting/compte-resultat/export",
		"/api/accounting/bilan/export",
	} {
		req := httptest.NewRequest("GET", path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode, path)
		assert.Contains(t, errorMessage(t, resp.Body), "from and to are required")
	}
}

func TestReports_RejectInvalidDates(t *testing.T) {
	app := newReportApp()

	req := httptest.NewRequest("GET", "/api/accounting/bilan?from=2025-13-40&to=2025-06-30", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Contains(t, errorMessage(t, resp.Body), "invalid from date")
}

func TestReports_RejectInvertedPeriod(t *testing.T) {
	app := newReportApp()

	req := httptest.NewRequest("GET", "/api/accounting/balance?from=2025-06-30&to=2025-06-01", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Contains(t, errorMessage(t, resp.Body), "to must not be before from")
}

func TestParsePeriod_KeepsLocalDayBoundaries(t *testing.T) {
	app := fiber.New()
	var from, to time.Time
	var parseErr error
	app.Get("/", func(c *fiber.Ctx) error {
		from, to, parseErr = parsePeriod(c)
		return c.SendStatus(200)
	})

	req := httptest.NewRequest("GET", "/?from=2025-01-01&to=2025-01-31", nil)
	_, err := app.Test(req)
	require.NoError(t, err)
	require.NoError(t, parseErr)

	// An entry stamped with local wall-clock time during the first hour of
	// the from day belongs to the period, not to the opening scan.
	early := time.Date(2025, time.January, 1, 0, 30, 0, 0, time.Local)
	assert.False(t, early.Before(from))

	// And the last minute of the to day is still inside the period.
	late := time.Date(2025, time.January, 31, 23, 59, 0, 0, time.Local)
	assert.False(t, late.After(to))

	// The day after to is out.
	next := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.Local)
	assert.True(t, next.After(to))
}

func TestParsePrefixes(t *testing.T) {
	app := fiber.New()
	var got []string
	app.Get("/", func(c *fiber.Ctx) error {
		got = parsePrefixes(c)
		return c.SendStatus(200)
	})

	req := httptest.NewRequest("GET", "/?prefixes=571,%206%20,,7", nil)
	_, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, []string{"571", "6", "7"}, got)
}

func TestParsePrefixes_Empty(t *testing.T) {
	app := fiber.New()
	var got []string
	app.Get("/", func(c *fiber.Ctx) error {
		got = parsePrefixes(c)
		return c.SendStatus(200)
	})

	req := httptest.NewRequest("GET", "/", nil)
	_, err := app.Test(req)
	require.NoError(t, err)
	assert.Nil(t, got)
}
