package accounting

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"gabkut-schola/app/config"
	"gabkut-schola/app/ledger"
)

// parsePeriod reads the mandatory from/to query parameters. Dates are
// interpreted in the application's local time zone, the same zone entries
// are stamped in, and to is widened to the end of its day so entries
// timestamped during that day stay inside the period.
func parsePeriod(c *fiber.Ctx) (time.Time, time.Time, error) {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return time.Time{}, time.Time{}, errors.New("from and to are required (YYYY-MM-DD)")
	}

	from, err := time.ParseInLocation("2006-01-02", fromStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid from date, expected YYYY-MM-DD")
	}
	to, err := time.ParseInLocation("2006-01-02", toStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid to date, expected YYYY-MM-DD")
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, errors.New("to must not be before from")
	}

	return from, to.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
}

func parsePrefixes(c *fiber.Ctx) []string {
	raw := c.Query("prefixes")
	if raw == "" {
		return nil
	}
	prefixes := []string{}
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			prefixes = append(prefixes, p)
		}
	}
	return prefixes
}

// periodData bundles everything the report builders need for one period.
type periodData struct {
	Opening       map[string]ledger.Totals
	PeriodEntries []ledger.Entry
	Balances      []ledger.AccountBalance
	LabelOf       func(string) string
}

func loadPeriod(db *sql.DB, from, to time.Time, prefixes []string) (*periodData, error) {
	openingEntries, err := GetEntriesBefore(db, from)
	if err != nil {
		return nil, err
	}
	periodEntries, err := GetEntriesBetween(db, from, to)
	if err != nil {
		return nil, err
	}
	chart, err := GetChart(db)
	if err != nil {
		return nil, err
	}

	labelOf := ledger.LabelResolver(ledger.Labels(openingEntries, periodEntries), chart)
	opening := ledger.Accumulate(openingEntries, prefixes)
	period := ledger.Accumulate(periodEntries, prefixes)

	return &periodData{
		Opening:       opening,
		PeriodEntries: periodEntries,
		Balances:      ledger.Aggregate(opening, period, labelOf),
		LabelOf:       labelOf,
	}, nil
}

func GetChartAPI(c *fiber.Ctx) error {
	chart, err := GetChart(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch chart of accounts"})
	}
	return c.JSON(fiber.Map{"accounts": chart.All()})
}

func GetEntriesAPI(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	entries, err := GetEntriesBetween(config.GetDB(), from, to)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch journal entries"})
	}

	return c.JSON(fiber.Map{
		"entries": entries,
		"count":   len(entries),
	})
}

func CreateEntryAPI(c *fiber.Ctx) error {
	var e ledger.Entry
	if err := c.BodyParser(&e); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if e.Label == "" {
		return c.Status(400).JSON(fiber.Map{"error": "label is required"})
	}

	if err := CreateEntry(config.GetDB(), &e); err != nil {
		if errors.Is(err, ledger.ErrTooFewLines) || errors.Is(err, ledger.ErrMissingAccount) ||
			strings.HasPrefix(err.Error(), "ledger:") {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create journal entry"})
	}

	return c.Status(201).JSON(fiber.Map{
		"entry":    e,
		"balanced": e.Balanced(),
	})
}

func GetGeneralLedgerAPI(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	prefixes := parsePrefixes(c)

	data, err := loadPeriod(config.GetDB(), from, to, prefixes)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build grand livre"})
	}

	accounts := ledger.BuildGeneralLedger(data.PeriodEntries, data.Opening, prefixes, data.LabelOf)
	return c.JSON(fiber.Map{
		"from":     c.Query("from"),
		"to":       c.Query("to"),
		"accounts": accounts,
	})
}

func GetTrialBalanceAPI(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	data, err := loadPeriod(config.GetDB(), from, to, parsePrefixes(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build balance des comptes"})
	}

	tb := ledger.BuildTrialBalance(data.Balances)
	return c.JSON(fiber.Map{
		"from":    c.Query("from"),
		"to":      c.Query("to"),
		"balance": tb,
	})
}

func GetIncomeStatementAPI(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	data, err := loadPeriod(config.GetDB(), from, to, nil)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build compte de résultat"})
	}

	statement := ledger.BuildIncomeStatement(data.Balances)
	return c.JSON(fiber.Map{
		"from":            c.Query("from"),
		"to":              c.Query("to"),
		"compte_resultat": statement,
	})
}

func GetBalanceSheetAPI(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	data, err := loadPeriod(config.GetDB(), from, to, nil)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build bilan"})
	}

	statement := ledger.BuildIncomeStatement(data.Balances)
	bilan := ledger.BuildBalanceSheet(data.Balances, statement.Resultat)
	return c.JSON(fiber.Map{
		"from":  c.Query("from"),
		"to":    c.Query("to"),
		"bilan": bilan,
	})
}
