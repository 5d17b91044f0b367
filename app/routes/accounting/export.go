package accounting

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"gabkut-schola/app/config"
	"gabkut-schola/app/ledger"
)

func sendCSV(c *fiber.Ctx, filename string, records [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to write CSV"})
	}

	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(buf.Bytes())
}

func ExportGeneralLedgerAPI(c *fiber.Ctx) error {
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

	records := [][]string{
		{"Compte", "Libellé compte", "Date", "Libellé écriture", "Débit", "Crédit", "Solde"},
	}
	for _, a := range accounts {
		records = append(records, []string{
			a.AccountNumber, a.Label, "", "Solde initial", "", "", a.Opening.StringFixed(2),
		})
		for _, m := range a.Movements {
			records = append(records, []string{
				a.AccountNumber, a.Label, m.Date.Format("2006-01-02"), m.Label,
				m.Debit.StringFixed(2), m.Credit.StringFixed(2), "",
			})
		}
		records = append(records, []string{
			a.AccountNumber, a.Label, "", "Solde final",
			a.PeriodDebit.StringFixed(2), a.PeriodCredit.StringFixed(2), a.Closing.StringFixed(2),
		})
	}

	filename := fmt.Sprintf("grand_livre_%s_%s.csv", c.Query("from"), c.Query("to"))
	return sendCSV(c, filename, records)
}

func ExportTrialBalanceAPI(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	data, err := loadPeriod(config.GetDB(), from, to, parsePrefixes(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build balance des comptes"})
	}
	tb := ledger.BuildTrialBalance(data.Balances)

	records := [][]string{
		{"Compte", "Libellé", "Solde initial", "Débit période", "Crédit période", "Solde final"},
	}
	for _, row := range tb.Rows {
		records = append(records, []string{
			row.AccountNumber, row.Label,
			row.Opening.StringFixed(2), row.PeriodDebit.StringFixed(2),
			row.PeriodCredit.StringFixed(2), row.Closing.StringFixed(2),
		})
	}
	records = append(records, []string{
		"TOTAL", "",
		tb.TotalOpening.StringFixed(2), tb.TotalDebit.StringFixed(2),
		tb.TotalCredit.StringFixed(2), tb.TotalClosing.StringFixed(2),
	})

	filename := fmt.Sprintf("balance_%s_%s.csv", c.Query("from"), c.Query("to"))
	return sendCSV(c, filename, records)
}

func ExportIncomeStatementAPI(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	data, err := loadPeriod(config.GetDB(), from, to, nil)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build compte de résultat"})
	}
	statement := ledger.BuildIncomeStatement(data.Balances)

	records := [][]string{{"Section", "Compte", "Libellé", "Montant"}}
	for _, l := range statement.Charges {
		records = append(records, []string{"Charges", l.AccountNumber, l.Label, l.Amount.StringFixed(2)})
	}
	for _, l := range statement.Produits {
		records = append(records, []string{"Produits", l.AccountNumber, l.Label, l.Amount.StringFixed(2)})
	}
	records = append(records,
		[]string{"Total charges", "", "", statement.TotalCharges.StringFixed(2)},
		[]string{"Total produits", "", "", statement.TotalProduits.StringFixed(2)},
		[]string{"Résultat", "", "", statement.Resultat.StringFixed(2)},
	)

	filename := fmt.Sprintf("compte_resultat_%s_%s.csv", c.Query("from"), c.Query("to"))
	return sendCSV(c, filename, records)
}

func ExportBalanceSheetAPI(c *fiber.Ctx) error {
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

	records := [][]string{{"Section", "Compte", "Libellé", "Montant"}}
	for _, l := range bilan.Actif {
		records = append(records, []string{"Actif", l.AccountNumber, l.Label, l.Amount.StringFixed(2)})
	}
	for _, l := range bilan.Passif {
		records = append(records, []string{"Passif", l.AccountNumber, l.Label, l.Amount.StringFixed(2)})
	}
	records = append(records,
		[]string{"Total actif", "", "", bilan.TotalActif.StringFixed(2)},
		[]string{"Total passif", "", "", bilan.TotalPassif.StringFixed(2)},
	)

	filename := fmt.Sprintf("bilan_%s_%s.csv", c.Query("from"), c.Query("to"))
	return sendCSV(c, filename, records)
}
