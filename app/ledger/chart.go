package ledger

// ChartAccount is one row of the reference chart of accounts.
type ChartAccount struct {
	Number string `json:"number"`
	Label  string `json:"label"`
}

// defaultAccounts is the chart used by the school, following the OHADA
// numbering: 1 capitaux, 2 immobilisations, 3 stocks, 4 tiers, 5
// trésorerie, 6 charges, 7 produits, 28 amortissements.
var defaultAccounts = []ChartAccount{
	{Number: "10", Label: "Capital"},
	{Number: "131", Label: "Résultat net : bénéfice"},
	{Number: "139", Label: "Résultat net : perte"},
	{Number: "16", Label: "Emprunts et dettes assimilées"},

	{Number: "231", Label: "Bâtiments scolaires"},
	{Number: "241", Label: "Matériel et mobilier"},
	{Number: "244", Label: "Matériel informatique"},
	{Number: "28", Label: "Amortissements cumulés"},

	{Number: "311", Label: "Stocks de fournitures"},

	{Number: "401", Label: "Fournisseurs"},
	{Number: "411", Label: "Parents et élèves - frais à recevoir"},
	{Number: "421", Label: "Personnel - rémunérations dues"},
	{Number: "44", Label: "État et collectivités"},

	{Number: "521", Label: "Banque"},
	{Number: "571", Label: "Caisse"},

	{Number: "601", Label: "Achats de fournitures scolaires"},
	{Number: "605", Label: "Eau et électricité"},
	{Number: "611", Label: "Transport"},
	{Number: "622", Label: "Locations et charges locatives"},
	{Number: "625", Label: "Entretien et réparations"},
	{Number: "641", Label: "Impôts et taxes"},
	{Number: "661", Label: "Salaires du personnel"},
	{Number: "664", Label: "Primes et indemnités"},
	{Number: "681", Label: "Dotations aux amortissements"},

	{Number: "7061", Label: "Frais de scolarité"},
	{Number: "7062", Label: "Frais d'inscription"},
	{Number: "7063", Label: "Frais d'examen"},
	{Number: "707", Label: "Autres produits scolaires"},
	{Number: "77", Label: "Produits financiers"},
}

// Chart provides in-memory label lookup over the chart of accounts.
type Chart struct {
	accounts []ChartAccount
	byNumber map[string]ChartAccount
}

// NewChart creates a Chart from a slice of accounts.
func NewChart(accounts []ChartAccount) *Chart {
	byNumber := make(map[string]ChartAccount, len(accounts))
	for _, a := range accounts {
		byNumber[a.Number] = a
	}
	return &Chart{accounts: accounts, byNumber: byNumber}
}

// DefaultChart returns the built-in school chart of accounts.
func DefaultChart() *Chart {
	return NewChart(defaultAccounts)
}

// All returns every account in the chart.
func (c *Chart) All() []ChartAccount {
	return c.accounts
}

// Label returns the canonical label for an account number, or "" when the
// number is not in the chart.
func (c *Chart) Label(number string) string {
	if a, ok := c.byNumber[number]; ok {
		return a.Label
	}
	return ""
}

// Exists reports whether an account number is in the chart.
func (c *Chart) Exists(number string) bool {
	_, ok := c.byNumber[number]
	return ok
}
