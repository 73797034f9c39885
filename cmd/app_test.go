package cmd

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/stockplan"
	"github.com/etnz/stockplan/date"
	"github.com/google/subcommands"
)

// setup points the commands to a fresh portfolio file.
func setup(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.json")
	oldConfig, oldLogger := config, logger
	t.Cleanup(func() { config, logger = oldConfig, oldLogger })
	config = &Config{Portfolio: path, Currency: "EUR", Growth: 0.05, Horizon: 3, LogLevel: "error"}
	logger = NewLoggerWithOutput("error", io.Discard)
	return path
}

// run parses args as the command line of c and executes it.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("%s %v: %v", c.Name(), args, err)
	}
	return c.Execute(context.Background(), fs)
}

func load(t *testing.T, path string) stockplan.Portfolio {
	t.Helper()
	p, err := stockplan.LoadPortfolio(path)
	if err != nil {
		t.Fatalf("LoadPortfolio() unexpected error: %v", err)
	}
	return p
}

func TestCommands_EnrollAndValue(t *testing.T) {
	path := setup(t)

	steps := []struct {
		cmd  subcommands.Command
		args []string
	}{
		{&programCmd{}, []string{"-y", "2023", "-rate", "0.035", "-term", "5", "-down", "0.2", "-free", "0.25",
			"-v", "purchase:1:0.5:capital_gains", "-v", "purchase:2:0.5:capital_gains", "-v", "free:3:1:income"}},
		{&enrollCmd{}, []string{"-d", "2023-06-15", "-shares", "100", "-price", "20"}},
		{&priceCmd{}, []string{"-d", "2024-06-14", "25"}},
		{&priceCmd{}, []string{"-d", "2025-06-13", "30"}},
		{&valueCmd{}, []string{"-d", "2025-12-31"}},
		{&taxesCmd{}, []string{"-y", "2024"}},
		{&interestCmd{}, []string{"-from", "2023", "-to", "2025"}},
		{&projectCmd{}, []string{"-from", "2026"}},
		{&checkCmd{}, nil},
		{&fmtCmd{}, nil},
	}
	for _, s := range steps {
		if got := run(t, s.cmd, s.args...); got != subcommands.ExitSuccess {
			t.Fatalf("%s %v = %v, want success", s.cmd.Name(), s.args, got)
		}
	}

	p := load(t, path)
	if p.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", p.Currency)
	}
	if len(p.Grants) != 2 || len(p.Loans) != 1 || len(p.StockPrices) != 2 || len(p.ProgramConfigs) != 1 {
		t.Fatalf("portfolio = %d grants, %d loans, %d prices, %d programs, want 2, 1, 2, 1",
			len(p.Grants), len(p.Loans), len(p.StockPrices), len(p.ProgramConfigs))
	}
	if !p.Loans[0].PrincipalAmount.Equal(stockplan.M(1600, "")) {
		t.Errorf("loan principal = %v, want 1600", p.Loans[0].PrincipalAmount)
	}

	// sell some shares of the purchase grant, then pay the loan off.
	purchase, loan := p.Grants[0].ID, p.Loans[0].ID
	if got := run(t, &sellCmd{}, "-d", "2025-07-01", "-grant", purchase, "-shares", "10", "-price", "30", "-reason", "loan_payoff", "-loan", loan); got != subcommands.ExitSuccess {
		t.Fatalf("sell = %v, want success", got)
	}
	if got := run(t, &loanStatusCmd{}, loan, "paid_off"); got != subcommands.ExitSuccess {
		t.Fatalf("loan-status = %v, want success", got)
	}

	p = load(t, path)
	if s := p.StockSales[0]; !s.CostBasis.Equal(stockplan.M(20, "")) || s.RelatedLoanID != loan {
		t.Errorf("sale = %+v, want the grant price as cost basis", s)
	}
	if p.Loans[0].Status != stockplan.PaidOff {
		t.Errorf("loan status = %q, want paid_off", p.Loans[0].Status)
	}
}

func TestCommands_Errors(t *testing.T) {
	setup(t)
	tests := []struct {
		name string
		cmd  subcommands.Command
		args []string
		want subcommands.ExitStatus
	}{
		{"bad date", &valueCmd{}, []string{"-d", "someday"}, subcommands.ExitUsageError},
		{"empty grant", &addGrantCmd{}, []string{"-type", "purchase"}, subcommands.ExitUsageError},
		{"unknown grant type", &addGrantCmd{}, []string{"-type", "gift", "-t", "2024-01-01:1"}, subcommands.ExitUsageError},
		{"loan without maturity", &addLoanCmd{}, []string{"-principal", "100", "-d", "2024-01-01"}, subcommands.ExitUsageError},
		{"unknown loan", &loanStatusCmd{}, []string{"nope", "paid_off"}, subcommands.ExitFailure},
		{"invalid status", &loanStatusCmd{}, []string{"nope", "closed"}, subcommands.ExitUsageError},
		{"enroll without program", &enrollCmd{}, []string{"-shares", "1", "-price", "1"}, subcommands.ExitFailure},
		{"project without price", &projectCmd{}, nil, subcommands.ExitFailure},
		{"reversed years", &interestCmd{}, []string{"-from", "2025", "-to", "2024"}, subcommands.ExitUsageError},
		{"delete unknown kind", &deleteCmd{}, []string{"gift", "x"}, subcommands.ExitUsageError},
		{"delete unknown grant", &deleteCmd{}, []string{"grant", "x"}, subcommands.ExitFailure},
		{"price not a number", &priceCmd{}, []string{"cheap"}, subcommands.ExitUsageError},
		{"merge nothing", &mergeCmd{}, nil, subcommands.ExitUsageError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := run(t, tc.cmd, tc.args...); got != tc.want {
				t.Errorf("%s %v = %v, want %v", tc.cmd.Name(), tc.args, got, tc.want)
			}
		})
	}
}

func TestCommands_RecordsAndMerge(t *testing.T) {
	path := setup(t)

	if got := run(t, &addGrantCmd{}, "-id", "g1", "-type", "bonus", "-d", "2024-03-01", "-t", "2025-03-01:10", "-t", "2026-03-01:10:none"); got != subcommands.ExitSuccess {
		t.Fatalf("add-grant = %v, want success", got)
	}
	if got := run(t, &addLoanCmd{}, "-id", "l1", "-type", "tax", "-principal", "500", "-rate", "0.02", "-d", "2024-03-01", "-years", "3", "-grant", "g1"); got != subcommands.ExitSuccess {
		t.Fatalf("add-loan = %v, want success", got)
	}
	if got := run(t, &exchangeCmd{}, "-d", "2025-04-01", "-from", "g1", "-shares", "5", "-price", "12"); got != subcommands.ExitSuccess {
		t.Fatalf("exchange = %v, want success", got)
	}

	other := filepath.Join(filepath.Dir(path), "other.json")
	err := stockplan.SavePortfolio(other, stockplan.Portfolio{
		Loans: []stockplan.Loan{{ID: "l1", Type: stockplan.TaxLoan, PrincipalAmount: stockplan.M(400, ""), AnnualInterestRate: stockplan.R(0.02),
			OriginationDate: date.New(2024, 3, 1), MaturityDate: date.New(2027, 3, 1), Status: stockplan.Active}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := run(t, &mergeCmd{}, other); got != subcommands.ExitSuccess {
		t.Fatalf("merge = %v, want success", got)
	}

	prices := filepath.Join(filepath.Dir(path), "prices.json")
	doc := `{"data":[{"day":"2025-01-02","close":"11,5"},{"day":"2025-01-03","close":12}]}`
	if err := os.WriteFile(prices, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	if got := run(t, &importPricesCmd{}, "-items", "$.data[*]", "-date", "$.day", "-price", "$.close", prices); got != subcommands.ExitSuccess {
		t.Fatalf("import-prices = %v, want success", got)
	}

	p := load(t, path)
	if len(p.Grants) != 1 || !p.Grants[0].TotalShares.Equal(stockplan.Q(20)) || p.Grants[0].Type != stockplan.Bonus {
		t.Errorf("grants = %+v, want a single bonus grant of 20 shares", p.Grants)
	}
	if len(p.Loans) != 1 || !p.Loans[0].PrincipalAmount.Equal(stockplan.M(400, "")) {
		t.Errorf("loans = %+v, want l1 replaced by the merged one", p.Loans)
	}
	if len(p.ShareExchanges) != 1 || !p.ShareExchanges[0].ValueAtExchange.Equal(stockplan.M(60, "")) {
		t.Errorf("exchanges = %+v, want 5 shares worth 60", p.ShareExchanges)
	}
	if len(p.StockPrices) != 2 {
		t.Errorf("prices = %+v, want 2 imported prices", p.StockPrices)
	}

	if got := run(t, &deleteCmd{}, "price", "2025-01-02", "2025-01-03"); got != subcommands.ExitSuccess {
		t.Fatalf("delete = %v, want success", got)
	}
	if got := run(t, &deleteCmd{}, "exchange", p.ShareExchanges[0].ID); got != subcommands.ExitSuccess {
		t.Fatalf("delete = %v, want success", got)
	}
	p = load(t, path)
	if len(p.StockPrices) != 0 || len(p.ShareExchanges) != 0 {
		t.Errorf("portfolio = %+v, want no price and no exchange left", p)
	}

	chart := filepath.Join(filepath.Dir(path), "chart.png")
	run(t, &priceCmd{}, "-d", "2025-01-02", "12")
	if got := run(t, &chartCmd{}, "-o", chart, "-from", "2025", "-to", "2030"); got != subcommands.ExitSuccess {
		t.Fatalf("chart = %v, want success", got)
	}
	if info, err := os.Stat(chart); err != nil || info.Size() == 0 {
		t.Errorf("chart file = %v, %v, want a PNG", info, err)
	}
}
