// Package cmd implements the CLI application to value and project an
// employee stock plan.
package cmd

import (
	"cmp"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockplan"
	"github.com/etnz/stockplan/date"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&valueCmd{}, "reports")
	c.Register(&taxesCmd{}, "reports")
	c.Register(&interestCmd{}, "reports")
	c.Register(&projectCmd{}, "reports")
	c.Register(&chartCmd{}, "reports")

	c.Register(&addGrantCmd{}, "records")
	c.Register(&addLoanCmd{}, "records")
	c.Register(&loanStatusCmd{}, "records")
	c.Register(&exchangeCmd{}, "records")
	c.Register(&sellCmd{}, "records")
	c.Register(&priceCmd{}, "records")
	c.Register(&importPricesCmd{}, "records")
	c.Register(&deleteCmd{}, "records")

	c.Register(&programCmd{}, "programs")
	c.Register(&enrollCmd{}, "programs")

	c.Register(&checkCmd{}, "file")
	c.Register(&fmtCmd{}, "file")
	c.Register(&mergeCmd{}, "file")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	portfolioFile = flag.String("portfolio", "", "Path to the portfolio file (default from config, then portfolio.json)")
	configFile    = flag.String("config", cmp.Or(os.Getenv(EnvConfig), "esp.toml"), "Path to the optional TOML configuration file")
	logLevel      = flag.String("log-level", "", "Log level: debug, info, warn, error (default from config, then warn)")
)

// config is the configuration in effect, see Setup.
var config = NewDefaultConfig()

// Setup loads the configuration file and applies the global flags on top of
// it. It must be called once the flags are parsed.
func Setup() error {
	c, err := LoadConfig(*configFile)
	if err != nil {
		return err
	}
	if *portfolioFile != "" {
		c.Portfolio = *portfolioFile
	}
	if *logLevel != "" {
		c.LogLevel = *logLevel
	}
	config = c
	logger = NewLogger(c.LogLevel)
	logger.Debug().Str("portfolio", c.Portfolio).Str("config", *configFile).Msg("configuration loaded")
	return nil
}

// PortfolioPath returns the path to the portfolio file in use.
func PortfolioPath() string { return config.Portfolio }

// DecodePortfolio loads the portfolio file. Its currency defaults to the
// configured one, and its issues are logged.
func DecodePortfolio() (stockplan.Portfolio, error) {
	p, err := stockplan.LoadPortfolio(PortfolioPath())
	if err != nil {
		return p, err
	}
	if p.Currency == "" {
		p.Currency = config.Currency
	}
	for _, i := range p.Check() {
		if i.Warning {
			logger.Warn().Str("kind", i.Kind).Str("id", i.ID).Err(i.Err).Msg("portfolio warning")
		} else {
			logger.Error().Str("kind", i.Kind).Str("id", i.ID).Err(i.Err).Msg("invalid record")
		}
	}
	return p, nil
}

// Apply loads the portfolio, applies actions all at once and saves it.
func Apply(actions ...stockplan.Action) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	next, err := stockplan.Reduce(p, stockplan.Batch(actions))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error updating portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := stockplan.SavePortfolio(PortfolioPath(), next); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	logger.Info().Int("actions", len(actions)).Str("portfolio", PortfolioPath()).Msg("portfolio updated")
	return subcommands.ExitSuccess
}

// warnOverdraw warns when more shares leave a grant than it holds on that
// date. It is not an error: reports clamp the held shares at zero.
func warnOverdraw(grantID string, on date.Date, shares stockplan.Quantity) {
	p, err := DecodePortfolio()
	if err != nil {
		return
	}
	g, ok := p.Grant(grantID)
	if !ok {
		logger.Warn().Str("grant", grantID).Msg("unknown grant")
		return
	}
	held := stockplan.HeldShares(g, p.ShareExchanges, p.StockSales, on)
	if shares.GreaterThan(held) {
		logger.Warn().Str("grant", grantID).Stringer("held", held).Stringer("requested", shares).Msg("more shares than held on that date")
	}
}
