package stockplan

// Portfolio is the aggregate of everything an employee holds in the stock
// program: grants, the loans funding them, share prices, exchanges, sales
// and the program templates.
//
// Cross references between records (grant ids, loan ids) are not enforced:
// a dangling reference simply matches nothing.
type Portfolio struct {
	Currency       string          `json:"currency,omitempty"`
	Grants         []StockGrant    `json:"grants"`
	Loans          []Loan          `json:"loans"`
	StockPrices    []StockPrice    `json:"stockPrices"`
	ShareExchanges []ShareExchange `json:"shareExchanges"`
	StockSales     []StockSale     `json:"stockSales"`
	ProgramConfigs []ProgramConfig `json:"programConfigs"`
}

// Grant returns the grant with the given id.
func (p Portfolio) Grant(id string) (StockGrant, bool) {
	for _, g := range p.Grants {
		if g.ID == id {
			return g, true
		}
	}
	return StockGrant{}, false
}

// Loan returns the loan with the given id.
func (p Portfolio) Loan(id string) (Loan, bool) {
	for _, l := range p.Loans {
		if l.ID == id {
			return l, true
		}
	}
	return Loan{}, false
}

// Program returns the program config of a given year.
func (p Portfolio) Program(year int) (ProgramConfig, bool) {
	for _, c := range p.ProgramConfigs {
		if c.Year == year {
			return c, true
		}
	}
	return ProgramConfig{}, false
}

// IsEmpty reports whether the portfolio holds no record at all.
func (p Portfolio) IsEmpty() bool {
	return len(p.Grants) == 0 && len(p.Loans) == 0 && len(p.StockPrices) == 0 &&
		len(p.ShareExchanges) == 0 && len(p.StockSales) == 0 && len(p.ProgramConfigs) == 0
}

// zero returns a zero amount in the portfolio currency.
func (p Portfolio) zero() Money { return M(0, p.Currency) }
