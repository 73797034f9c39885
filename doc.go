// Package stockplan values and projects a personal position in an employee
// stock program: stock grants released by vesting schedules, and the loans
// taken to buy them.
//
// The core functionalities include:
//   - Valuation: CalculateNetValue computes, as of any date, the vested,
//     exchanged, sold and held shares of every grant, the debt of active
//     loans with their accrued interest, and the resulting net value.
//   - Tax reporting: IncomeTaxableEvents and CapitalGainsTaxableEvents list
//     the vested tranches to declare, InterestExpenseByYear the deductible
//     loan interest of each year.
//   - Projection: ProjectFutureValue simulates the coming years under an
//     assumed price growth, planning share sales to repay maturing loans.
//   - State management: Reduce applies Actions to a Portfolio as a pure
//     transition function, leaving persistence to the caller.
//   - Persistence: LoadPortfolio and SavePortfolio keep a portfolio in a
//     single human-readable JSON file.
//
// All calculations are pure and total: they never modify their inputs and
// never fail. Missing prices count as zero, impossible share counts are
// clamped at zero, and empty inputs give empty reports. Records are
// expected to have been checked beforehand with Portfolio.Check.
//
// This package serves as the foundational logic for the `esp` command-line
// tool.
package stockplan
