// Package valuation provides the pure calculation core of a personal
// investment tracker: the routines that turn a position's transaction
// history (lots) and a current market quote into cost basis, realized and
// unrealized profit/loss, and instrument-specific analytics.
//
// The core functionalities include:
//   - Lot arithmetic: open quantity and weighted-average cost over an
//     ordered sequence of buy/sell lots.
//   - Position metrics: realized P/L under a FIFO or weighted-average
//     cost-basis policy, mark-to-market unrealized P/L, and today's
//     per-unit change, with an optional contract multiplier.
//   - Portfolio aggregation: summing position metrics across a portfolio.
//   - Corporate actions: split adjustment of a lot sequence preserving
//     per-lot cost basis.
//   - Instrument analytics: bonds (accrued interest, dirty price, yield),
//     commodities (notional, contract codes, days to expiry), real estate
//     (cash flow, cap rate, amortization), cash accounts (compounding),
//     and user-defined instruments with a sandboxed P/L expression.
//
// Every function in this package is a pure transform from immutable inputs
// to an output value or an error: no I/O, no shared state, no clocks other
// than the reference dates callers pass in. Persistence, quote fetching and
// presentation are the caller's concern; this package serves as the
// foundational logic for the `pval` command-line tool.
package valuation
