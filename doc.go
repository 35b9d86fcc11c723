// Package portfolio models a personal investment portfolio split across
// the Taiwan and United States markets, and the arithmetic to value it in
// either currency.
//
// The core functionalities include:
//   - Currency Model: the two supported bases (USD, TWD) and the
//     TWD-per-USD conversion rule shared by every monetary entity.
//   - Positions: individual holdings with quantity, cost basis and live
//     prices, denominated in a native currency frozen from the ticker.
//   - Histories: monthly records of the two market sub-ledgers, with
//     compound annual growth rate reporting.
//   - Aggregation: portfolio totals, gain/loss, rates and per-position
//     shares in a caller-selected display currency.
//   - Snapshot codec: the JSON document fetched from and uploaded to the
//     remote service, exchanged atomically as one unit.
//
// All money is represented with exact decimals; nothing in this package
// rounds beyond the decimal type's native precision.
//
// This package serves as the foundational logic for the `rsap`
// command-line tool; the api package talks to the remote service.
package portfolio
