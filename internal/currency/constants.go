package currency

// DefaultRatio is the number of coins of one denomination that make one of the next.
const DefaultRatio = 100
