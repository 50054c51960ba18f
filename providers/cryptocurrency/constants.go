package cryptocurrency

// CoinGecko coin IDs for the base asset of each supported pair.
var supportedPairs = map[string]string{
	"BTC/USDT":  "bitcoin",
	"ETH/USDT":  "ethereum",
	"SOL/USDT":  "solana",
	"XRP/USDT":  "ripple",
	"BNB/USDT":  "binancecoin",
	"ADA/USDT":  "cardano",
	"DOGE/USDT": "dogecoin",
	"LTC/USDT":  "litecoin",
}

// FallbackPrices holds approximate last-known USDT values, used when the
// upstream is unreachable so trade resolution never blocks on oracle
// flakiness. Accuracy is traded for availability here.
var FallbackPrices = map[string]string{
	"BTC/USDT":  "97000",
	"ETH/USDT":  "3400",
	"SOL/USDT":  "210",
	"XRP/USDT":  "2.4",
	"BNB/USDT":  "690",
	"ADA/USDT":  "0.95",
	"DOGE/USDT": "0.33",
	"LTC/USDT":  "105",
}

// IsSupportedPair reports whether trades can be opened on the symbol.
func IsSupportedPair(pair string) bool {
	_, ok := supportedPairs[pair]
	return ok
}

// SupportedPairs returns the tradable symbols in no particular order.
func SupportedPairs() []string {
	pairs := make([]string, 0, len(supportedPairs))
	for p := range supportedPairs {
		pairs = append(pairs, p)
	}
	return pairs
}
