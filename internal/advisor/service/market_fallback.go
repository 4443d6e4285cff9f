package service

import (
	"time"

	"crypto-advisor/internal/advisor/dto"
)

func mustParseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		panic(err)
	}
	return t
}

// FallbackAssets returns the fixed asset list served when live market data is
// unavailable. Each call returns a fresh slice.
func FallbackAssets() []dto.Asset {
	return []dto.Asset{
		{
			ID:                       "bitcoin",
			Symbol:                   "btc",
			Name:                     "Bitcoin",
			Image:                    "https://assets.coingecko.com/coins/images/1/large/bitcoin.png",
			CurrentPrice:             59830.42,
			MarketCap:                1184877141069,
			MarketCapRank:            1,
			TotalVolume:              31607862472,
			High24h:                  60312.12,
			Low24h:                   58921.21,
			PriceChange24h:           421.74,
			PriceChangePercentage24h: 0.7092,
			CirculatingSupply:        19796268,
			LastUpdated:              mustParseTime("2023-06-08T14:15:11.186Z"),
		},
		{
			ID:                       "ethereum",
			Symbol:                   "eth",
			Name:                     "Ethereum",
			Image:                    "https://assets.coingecko.com/coins/images/279/large/ethereum.png",
			CurrentPrice:             3245.37,
			MarketCap:                389682538025,
			MarketCapRank:            2,
			TotalVolume:              11889246742,
			High24h:                  3287.24,
			Low24h:                   3201.89,
			PriceChange24h:           24.21,
			PriceChangePercentage24h: 0.7506,
			CirculatingSupply:        120094612.241859,
			LastUpdated:              mustParseTime("2023-06-08T14:15:10.142Z"),
		},
		{
			ID:                       "solana",
			Symbol:                   "sol",
			Name:                     "Solana",
			Image:                    "https://assets.coingecko.com/coins/images/4128/large/solana.png",
			CurrentPrice:             142.78,
			MarketCap:                61872281555,
			MarketCapRank:            5,
			TotalVolume:              2417153231,
			High24h:                  143.59,
			Low24h:                   137.46,
			PriceChange24h:           2.27,
			PriceChangePercentage24h: 1.61465,
			CirculatingSupply:        432719337.539166,
			LastUpdated:              mustParseTime("2023-06-08T14:15:15.353Z"),
		},
		{
			ID:                       "cardano",
			Symbol:                   "ada",
			Name:                     "Cardano",
			Image:                    "https://assets.coingecko.com/coins/images/975/large/cardano.png",
			CurrentPrice:             0.487659,
			MarketCap:                17082969602,
			MarketCapRank:            9,
			TotalVolume:              365816682,
			High24h:                  0.494401,
			Low24h:                   0.474646,
			PriceChange24h:           0.01049863,
			PriceChangePercentage24h: 2.2023,
			CirculatingSupply:        35045020830.3234,
			LastUpdated:              mustParseTime("2023-06-08T14:15:13.831Z"),
		},
		{
			ID:                       "polkadot",
			Symbol:                   "dot",
			Name:                     "Polkadot",
			Image:                    "https://assets.coingecko.com/coins/images/12171/large/polkadot.png",
			CurrentPrice:             6.91,
			MarketCap:                8961689275,
			MarketCapRank:            13,
			TotalVolume:              235146823,
			High24h:                  7.07,
			Low24h:                   6.7,
			PriceChange24h:           0.155539,
			PriceChangePercentage24h: 2.30375,
			CirculatingSupply:        1298378732.50847,
			LastUpdated:              mustParseTime("2023-06-08T14:15:10.071Z"),
		},
	}
}
