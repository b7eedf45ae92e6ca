// Package analyzer maps a price/volume sample to a buy, sell or hold suggestion.
package analyzer

import (
	"fmt"

	"golang-stock-dashboard/internal/entity"
)

// ChangeClass buckets the percentage change of a sample.
type ChangeClass int

const (
	ChangeFlat ChangeClass = iota
	ChangeStrongRise
	ChangeStrongFall
	ChangeModerateRise
	ChangeModerateFall
)

const strongMoveThreshold = 3.0

// VolumeThreshold returns the lot count above which volume counts as high for period.
func VolumeThreshold(period entity.Period) float64 {
	switch period {
	case entity.PeriodDay:
		return 500
	case entity.PeriodWeek:
		return 2000
	default:
		return 8000
	}
}

// ClassifyChange buckets a percentage change. Exactly zero is flat.
func ClassifyChange(change float64) ChangeClass {
	switch {
	case change > strongMoveThreshold:
		return ChangeStrongRise
	case change < -strongMoveThreshold:
		return ChangeStrongFall
	case change > 0:
		return ChangeModerateRise
	case change < 0:
		return ChangeModerateFall
	default:
		return ChangeFlat
	}
}

// Percentile places price inside the 0.8x..1.2x band around basePrice.
// The result is not clamped; prices outside the band yield values below 0 or above 1.
func Percentile(price, basePrice float64) float64 {
	return (price - basePrice*0.8) / (basePrice * 0.4)
}

// Analyze classifies one sample. The first matching rule wins; a sector note may be
// appended to any outcome.
func Analyze(symbol entity.Symbol, sample entity.Sample) entity.Analysis {
	change := sample.ChangePercent
	volume := sample.Volume
	highVolume := volume > VolumeThreshold(sample.Period)
	class := ClassifyChange(change)
	percentile := Percentile(sample.Price, symbol.BasePrice)

	var result entity.Analysis
	switch {
	case highVolume && class == ChangeStrongFall && percentile < 0.3:
		result = entity.Analysis{
			Suggestion: entity.SuggestionBuy,
			Rationale: fmt.Sprintf("Volume surge (%.0f x10k lots) with a sharp pullback (%.2f%%); price sits in a relatively low zone, a chance to accumulate on weakness.",
				volume, change),
		}
	case highVolume && class == ChangeStrongRise && percentile > 0.7:
		result = entity.Analysis{
			Suggestion: entity.SuggestionSell,
			Rationale: fmt.Sprintf("Volume surge (%.0f x10k lots) with a sharp rally (%.2f%%); price sits near the top of its range and may be peaking.",
				volume, change),
		}
	case highVolume && class == ChangeModerateRise:
		result = entity.Analysis{
			Suggestion: entity.SuggestionBuy,
			Rationale: fmt.Sprintf("Volume surge (%.0f x10k lots) with a moderate rise (%.2f%%); healthy volume-price alignment points to further upside.",
				volume, change),
		}
	case highVolume && class == ChangeModerateFall:
		result = entity.Analysis{
			Suggestion: entity.SuggestionHold,
			Rationale: fmt.Sprintf("Volume surge (%.0f x10k lots) with a moderate decline (%.2f%%); caution, wait to see how the trend develops.",
				volume, change),
		}
	case class == ChangeStrongRise && percentile > 0.8:
		result = entity.Analysis{
			Suggestion: entity.SuggestionSell,
			Rationale:  fmt.Sprintf("Sharp rally (%.2f%%) with price at a high historical position; pullback risk is elevated.", change),
		}
	case class == ChangeStrongFall && percentile < 0.2:
		result = entity.Analysis{
			Suggestion: entity.SuggestionBuy,
			Rationale:  fmt.Sprintf("Sharp drop (%.2f%%) with price at a low historical position; oversold bounce potential.", change),
		}
	case class == ChangeModerateRise:
		result = entity.Analysis{
			Suggestion: entity.SuggestionHold,
			Rationale:  fmt.Sprintf("Moderate rise (%.2f%%), steady trend; keep watching.", change),
		}
	case class == ChangeModerateFall:
		result = entity.Analysis{
			Suggestion: entity.SuggestionHold,
			Rationale:  fmt.Sprintf("Moderate decline (%.2f%%), normal trend; keep watching.", change),
		}
	default:
		result = entity.Analysis{
			Suggestion: entity.SuggestionHold,
			Rationale: fmt.Sprintf("Low volatility (%.2f%%) on ordinary volume (%.0f x10k lots); no clear trading opportunity.",
				change, volume),
		}
	}

	if note := sectorNote(symbol.Sector, percentile, class); note != "" {
		result.Rationale += " " + note
	}
	return result
}

// sectorNote returns at most one sector overlay, checked in order.
func sectorNote(sector entity.Sector, percentile float64, class ChangeClass) string {
	switch {
	case sector == entity.SectorLiquor && percentile < 0.4:
		return "Liquor sector is defensive across the cycle; current valuation is reasonable."
	case sector == entity.SectorNewEnergy && class == ChangeStrongRise:
		return "New-energy sector enjoys strong momentum and policy tailwinds."
	case sector == entity.SectorBanking && percentile < 0.3:
		return "Banking sector valuation is near historical lows, offering a high safety margin."
	default:
		return ""
	}
}
