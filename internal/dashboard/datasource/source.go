// Package datasource provides price, change and volume samples for tracked symbols.
package datasource

import (
	"context"

	"golang-stock-dashboard/internal/entity"
)

// Source produces samples for a symbol code and period.
type Source interface {
	FetchSample(ctx context.Context, code string, period entity.Period) (entity.Sample, error)
}

// Universe lists the symbols the ranking table covers, in rank order.
func Universe() []entity.Symbol {
	out := make([]entity.Symbol, len(universe))
	copy(out, universe)
	return out
}

// Lookup returns the universe symbol with the given code.
func Lookup(code string) (entity.Symbol, bool) {
	for _, s := range universe {
		if s.Code == code {
			return s, true
		}
	}
	return entity.Symbol{}, false
}

var universe = []entity.Symbol{
	{Name: "贵州茅台", Code: "600519", Sector: entity.SectorLiquor, BasePrice: 1800},
	{Name: "中国平安", Code: "601318", Sector: entity.SectorInsurance, BasePrice: 45},
	{Name: "招商银行", Code: "600036", Sector: entity.SectorBanking, BasePrice: 40},
	{Name: "宁德时代", Code: "300750", Sector: entity.SectorNewEnergy, BasePrice: 250},
	{Name: "五粮液", Code: "000858", Sector: entity.SectorLiquor, BasePrice: 160},
	{Name: "比亚迪", Code: "002594", Sector: entity.SectorNewEnergyVehicles, BasePrice: 240},
	{Name: "泸州老窖", Code: "000568", Sector: entity.SectorLiquor, BasePrice: 180},
	{Name: "长江电力", Code: "600900", Sector: entity.SectorPower, BasePrice: 22},
	{Name: "美的集团", Code: "000333", Sector: entity.SectorAppliances, BasePrice: 55},
	{Name: "药明康德", Code: "603259", Sector: entity.SectorPharma, BasePrice: 85},
	{Name: "中国中免", Code: "601888", Sector: entity.SectorDutyFree, BasePrice: 180},
	{Name: "隆基绿能", Code: "601012", Sector: entity.SectorNewEnergy, BasePrice: 35},
	{Name: "工商银行", Code: "601398", Sector: entity.SectorBanking, BasePrice: 5},
	{Name: "建设银行", Code: "601939", Sector: entity.SectorBanking, BasePrice: 6},
	{Name: "中国神华", Code: "601088", Sector: entity.SectorCoal, BasePrice: 30},
	{Name: "中国石油", Code: "601857", Sector: entity.SectorOil, BasePrice: 7},
	{Name: "中国石化", Code: "600028", Sector: entity.SectorOil, BasePrice: 5},
	{Name: "中国人寿", Code: "601628", Sector: entity.SectorInsurance, BasePrice: 30},
	{Name: "中国建筑", Code: "601668", Sector: entity.SectorConstruction, BasePrice: 6},
	{Name: "中国中铁", Code: "601390", Sector: entity.SectorConstruction, BasePrice: 8},
}
