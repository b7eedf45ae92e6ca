package entity

// Sector is the industry classification attached to a symbol.
type Sector string

const (
	SectorLiquor            Sector = "liquor"
	SectorInsurance         Sector = "insurance"
	SectorBanking           Sector = "banking"
	SectorNewEnergy         Sector = "new-energy"
	SectorNewEnergyVehicles Sector = "new-energy-vehicles"
	SectorPower             Sector = "power"
	SectorAppliances        Sector = "appliances"
	SectorPharma            Sector = "pharma"
	SectorDutyFree          Sector = "duty-free"
	SectorCoal              Sector = "coal"
	SectorOil               Sector = "oil"
	SectorConstruction      Sector = "construction"
)

// Symbol is static reference metadata for a tradable stock.
type Symbol struct {
	Name      string  `json:"name"`
	Code      string  `json:"code"`
	Sector    Sector  `json:"sector,omitempty"`
	BasePrice float64 `json:"base_price,omitempty"`
}
