package engine

// Household usage model. All volumes are liters.
const (
	// FlowRateShower is the flow of a standard shower head per minute.
	FlowRateShower = 10

	// FlushVolume is the volume of one toilet flush.
	FlushVolume = 6

	// FlushesPerPersonPerDay is the assumed toilet uses per person.
	FlushesPerPersonPerDay = 4

	// LaundryVolumePerLoad is the volume of one washing machine load.
	LaundryVolumePerLoad = 60

	// ROWasteRatio is liters rejected by a reverse osmosis purifier per liter purified.
	ROWasteRatio = 3

	// ROConsumptionPerPersonPerDay is drinking water purified per person.
	ROConsumptionPerPersonPerDay = 2

	daysPerWeek = 7
)

// PerPersonBenchmark is the daily per-person volume at or below which a
// household is rated excellent.
const PerPersonBenchmark = 135
