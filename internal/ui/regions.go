package ui

import "github.com/aaronzipp/player-compare/internal/models"

// Region ids of the comparison page
const (
	RegionPlaceholder = "chartPlaceholder"
	RegionChartWrap   = "chartWrapper"
	RegionChart       = "radarChart"
	RegionSummary     = "statsSummary"
	RegionShare       = "shareLink"

	RegionModal          = "playerModal"
	RegionModalImg       = "modalPlayerImg"
	RegionModalFlag      = "modalPlayerFlag"
	RegionModalName      = "modalPlayerName"
	RegionModalPosition  = "modalPlayerPosition"
	RegionModalClub      = "modalPlayerClub"
	RegionModalCountry   = "modalPlayerCountry"
	RegionModalBio       = "modalPlayerBio"
	RegionModalFunFact   = "modalPlayerFunfact"
	RegionAchBallonDor   = "achBallonDor"
	RegionAchUCL         = "achUCL"
	RegionAchWorldCup    = "achWorldCup"
	RegionModalStats     = "modalPlayerStats"
	RegionModalTutorials = "modalPlayerTutorials"
)

// SlotRegions names the regions of one slot's dropdown and preview card
type SlotRegions struct {
	Select  string
	Preview string
	Img     string
	Name    string
	Info    string
}

var slotRegions = [2]SlotRegions{
	models.SlotLeft:  {"player1Select", "player1Preview", "player1Img", "player1Name", "player1Info"},
	models.SlotRight: {"player2Select", "player2Preview", "player2Img", "player2Name", "player2Info"},
}

// RegionsFor returns the region ids of slot
func RegionsFor(slot models.Slot) SlotRegions {
	if slot == models.SlotRight {
		return slotRegions[models.SlotRight]
	}
	return slotRegions[models.SlotLeft]
}

// CompareRegions lists the regions of a page variant without the detail modal
func CompareRegions() []string {
	ids := make([]string, 0, 16)
	for _, s := range slotRegions {
		ids = append(ids, s.Select, s.Preview, s.Img, s.Name, s.Info)
	}
	return append(ids, RegionPlaceholder, RegionChartWrap, RegionChart, RegionSummary, RegionShare)
}

// PageRegions lists every region of the full page
func PageRegions() []string {
	return append(CompareRegions(),
		RegionModal, RegionModalImg, RegionModalFlag, RegionModalName,
		RegionModalPosition, RegionModalClub, RegionModalCountry, RegionModalBio,
		RegionModalFunFact, RegionAchBallonDor, RegionAchUCL, RegionAchWorldCup,
		RegionModalStats, RegionModalTutorials,
	)
}
