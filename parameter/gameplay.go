package parameter

// Input
const (
	// HitRadius is the pointer tolerance around a screw center
	HitRadius = 15.0
)

// Rewards
const (
	StageRewardBase  = 100
	StageRewardBonus = 10 // added per StageRewardStep stages
	StageRewardStep  = 5
)

// Item costs in points
const (
	CostHint    = 50
	CostExpose  = 50
	CostDrill   = 100
	CostShuffle = 150
)

// StartingItems is the inventory count of each item for a new session
const StartingItems = 2

// StartingStage is the first stage of a new session
const StartingStage = 1
