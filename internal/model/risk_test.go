package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskLevel_SeverityOrdering(t *testing.T) {
	assert.Less(t, RiskLow.Severity(), RiskMedium.Severity())
	assert.Less(t, RiskMedium.Severity(), RiskHigh.Severity())
}

func TestLevelTally_Add(t *testing.T) {
	var tally LevelTally
	tally.Add(RiskHigh)
	tally.Add(RiskMedium)
	tally.Add(RiskMedium)
	tally.Add(RiskLow)

	assert.Equal(t, 1, tally.High)
	assert.Equal(t, 2, tally.Medium)
	assert.Equal(t, 1, tally.Low)
}

func TestLevelTally_UnknownLevelCountsAsLow(t *testing.T) {
	var tally LevelTally
	tally.Add(RiskLevel(""))
	assert.Equal(t, 1, tally.Low)
}
