package main

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/shunt-calc/internal/bench/engine"
	"github.com/DjordjeVuckovic/shunt-calc/internal/bench/plan"
	"github.com/DjordjeVuckovic/shunt-calc/internal/bench/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQuickPlan(t *testing.T) {
	bp := buildQuickPlan(cliConfig{SuitePath: "s.yaml", LegacyDigits: true})
	require.Len(t, bp.Jobs, 1)
	assert.Equal(t, []string{"local"}, bp.Jobs[0].Engines)
	assert.True(t, bp.Engines["local"].LegacyDigits)

	bp = buildQuickPlan(cliConfig{SuitePath: "s.yaml", APIURL: "http://localhost:8080"})
	assert.Equal(t, []string{"local", "api"}, bp.Jobs[0].Engines)
	assert.Equal(t, plan.EngineAPI, bp.Engines["api"].Type)

	info := engineInfo(bp)
	assert.Equal(t, "http://localhost:8080", info["api"].Connection)
}

func TestBundledPlanPasses(t *testing.T) {
	bp, err := loadPlan(cliConfig{PlanPath: "../../configs/bench/plan.yaml"})
	require.NoError(t, err)

	executors, cleanup, err := engine.CreateFromPlan(bp.Engines)
	require.NoError(t, err)
	defer cleanup()

	result, err := runner.New(runner.Config{Runs: 1}).RunAll(context.Background(), bp, executors)
	require.NoError(t, err)
	require.Len(t, result.Jobs, len(bp.Jobs))

	for _, jr := range result.Jobs {
		for _, caseID := range jr.CaseOrder {
			for engName, cr := range jr.Results[caseID] {
				assert.True(t, cr.Passed, "%s/%s on %s: expected %s, got %s", jr.JobName, caseID, engName, cr.Expected, cr.Outcome())
			}
		}
	}
	assert.Zero(t, result.Failed())
}
