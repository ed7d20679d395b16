package engine

import (
	"testing"

	"github.com/dmagro/tracao/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassify_StandbyWinsOverEverything(t *testing.T) {
	got := ClassifyFrontHealth(HealthInput{
		Mode:                 domain.ModeStandby,
		ActiveProjects:       3,
		ProjectsWithTraction: 3,
		HasTaskASignal:       true,
	})
	assert.Equal(t, domain.HealthStandby, got.Status)
}

func TestClassify_TractionAndSignal_Forte(t *testing.T) {
	got := ClassifyFrontHealth(HealthInput{
		Mode:                 domain.ModeManutencao,
		ActiveProjects:       1,
		ProjectsWithTraction: 1,
		HasTaskASignal:       true,
	})
	assert.Equal(t, domain.HealthForte, got.Status)
	assert.Equal(t, "Forte", got.Label)
}

func TestClassify_TractionWithoutSignal_EstavelParcial(t *testing.T) {
	got := ClassifyFrontHealth(HealthInput{
		Mode:                 domain.ModeAceleracao,
		ActiveProjects:       2,
		ProjectsWithTraction: 1,
	})
	assert.Equal(t, domain.HealthEstavel, got.Status)
	assert.Equal(t, "tração parcial", got.Reason)
}

func TestClassify_SignalWithoutTraction_EstavelExecucao(t *testing.T) {
	got := ClassifyFrontHealth(HealthInput{
		Mode:           domain.ModeManutencao,
		HasTaskASignal: true,
	})
	assert.Equal(t, domain.HealthEstavel, got.Status)
	assert.Equal(t, "tração por execução", got.Reason)
}

func TestClassify_ActiveProjectsOnly_Atencao(t *testing.T) {
	got := ClassifyFrontHealth(HealthInput{
		Mode:           domain.ModeManutencao,
		ActiveProjects: 2,
	})
	assert.Equal(t, domain.HealthAtencao, got.Status)
}

func TestClassify_NothingAtAll_Negligenciada(t *testing.T) {
	got := ClassifyFrontHealth(HealthInput{Mode: domain.ModeManutencao})
	assert.Equal(t, domain.HealthNegligenciada, got.Status)
}

func TestClassify_IsPure(t *testing.T) {
	in := HealthInput{Mode: domain.ModeAceleracao, ActiveProjects: 1, ProjectsWithTraction: 1}
	first := ClassifyFrontHealth(in)
	second := ClassifyFrontHealth(in)
	assert.Equal(t, first, second)
}
