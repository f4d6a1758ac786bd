package domain

// CampaignStage representa o estágio atual de uma campanha no ciclo de vida
type CampaignStage string

const (
	StageScreening           CampaignStage = "screening"
	StageRejectedForCampaign CampaignStage = "rejectedForCampaign"
	StageApprovedForCampaign CampaignStage = "approvedForCampaign"
	StageQueuedForTesting    CampaignStage = "queuedForTesting"
	StageErrorInTestingQueue CampaignStage = "errorInTestingQueue"
	StageTesting             CampaignStage = "testing"
	StageTestingComplete     CampaignStage = "testingComplete"
	StageRunning             CampaignStage = "running"
	StagePaused              CampaignStage = "paused"
	StageComplete            CampaignStage = "complete"
)

// InitialStage é o estágio de toda campanha recém-criada
const InitialStage = StageScreening

// stageTransitions é a tabela de adjacência do ciclo de vida.
// Estágios ausentes do mapa (complete, rejectedForCampaign) são terminais.
var stageTransitions = map[CampaignStage][]CampaignStage{
	StageScreening:           {StageApprovedForCampaign, StageRejectedForCampaign},
	StageApprovedForCampaign: {StageQueuedForTesting},
	StageQueuedForTesting:    {StageTesting, StageErrorInTestingQueue},
	StageErrorInTestingQueue: {StageQueuedForTesting, StageRejectedForCampaign},
	StageTesting:             {StageTestingComplete},
	StageTestingComplete:     {StageRunning},
	StageRunning:             {StagePaused, StageComplete},
	StagePaused:              {StageRunning, StageComplete},
}

// CanTransitionTo verifica se a transição de estágio é permitida pela tabela de adjacência
func (s CampaignStage) CanTransitionTo(target CampaignStage) bool {
	for _, allowed := range stageTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal retorna verdadeiro se o estágio não possui transições de saída
func (s CampaignStage) IsTerminal() bool {
	return len(stageTransitions[s]) == 0
}

// IsValid verifica se o valor corresponde a um estágio conhecido
func (s CampaignStage) IsValid() bool {
	switch s {
	case StageScreening, StageRejectedForCampaign, StageApprovedForCampaign,
		StageQueuedForTesting, StageErrorInTestingQueue, StageTesting,
		StageTestingComplete, StageRunning, StagePaused, StageComplete:
		return true
	}
	return false
}
