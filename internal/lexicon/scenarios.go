package lexicon

import "github.com/scrypster/bemestar/pkg/types"

// Scenarios returns the built-in social rehearsal scenarios.
func Scenarios() []types.Scenario {
	return []types.Scenario{
		{
			ID:          "1",
			Title:       "Entrevista de Emprego",
			Description: "Pratique respostas para perguntas comuns de entrevista",
			Category:    types.ScenarioInterview,
			Difficulty:  types.ScenarioIntermediate,
			Avatar:      "👨‍💼",
			Context:     "Você está em uma entrevista para a vaga dos seus sonhos. O entrevistador é amigável mas profissional.",
		},
		{
			ID:          "2",
			Title:       "Reunião de Trabalho",
			Description: "Aprenda a se expressar em reuniões profissionais",
			Category:    types.ScenarioMeeting,
			Difficulty:  types.ScenarioIntermediate,
			Avatar:      "👩‍💻",
			Context:     "Você está em uma reunião de equipe onde precisa apresentar suas ideias.",
		},
		{
			ID:          "3",
			Title:       "Conversa Casual",
			Description: "Pratique small talk e conversas sociais",
			Category:    types.ScenarioSocial,
			Difficulty:  types.ScenarioBeginner,
			Avatar:      "😊",
			Context:     "Você está em um evento social e quer iniciar uma conversa interessante.",
		},
		{
			ID:          "4",
			Title:       "Resolução de Conflito",
			Description: "Aprenda a lidar com situações tensas de forma empática",
			Category:    types.ScenarioConflict,
			Difficulty:  types.ScenarioAdvanced,
			Avatar:      "🤝",
			Context:     "Há um mal-entendido que precisa ser resolvido de forma respeitosa.",
		},
	}
}

// OpeningLine returns the NPC's first line for a scenario category.
func OpeningLine(category types.ScenarioCategory) string {
	switch category {
	case types.ScenarioInterview:
		return "Olá! Obrigado por vir hoje. Fale-me um pouco sobre você e por que está interessado nesta posição."
	case types.ScenarioMeeting:
		return "Bom dia! Vamos começar a reunião. Gostaria que você compartilhasse suas ideias sobre o projeto."
	case types.ScenarioSocial:
		return "Oi! Que evento interessante, não é? Você já conhece muitas pessoas aqui?"
	case types.ScenarioConflict:
		return "Olha, acho que tivemos um mal-entendido outro dia. Podemos conversar sobre isso?"
	default:
		return FallbackNPCLine
	}
}

// FallbackNPCLine is used for categories without a response list.
const FallbackNPCLine = "Entendi. Algo mais?"

// NPCResponses returns the ordered NPC replies for a scenario category.
func NPCResponses(category types.ScenarioCategory) []string {
	switch category {
	case types.ScenarioInterview:
		return []string{
			"Interessante! Conte-me sobre uma situação desafiadora que você enfrentou e como a resolveu.",
			"Muito bem! Quais são seus pontos fortes e como eles se aplicariam a esta função?",
			"Perfeito! Você tem alguma pergunta sobre a empresa ou sobre a posição?",
		}
	case types.ScenarioMeeting:
		return []string{
			"Ótima perspectiva! Como você implementaria essa ideia na prática?",
			"Entendo seu ponto. Que recursos você acha que precisaríamos para isso?",
			"Excelente! Alguém tem alguma dúvida sobre esta proposta?",
		}
	case types.ScenarioSocial:
		return []string{
			"Que legal! Eu também estou conhecendo pessoas novas. Você trabalha com o quê?",
			"Interessante! Eu adoro eventos assim. Você vem aqui frequentemente?",
			"Que bacana! Tenho uma amiga que trabalha na mesma área. Vocês deviam se conhecer!",
		}
	case types.ScenarioConflict:
		return []string{
			"Obrigado por estar disposto a conversar. Como você viu a situação?",
			"Entendo sua perspectiva. Acho que posso ter me expressado mal.",
			"Que bom que conseguimos esclarecer isso. Como podemos evitar mal-entendidos no futuro?",
		}
	default:
		return nil
	}
}

// Simulation rubric feedback. Each criterion yields either its strength or
// its suggestion.
const (
	StrengthPoliteness   = "Linguagem cortês e respeitosa"
	SuggestionPoliteness = "Tente usar linguagem mais cortês e respeitosa"
	StrengthConfidence   = "Demonstrou confiança na resposta"
	SuggestionConfidence = "Mostre mais confiança em suas capacidades"
	StrengthLength       = "Resposta com tamanho adequado"
	SuggestionLength     = "Elabore mais sua resposta ou seja mais conciso"
	StrengthCompany      = "Mencionou interesse na empresa"
	SuggestionCompany    = "Mencione o que te atrai na empresa"
)
