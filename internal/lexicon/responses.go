package lexicon

import "github.com/scrypster/bemestar/pkg/types"

// Responses bundles the text pools the engines select from.
type Responses struct {
	// Mood holds 3 motivational replies per sentiment tier; one is sampled.
	Mood map[types.Tier][]string

	// Crisis holds the complete guidance per risk tier; it is always
	// returned whole, never sampled.
	Crisis map[types.Tier]types.CrisisGuidance

	// Tones are mood-aware notification messages.
	Tones []ToneRule
}

// ToneRule picks a notification message for a mood. A rule matches when any
// of its keywords was matched by the classifier, or, failing that, when the
// sentiment tier equals Tier.
type ToneRule struct {
	Label    string
	Tier     types.Tier
	Keywords []string
	Message  string
}

// DefaultResponses returns the built-in response pools.
func DefaultResponses() Responses {
	return Responses{
		Mood: map[types.Tier][]string{
			types.MoodPositive: {
				"Que maravilhoso saber que você está se sentindo bem! 😊 Continue cultivando esses sentimentos positivos. Você merece toda essa alegria!",
				"Fico muito feliz em ver você radiante! ✨ Sua energia positiva é contagiante. Lembre-se de celebrar esses momentos bons!",
				"Que incrível! Você está brilhando hoje! 🌟 Aproveite essa energia para fazer algo que te deixe ainda mais feliz.",
			},
			types.MoodNegative: {
				"Entendo que você está passando por um momento difícil. 🤗 Lembre-se: sentimentos difíceis são temporários, mas sua força é permanente. Você já superou desafios antes e vai superar este também.",
				"Seus sentimentos são válidos e é ok não estar bem o tempo todo. 💙 Que tal fazer uma pausa e respirar fundo? Ou talvez conversar com alguém de confiança?",
				"Sei que está difícil agora, mas você não está sozinho(a). 🫂 Cada dia é uma nova oportunidade de cura. Seja gentil consigo mesmo(a) hoje.",
			},
			types.MoodNeutral: {
				"Percebo que você está em um momento de equilíbrio. 🌱 Às vezes a neutralidade é exatamente o que precisamos. Como posso te apoiar hoje?",
				"É normal ter dias mais neutros. 🌸 Que tal aproveitarmos para fazer algo pequeno mas significativo para seu bem-estar?",
				"Estar neutro também é estar presente. 🧘‍♀️ Talvez seja um bom momento para reflexão ou para cuidar de algo que você tem adiado.",
			},
		},
		Crisis: map[types.Tier]types.CrisisGuidance{
			types.RiskHigh: {
				Emotions: []string{"Desesperança", "Tristeza profunda", "Desamparo"},
				Concerns: []string{
					"Expressões de ideação suicida detectadas",
					"Necessidade de apoio profissional imediato",
					"Sinais de crise emocional severa",
				},
				Recommendations: []string{
					ProfessionalHelpDirective,
					"Ligue para o CVV (188) para apoio imediato",
					"Não fique sozinho(a) - procure alguém de confiança",
					"Vá ao pronto-socorro se necessário",
				},
			},
			types.RiskMedium: {
				Emotions: []string{"Tristeza", "Ansiedade", "Preocupação"},
				Concerns: []string{
					"Sinais de humor baixo detectados",
					"Necessidade de monitoramento e apoio",
					"Possível episódio depressivo ou ansioso",
				},
				Recommendations: []string{
					"Considere conversar com um psicólogo",
					"Pratique técnicas de respiração e mindfulness",
					"Mantenha contato com amigos e família",
					"Estabeleça uma rotina de autocuidado",
				},
			},
			types.RiskLow: {
				Emotions: []string{"Estabilidade", "Esperança", "Equilíbrio"},
				Concerns: []string{},
				Recommendations: []string{
					"Continue cuidando de seu bem-estar",
					"Mantenha suas práticas de autocuidado",
					"Celebre os momentos positivos",
				},
			},
		},
		Tones: []ToneRule{
			{
				Label:    "ansioso",
				Tier:     types.MoodNegative,
				Keywords: []string{"ansioso", "estressado", "preocupado"},
				Message:  "Respirar fundo pode ajudar agora. Inspire calma, expire preocupação. Você está seguro(a) 🫧",
			},
			{
				Label:    "cansado",
				Tier:     types.MoodNegative,
				Keywords: []string{"cansado"},
				Message:  "Sua energia está baixa e tudo bem. Que tal uma pausa gentil? Você merece este cuidado ☕",
			},
			{
				Label:   "baixo",
				Tier:    types.MoodNegative,
				Message: "Sei que hoje está sendo um dia difícil. Lembre-se: sentimentos passam, mas sua força permanece. Você consegue! 🌟",
			},
			{
				Label:   "motivado",
				Tier:    types.MoodPositive,
				Message: "Que energia incrível! Aproveite este momento para dar um passo em direção aos seus sonhos 🚀",
			},
		},
	}
}

// ProfessionalHelpDirective is the first recommendation for high risk.
const ProfessionalHelpDirective = "Entre em contato com um profissional de saúde mental AGORA"

// CheckInMessage is used when no mood-based tone applies.
const CheckInMessage = "Hora de registrar como você está se sentindo. Seus sentimentos importam! 💜"

// ChatGreeting opens every motivational chat.
const ChatGreeting = "Olá! Eu sou sua IA motivacional. Como você está se sentindo hoje? Conte-me sobre seus pensamentos e sentimentos, e vou te ajudar com palavras de apoio personalizadas. 💜"

// LowEnergySuggestion is prepended to a non-light day's suggestions when the
// user's energy is low.
const LowEnergySuggestion = "Sua energia está baixa - considere um dia mais leve"

// WorkloadSuggestions returns the fixed suggestions for a workload tier.
func WorkloadSuggestions(tier types.WorkloadTier) []string {
	switch tier {
	case types.WorkloadLight:
		return []string{"Dia tranquilo! Aproveite para relaxar", "Considere adicionar uma atividade prazerosa"}
	case types.WorkloadModerate:
		return []string{"Dia equilibrado", "Mantenha pausas entre atividades"}
	case types.WorkloadHeavy:
		return []string{"Dia intenso - planeje bem as pausas", "Considere reagendar algo não urgente"}
	case types.WorkloadOverloaded:
		return []string{
			"Dia sobrecarregado! Recomendamos redistribuir algumas tarefas",
			"Priorize apenas o essencial",
			"Agende pausas obrigatórias",
		}
	default:
		return []string{}
	}
}

// RestPeriodTitle names the rest items inserted by the workload engine.
const RestPeriodTitle = "Pausa para respirar"

// EnergyAdvice returns the message and suggestion for an energy tier.
func EnergyAdvice(tier types.EnergyTier) (message, suggestion string) {
	switch tier {
	case types.EnergyLow:
		return "Sua energia está baixa. Que tal começar com micro-passos mais simples?", "Escolha apenas 1-2 micro-passos hoje"
	case types.EnergyHigh:
		return "Você está com boa energia! Perfeito para avançar mais.", "Considere completar 3-4 micro-passos hoje"
	default:
		return "Sua energia está adequada para esta meta.", "Siga seu ritmo normal"
	}
}

// Canned voice-input phrases, one per input channel.
const (
	VoiceMoodPhrase       = "Estou me sentindo um pouco ansioso hoje..."
	VoiceSimulationPhrase = "Obrigado pela oportunidade. Tenho muito interesse nesta posição..."
)
