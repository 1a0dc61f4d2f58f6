package session

import (
	"github.com/scrypster/bemestar/internal/engine"
	"github.com/scrypster/bemestar/pkg/types"
)

func defaultContacts() []types.EmergencyContact {
	return []types.EmergencyContact{
		{ID: "1", Name: "Dr. Ana Silva - Psicóloga", Type: types.ContactProfessional, Phone: "(11) 99999-1234", Available: true},
		{ID: "2", Name: "Centro de Valorização da Vida (CVV)", Type: types.ContactEmergency, Phone: "188", Available: true},
		{ID: "3", Name: "SAMU", Type: types.ContactEmergency, Phone: "192", Available: true},
		{ID: "4", Name: "Maria - Amiga próxima", Type: types.ContactPersonal, Phone: "(11) 98888-5678", Available: false},
	}
}

func defaultNotifications() []types.SmartNotification {
	return []types.SmartNotification{
		{
			ID:            "1",
			Type:          types.NotificationMotivational,
			Title:         "Mensagem Motivacional",
			Message:       "Lembre-se: você já superou 100% dos seus dias mais difíceis. Hoje não será diferente! 💪",
			ScheduledTime: "09:00",
			Frequency:     types.FrequencyDaily,
			Active:        true,
			AIGenerated:   true,
			Contextual:    true,
		},
		{
			ID:            "2",
			Type:          types.NotificationCheckIn,
			Title:         "Como você está?",
			Message:       "Hora de registrar como você está se sentindo. Seus sentimentos importam! 💜",
			ScheduledTime: "12:00",
			Frequency:     types.FrequencyDaily,
			Active:        true,
		},
		{
			ID:            "3",
			Type:          types.NotificationBreak,
			Title:         "Pausa para Respirar",
			Message:       "Que tal fazer uma pausa de 5 minutos? Sua mente merece esse cuidado 🧘‍♀️",
			ScheduledTime: "15:00",
			Frequency:     types.FrequencyDaily,
			Active:        true,
			AIGenerated:   true,
			Contextual:    true,
		},
		{
			ID:            "4",
			Type:          types.NotificationReminder,
			Title:         "Exercício Suave",
			Message:       "Hora do seu exercício! Lembre-se: qualquer movimento conta 🚶‍♀️",
			ScheduledTime: "18:00",
			Frequency:     types.FrequencyCustom,
			Active:        true,
		},
		{
			ID:            "5",
			Type:          types.NotificationAchievement,
			Title:         "Celebração",
			Message:       "Parabéns! Você completou 3 metas hoje. Isso é incrível! 🎉",
			ScheduledTime: "20:00",
			Frequency:     types.FrequencyCustom,
			Active:        true,
			AIGenerated:   true,
			Contextual:    true,
		},
	}
}

// demoGoals mirrors the example profile: one goal in progress with a
// deadline a few weeks out, one not started.
func demoGoals(today types.Date) []types.Goal {
	deadline := today.AddDays(18)
	return []types.Goal{
		{
			ID:                 "1",
			Title:              "Exercitar-se regularmente",
			Description:        "Fazer exercícios 3x por semana",
			Category:           types.GoalHealth,
			Difficulty:         types.DifficultyMedium,
			Status:             types.GoalInProgress,
			EnergyRequired:     7,
			UserEnergySnapshot: 6,
			Deadline:           &deadline,
			MicroSteps: []types.MicroStep{
				{ID: "1a", Title: "Separar roupa de ginástica", Completed: true, EstimatedMinutes: 2},
				{ID: "1b", Title: "Fazer 10 minutos de caminhada", Completed: true, EstimatedMinutes: 10},
				{ID: "1c", Title: "Fazer alongamento básico", EstimatedMinutes: 5},
				{ID: "1d", Title: "Aumentar para 15 min de exercício", EstimatedMinutes: 15},
			},
		},
		{
			ID:                 "2",
			Title:              "Organizar quarto",
			Description:        "Deixar o ambiente mais tranquilo",
			Category:           types.GoalPersonal,
			Difficulty:         types.DifficultyEasy,
			Status:             types.GoalPending,
			EnergyRequired:     4,
			UserEnergySnapshot: 6,
			MicroSteps: []types.MicroStep{
				{ID: "2a", Title: "Recolher roupas do chão", EstimatedMinutes: 5},
				{ID: "2b", Title: "Fazer a cama", EstimatedMinutes: 3},
				{ID: "2c", Title: "Organizar mesa de estudos", EstimatedMinutes: 10},
			},
		},
	}
}

func demoSchedule(today types.Date) []types.ScheduleItem {
	tomorrow := today.AddDays(1)
	return []types.ScheduleItem{
		{ID: "1", Title: "Exercício matinal", Category: types.CategoryExercise, Date: today, DurationMinutes: 30, EnergyCost: 6, Priority: types.PriorityMedium},
		{ID: "2", Title: "Reunião de trabalho", Category: types.CategoryAppointment, Date: today, DurationMinutes: 60, EnergyCost: 8, Priority: types.PriorityHigh},
		{ID: "3", Title: "Descanso programado", Category: types.CategoryRest, Date: today, DurationMinutes: 20, EnergyCost: 0, Priority: types.PriorityLow, Adaptive: true},
		{ID: "4", Title: "Organizar quarto", Category: types.CategoryTask, Date: tomorrow, DurationMinutes: 45, EnergyCost: 5, Priority: types.PriorityMedium},
	}
}

// demoWeeks is four weeks of self-reported averages.
func demoWeeks() []engine.WeeklySample {
	return []engine.WeeklySample{
		{Label: "S1", Mood: 6.5, Energy: 7, Goals: 8},
		{Label: "S2", Mood: 7.2, Energy: 7.5, Goals: 9},
		{Label: "S3", Mood: 6.8, Energy: 6, Goals: 7},
		{Label: "S4", Mood: 8.1, Energy: 8, Goals: 10},
	}
}
